package traits_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sporeprotocol/layergen/pkg/codes"
	"github.com/sporeprotocol/layergen/pkg/traits"
)

func TestValue_UnmarshalTaggedUnion(t *testing.T) {
	raw := `[{"name":"Name","traits":[{"String":"Ethan"}]},{"name":"Age","traits":[{"Number":23}]}]`

	var outputs []traits.Output
	if err := json.Unmarshal([]byte(raw), &outputs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []traits.Output{
		{Name: "Name", Traits: []traits.Value{traits.StringValue("Ethan")}},
		{Name: "Age", Traits: []traits.Value{traits.NumberValue(23)}},
	}
	if diff := cmp.Diff(want, outputs); diff != "" {
		t.Fatalf("outputs mismatch (-want +got):\n%s", diff)
	}
}

func TestValue_MarshalRoundTrip(t *testing.T) {
	values := []traits.Value{traits.StringValue("0xaabbcc"), traits.NumberValue(13417386)}

	encoded, err := json.Marshal(values)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded []traits.Value
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(values, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestValue_UnmarshalRejectsAmbiguousTags(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "no tag", raw: `{}`},
		{name: "both tags", raw: `{"String":"x","Number":1}`},
		{name: "not an object", raw: `42`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v traits.Value
			if err := json.Unmarshal([]byte(tc.raw), &v); err == nil {
				t.Fatalf("expected error for %s", tc.raw)
			}
		})
	}
}

func TestValue_KindMismatchCarriesCode(t *testing.T) {
	if _, err := traits.NumberValue(5).AsString(); codeOf(t, err) != codes.InvalidParsedTraitType {
		t.Fatalf("AsString on number: want parsed-trait-type code, got %v", err)
	}
	if _, err := traits.StringValue("x").AsNumber(); codeOf(t, err) != codes.InvalidParsedTraitType {
		t.Fatalf("AsNumber on string: want parsed-trait-type code, got %v", err)
	}

	if got, err := traits.StringValue("x").AsString(); err != nil || got != "x" {
		t.Fatalf("AsString: got %q, %v", got, err)
	}
	if got, err := traits.NumberValue(9).AsNumber(); err != nil || got != 9 {
		t.Fatalf("AsNumber: got %d, %v", got, err)
	}
}

func codeOf(t *testing.T, err error) codes.Code {
	t.Helper()
	var coded *codes.Error
	if !errors.As(err, &coded) {
		t.Fatalf("error carries no code: %v", err)
	}
	return coded.Code
}
