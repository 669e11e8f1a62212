package orchestrator_test

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/sporeprotocol/layergen/pkg/codes"
	"github.com/sporeprotocol/layergen/pkg/compose"
	"github.com/sporeprotocol/layergen/pkg/item"
	"github.com/sporeprotocol/layergen/pkg/orchestrator"
	"github.com/sporeprotocol/layergen/pkg/schema"
)

const traitOutputFixture = `[{"name":"Name","traits":[{"String":"Ethan"}]},{"name":"DNA","traits":[{"String":"0xaabbcc"}]}]`

const schemaFixture = `[["0","color","Name","options",[["Alice","#0000FF"],["Ethan","#FF0000"],[["*"],"#FFFFFF"]]],["1","uri","DNA","raw"],["1","color","Missing","options",[[["*"],"#FFFFFF"]]]]`

func request() orchestrator.Request {
	return orchestrator.Request{
		TraitOutput: []byte(traitOutputFixture),
		Schema:      []byte(schemaFixture),
	}
}

func TestOrchestrator_Generate(t *testing.T) {
	var composed [][]byte
	capture := compose.ComposerFunc(func(_ context.Context, itemVec []byte) ([]byte, error) {
		composed = append(composed, itemVec)
		return []byte("rendered"), nil
	})

	gen := orchestrator.New(orchestrator.WithComposer(capture))
	result, err := gen.Generate(context.Background(), request())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(result.Images) != 2 {
		t.Fatalf("images = %d, want 2", len(result.Images))
	}
	if result.Images[0].Name != "0" || result.Images[1].Name != "1" {
		t.Fatalf("image order wrong: %+v", result.Images)
	}
	if len(result.Traits) != 2 {
		t.Fatalf("trait output not echoed: %+v", result.Traits)
	}

	// Image "0" carries the matched color; image "1" truncates after its raw
	// layer because the second row's trait is missing.
	first, err := item.DecodeVec(composed[0])
	if err != nil {
		t.Fatalf("decode image 0 items: %v", err)
	}
	if len(first) != 1 || first[0].Kind != schema.ColorCode || first[0].Content != "#FF0000" {
		t.Fatalf("image 0 items = %+v", first)
	}
	second, err := item.DecodeVec(composed[1])
	if err != nil {
		t.Fatalf("decode image 1 items: %v", err)
	}
	if len(second) != 1 || second[0].Kind != schema.URI || second[0].Content != "0xaabbcc" {
		t.Fatalf("image 1 items = %+v", second)
	}
}

func TestOrchestrator_DefaultComposerEmbedsItems(t *testing.T) {
	gen := orchestrator.New()
	result, err := gen.Generate(context.Background(), request())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(result.Images[0].Content)
	if err != nil {
		t.Fatalf("content is not base64: %v", err)
	}
	items, err := item.DecodeVec(raw)
	if err != nil {
		t.Fatalf("decode embedded items: %v", err)
	}
	if len(items) != 1 || items[0].Content != "#FF0000" {
		t.Fatalf("embedded items = %+v", items)
	}
}

func TestOrchestrator_GenerateJSON(t *testing.T) {
	gen := orchestrator.New()
	payload, err := gen.GenerateJSON(context.Background(), request())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	body := string(payload)
	if !strings.Contains(body, `"traits"`) || !strings.Contains(body, `"images"`) {
		t.Fatalf("payload missing sections: %s", body)
	}
}

func TestOrchestrator_ErrorsKeepTheirCodes(t *testing.T) {
	gen := orchestrator.New()
	_, err := gen.Generate(context.Background(), orchestrator.Request{
		TraitOutput: []byte(traitOutputFixture),
		Schema:      []byte(`[["0","color","Name"]]`),
	})
	if got := codes.FromError(err); got != codes.InsufficientElements {
		t.Fatalf("code = %v, want insufficient elements", got)
	}

	_, err = gen.Generate(context.Background(), orchestrator.Request{
		TraitOutput: nil,
		Schema:      []byte(`[]`),
	})
	if got := codes.FromError(err); got != codes.InvalidDOB0Output {
		t.Fatalf("code = %v, want invalid DOB0 output", got)
	}
}

func TestOrchestrator_Preview(t *testing.T) {
	gen := orchestrator.New()
	html, err := gen.Preview(context.Background(), request())
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	body := string(html)
	for _, needle := range []string{"#FF0000", "Image 0", "Image 1", "0xaabbcc"} {
		if !strings.Contains(body, needle) {
			t.Fatalf("preview missing %q:\n%s", needle, body)
		}
	}
}

func TestOrchestrator_RequiresContext(t *testing.T) {
	gen := orchestrator.New()
	if _, err := gen.Generate(nil, request()); err == nil { //nolint:staticcheck // exercising the guard
		t.Fatalf("expected error for nil context")
	}
}
