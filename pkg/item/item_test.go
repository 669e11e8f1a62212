package item_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sporeprotocol/layergen/pkg/item"
	"github.com/sporeprotocol/layergen/pkg/schema"
)

func TestItem_EncodeTagsByKind(t *testing.T) {
	got := item.Item{Kind: schema.ColorCode, Content: "#FF0000"}.Encode()
	want := []byte{
		0x00, 0x00, 0x00, 0x00, // union id: color code
		0x07, 0x00, 0x00, 0x00, // content byte count
		'#', 'F', 'F', '0', '0', '0', '0',
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("encoded item mismatch (-want +got):\n%s", diff)
	}

	if got := (item.Item{Kind: schema.URI, Content: ""}).Encode(); got[0] != 0x01 {
		t.Fatalf("URI union id = %d, want 1", got[0])
	}
	if got := (item.Item{Kind: schema.RawImage, Content: ""}).Encode(); got[0] != 0x02 {
		t.Fatalf("RawImage union id = %d, want 2", got[0])
	}
}

func TestEncodeVec_RoundTrip(t *testing.T) {
	items := []item.Item{
		{Kind: schema.ColorCode, Content: "#FF0000"},
		{Kind: schema.URI, Content: "btcfs://b2f4"},
		{Kind: schema.RawImage, Content: "\x89PNG"},
	}

	decoded, err := item.DecodeVec(item.EncodeVec(items))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(items, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeVec_EmptyStack(t *testing.T) {
	got := item.EncodeVec(nil)
	want := []byte{0x04, 0x00, 0x00, 0x00}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("empty vector mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeVec_RejectsUnknownUnionID(t *testing.T) {
	bad := item.Item{Kind: schema.ColorCode, Content: "x"}.Encode()
	bad[0] = 0x07
	vec := append([]byte{
		byte(4 + 4 + len(bad)), 0x00, 0x00, 0x00,
		0x08, 0x00, 0x00, 0x00,
	}, bad...)
	if _, err := item.DecodeVec(vec); err == nil {
		t.Fatalf("expected unknown union id to fail")
	}
}
