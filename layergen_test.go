package layergen_test

import (
	"context"
	"testing"

	layergen "github.com/sporeprotocol/layergen"
	"github.com/sporeprotocol/layergen/pkg/compose"
	"github.com/sporeprotocol/layergen/pkg/item"
)

func TestGenerate_EndToEnd(t *testing.T) {
	traitOutput := []byte(`[{"name":"Name","traits":[{"String":"Ethan"}]}]`)
	schema := []byte(`[["0","color","Name","options",[["Alice","#0000FF"],["Ethan","#FF0000"],[["*"],"#FFFFFF"]]]]`)

	var captured []byte
	comp := compose.ComposerFunc(func(_ context.Context, itemVec []byte) ([]byte, error) {
		captured = itemVec
		return []byte("rendered"), nil
	})

	result, err := layergen.Generate(context.Background(), traitOutput, schema, comp)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if layergen.CodeOf(err) != 0 {
		t.Fatalf("success must map to code 0")
	}

	if len(result.Images) != 1 || result.Images[0].Name != "0" {
		t.Fatalf("images = %+v", result.Images)
	}
	items, err := item.DecodeVec(captured)
	if err != nil {
		t.Fatalf("decode composed items: %v", err)
	}
	if len(items) != 1 || items[0].Content != "#FF0000" {
		t.Fatalf("items = %+v", items)
	}
}

func TestGenerate_ErrorSurfacesItsCode(t *testing.T) {
	_, err := layergen.Generate(context.Background(), nil, []byte(`[]`), compose.Passthrough())
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := layergen.CodeOf(err); got != 2 {
		t.Fatalf("code = %d, want 2 (invalid DOB0 output)", got)
	}
}
