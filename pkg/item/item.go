// Package item encodes matched content values into the type-tagged binary
// records the compose collaborator consumes. An image's layer stack travels
// as a molecule ItemVec: a dynvec of unions, each union wrapping the content
// bytes in a fixvec tagged with the image kind.
package item

import (
	"fmt"

	"github.com/sporeprotocol/layergen/internal/molecule"
	"github.com/sporeprotocol/layergen/pkg/schema"
)

// Union ids are a wire contract shared with the compose collaborator and
// mirror the ImageKind declaration order.
const (
	idColorCode uint32 = 0
	idURI       uint32 = 1
	idRawImage  uint32 = 2
)

// Item is one resolved visual content value tagged with how the compose step
// must interpret it.
type Item struct {
	Kind    schema.ImageKind
	Content string
}

// Encode renders the item as a tagged union record.
func (it Item) Encode() []byte {
	return molecule.PackUnion(unionID(it.Kind), molecule.PackFixvec([]byte(it.Content)))
}

// EncodeVec assembles the ordered layer stack of one image into ItemVec
// bytes. An empty stack encodes to the empty dynvec.
func EncodeVec(items []Item) []byte {
	encoded := make([][]byte, 0, len(items))
	for _, it := range items {
		encoded = append(encoded, it.Encode())
	}
	return molecule.PackDynvec(encoded)
}

// DecodeVec parses ItemVec bytes back into items. Used by authoring tools
// and tests; the pipeline itself only encodes.
func DecodeVec(data []byte) ([]Item, error) {
	bodies, err := molecule.UnpackDynvec(data)
	if err != nil {
		return nil, fmt.Errorf("item: decode vector: %w", err)
	}
	items := make([]Item, 0, len(bodies))
	for i, body := range bodies {
		id, entry, err := molecule.UnpackUnion(body)
		if err != nil {
			return nil, fmt.Errorf("item: decode item %d: %w", i, err)
		}
		kind, err := kindOf(id)
		if err != nil {
			return nil, fmt.Errorf("item: decode item %d: %w", i, err)
		}
		payload, err := molecule.UnpackFixvec(entry)
		if err != nil {
			return nil, fmt.Errorf("item: decode item %d: %w", i, err)
		}
		items = append(items, Item{Kind: kind, Content: string(payload)})
	}
	return items, nil
}

func unionID(kind schema.ImageKind) uint32 {
	switch kind {
	case schema.ColorCode:
		return idColorCode
	case schema.URI:
		return idURI
	default:
		return idRawImage
	}
}

func kindOf(id uint32) (schema.ImageKind, error) {
	switch id {
	case idColorCode:
		return schema.ColorCode, nil
	case idURI:
		return schema.URI, nil
	case idRawImage:
		return schema.RawImage, nil
	}
	return 0, fmt.Errorf("unknown union id %d", id)
}
