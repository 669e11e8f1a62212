package layers

import (
	"github.com/sporeprotocol/layergen/pkg/item"
	"github.com/sporeprotocol/layergen/pkg/params"
	"github.com/sporeprotocol/layergen/pkg/traits"
)

// ImageLayers is the ordered layer stack selected for one named image. A
// stack may legitimately be empty when its very first layer failed to
// resolve or match.
type ImageLayers struct {
	Name  string
	Items []item.Item
}

// Encode renders the stack as the binary item list the compose collaborator
// consumes.
func (l ImageLayers) Encode() []byte {
	return item.EncodeVec(l.Items)
}

// Build partitions the schema into maximal contiguous runs sharing an image
// name (source order, never sorted) and selects each run's layers in
// declaration order. A layer whose trait is absent or whose match table is
// exhausted truncates its run and processing moves to the next one; hard
// matching errors abort the whole build.
func Build(p params.Parameters) ([]ImageLayers, error) {
	stacks := make([]ImageLayers, 0, len(p.Schema))
	for start := 0; start < len(p.Schema); {
		end := start + 1
		for end < len(p.Schema) && p.Schema[end].ImageName == p.Schema[start].ImageName {
			end++
		}

		run := p.Schema[start:end]
		items := make([]item.Item, 0, len(run))
		for _, entry := range run {
			resolved, ok := traits.FirstValue(entry.SourceTrait, p.TraitOutput)
			if !ok {
				break
			}
			content, matched, err := Match(entry, resolved)
			if err != nil {
				return nil, err
			}
			if !matched {
				break
			}
			items = append(items, item.Item{Kind: entry.Kind, Content: content})
		}

		stacks = append(stacks, ImageLayers{Name: run[0].ImageName, Items: items})
		start = end
	}
	return stacks, nil
}
