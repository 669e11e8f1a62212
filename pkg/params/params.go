// Package params parses the two untrusted byte buffers handed over by the
// hosting process into the fully decoded pipeline input: the resolved trait
// output and the validated layer schema.
package params

import (
	"encoding/json"

	"github.com/sporeprotocol/layergen/pkg/codes"
	"github.com/sporeprotocol/layergen/pkg/schema"
	"github.com/sporeprotocol/layergen/pkg/traits"
)

// Parameters is the decoded, validated pipeline input.
type Parameters struct {
	TraitOutput []traits.Output
	Schema      []schema.Entry
}

// Parse decodes exactly two buffers: buffer 0 carries the JSON trait output,
// buffer 1 the JSON schema rows. It is a pure function of its inputs; every
// failure carries a codes.Code.
func Parse(buffers [][]byte) (Parameters, error) {
	if len(buffers) != 2 {
		return Parameters{}, codes.Newf(codes.InvalidArgCount, "params: want 2 input buffers, got %d", len(buffers))
	}

	raw := buffers[0]
	if len(raw) == 0 {
		return Parameters{}, codes.New(codes.InvalidDOB0Output, "params: trait output buffer is empty")
	}
	var output []traits.Output
	if err := json.Unmarshal(raw, &output); err != nil {
		return Parameters{}, codes.Wrap(codes.InvalidDOB0Output, "params: decode trait output", err)
	}

	var rows [][]json.RawMessage
	if err := json.Unmarshal(buffers[1], &rows); err != nil {
		return Parameters{}, codes.Wrap(codes.InvalidTraitsBase, "params: decode schema rows", err)
	}
	entries, err := schema.DecodeRows(rows)
	if err != nil {
		return Parameters{}, err
	}

	return Parameters{TraitOutput: output, Schema: entries}, nil
}
