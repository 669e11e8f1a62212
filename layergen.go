// Package layergen translates the resolved trait output of a generative
// object plus a declarative per-trait schema into ordered image-layer
// instructions, hands each image's binary item list to a compose
// collaborator, and assembles the final payload.
package layergen

import (
	"context"

	"github.com/sporeprotocol/layergen/pkg/codes"
	"github.com/sporeprotocol/layergen/pkg/compose"
	"github.com/sporeprotocol/layergen/pkg/orchestrator"
	"github.com/sporeprotocol/layergen/pkg/output"
)

// Request carries the two raw input buffers; alias exported via the root
// package for convenience.
type Request = orchestrator.Request

// Result is the assembled run output.
type Result = output.Result

// Composer is the external image-composition seam.
type Composer = compose.Composer

// Code is the stable numeric error contract.
type Code = codes.Code

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate parses the two buffers, builds the layer stacks, composes each
// image through comp, and returns the assembled result. It is the simplest
// entry point for callers embedding the whole pipeline.
func Generate(ctx context.Context, traitOutput, schema []byte, comp Composer) (Result, error) {
	gen := orchestrator.New(orchestrator.WithComposer(comp))
	return gen.Generate(ctx, Request{TraitOutput: traitOutput, Schema: schema})
}

// WithComposer forwards the compose collaborator option.
func WithComposer(comp Composer) orchestrator.Option {
	return orchestrator.WithComposer(comp)
}

// CodeOf extracts the stable numeric code carried by err; nil maps to 0.
func CodeOf(err error) Code {
	return codes.FromError(err)
}
