// Package orchestrator coordinates the full pipeline from the two raw input
// buffers to the assembled result: parameter parsing, layer building, the
// external compose call, and output assembly. It applies sensible defaults
// while remaining open to dependency injection.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sporeprotocol/layergen/pkg/compose"
	"github.com/sporeprotocol/layergen/pkg/layers"
	"github.com/sporeprotocol/layergen/pkg/output"
	"github.com/sporeprotocol/layergen/pkg/params"
	"github.com/sporeprotocol/layergen/pkg/preview"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithComposer injects the compose collaborator. Defaults to the base64
// embedding composer when omitted.
func WithComposer(c compose.Composer) Option {
	return func(o *Orchestrator) {
		o.composer = c
	}
}

// WithPreviewRenderer injects a configured preview renderer.
func WithPreviewRenderer(r *preview.Renderer) Option {
	return func(o *Orchestrator) {
		o.previewer = r
	}
}

// Orchestrator ties the decoding pipeline to its collaborators. Missing
// dependencies are initialised with built-in implementations so callers can
// start with a single constructor call.
type Orchestrator struct {
	composer      compose.Composer
	previewer     *preview.Renderer
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.composer == nil {
		o.composer = compose.Base64Embed()
	}
	if o.previewer == nil {
		previewer, err := preview.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: initialise preview renderer: %w", err)
		}
		o.previewer = previewer
	}
	return o
}

// Request carries the two raw input buffers: the resolved trait output and
// the layer schema, both UTF-8 JSON.
type Request struct {
	TraitOutput []byte
	Schema      []byte
}

// Generate executes parse → build layers → compose → assemble and returns
// the full result.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (output.Result, error) {
	if ctx == nil {
		return output.Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return output.Result{}, err
	}

	parameters, stacks, err := decode(req)
	if err != nil {
		return output.Result{}, err
	}
	return output.Assemble(ctx, parameters, stacks, o.composer)
}

// GenerateJSON runs Generate and marshals the result payload.
func (o *Orchestrator) GenerateJSON(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: marshal result: %w", err)
	}
	return payload, nil
}

// Preview decodes the request and renders the diagnostic HTML view of the
// selected layer stacks without invoking the compose collaborator.
func (o *Orchestrator) Preview(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	parameters, stacks, err := decode(req)
	if err != nil {
		return nil, err
	}
	return o.previewer.Render(parameters, stacks)
}

func decode(req Request) (params.Parameters, []layers.ImageLayers, error) {
	parameters, err := params.Parse([][]byte{req.TraitOutput, req.Schema})
	if err != nil {
		return params.Parameters{}, nil, err
	}
	stacks, err := layers.Build(parameters)
	if err != nil {
		return params.Parameters{}, nil, err
	}
	return parameters, stacks, nil
}
