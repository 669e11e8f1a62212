// Package output assembles the final result payload: the original trait
// output echoed back, plus one embedded image per composed layer stack.
package output

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/sporeprotocol/layergen/pkg/codes"
	"github.com/sporeprotocol/layergen/pkg/compose"
	"github.com/sporeprotocol/layergen/pkg/layers"
	"github.com/sporeprotocol/layergen/pkg/params"
	"github.com/sporeprotocol/layergen/pkg/traits"
)

// ImageContentType records how image content is embedded in the result.
const ImageContentType = "image/png;base64"

// Image is one composed output image, its content already textual.
type Image struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Result is the full run output handed back to the caller.
type Result struct {
	Traits []traits.Output `json:"traits"`
	Images []Image         `json:"images"`
}

// Assemble composes every layer stack in pipeline order and embeds the
// rendered payloads into the result. The collaborator must hand back textual
// content (base64 per the image content type); anything else surfaces the
// bad-UTF-8 code.
func Assemble(ctx context.Context, p params.Parameters, stacks []layers.ImageLayers, comp compose.Composer) (Result, error) {
	if comp == nil {
		return Result{}, errors.New("output: composer is required")
	}

	images := make([]Image, 0, len(stacks))
	for _, stack := range stacks {
		rendered, err := comp.Compose(ctx, stack.Encode())
		if err != nil {
			return Result{}, fmt.Errorf("output: compose image %q: %w", stack.Name, err)
		}
		if !utf8.Valid(rendered) {
			return Result{}, codes.Newf(codes.BadUTF8Format, "output: composed payload for image %q is not valid text", stack.Name)
		}
		images = append(images, Image{
			Name:    stack.Name,
			Type:    ImageContentType,
			Content: string(rendered),
		})
	}

	return Result{Traits: p.TraitOutput, Images: images}, nil
}
