// Package compose declares the seam to the external image-composition
// collaborator. The pipeline hands it the encoded item list of one image and
// receives the rendered payload back; everything about how the bytes are
// produced, buffer sizing included, is the collaborator's affair.
package compose

import (
	"context"
	"encoding/base64"
)

// Composer turns an ordered binary item list into a rendered image payload.
// The payload format is opaque to the pipeline; assembly base64-encodes it
// verbatim.
type Composer interface {
	Compose(ctx context.Context, itemVec []byte) ([]byte, error)
}

// ComposerFunc adapts a plain function to the Composer interface.
type ComposerFunc func(ctx context.Context, itemVec []byte) ([]byte, error)

// Compose implements Composer.
func (f ComposerFunc) Compose(ctx context.Context, itemVec []byte) ([]byte, error) {
	return f(ctx, itemVec)
}

// Passthrough returns the encoded item list unchanged. It stands in for a
// real compositor in tooling that only inspects the binary contract.
func Passthrough() Composer {
	return ComposerFunc(func(_ context.Context, itemVec []byte) ([]byte, error) {
		return itemVec, nil
	})
}

// Base64Embed returns the encoded item list as base64 text. It is the
// default compositor for environments without a rendering backend: the
// emitted content keeps the full item contract inspectable while remaining
// valid payload text for output assembly.
func Base64Embed() Composer {
	return ComposerFunc(func(_ context.Context, itemVec []byte) ([]byte, error) {
		out := make([]byte, base64.StdEncoding.EncodedLen(len(itemVec)))
		base64.StdEncoding.Encode(out, itemVec)
		return out, nil
	})
}
