package ocr

import (
	"context"
	"errors"
	"fmt"
	"image"
)

// Engine selector values accepted from clients.
const (
	EngineEasyOCR   = "easyocr"
	EngineTesseract = "tesseract"

	// DefaultEngine applies only when the request omits the selector
	// entirely; an unrecognized selector is never silently replaced.
	DefaultEngine = EngineEasyOCR
)

var ErrUnsupportedEngine = errors.New("unsupported OCR engine")

// Engine is the contract every recognition backend fulfills: a preprocessed
// binary raster in, raw text out.
type Engine interface {
	Name() string
	RecognizeText(ctx context.Context, img *image.Gray) (string, error)
}

// Registry holds the closed set of engines constructed at process start.
// It is read-only after construction and safe for concurrent use.
type Registry struct {
	engines map[string]Engine
}

func NewRegistry(engines ...Engine) *Registry {
	r := &Registry{engines: make(map[string]Engine, len(engines))}
	for _, e := range engines {
		r.engines[e.Name()] = e
	}
	return r
}

// Get resolves a selector to an engine. Unknown selectors fail with
// ErrUnsupportedEngine; there is no fallback at this stage.
func (r *Registry) Get(name string) (Engine, error) {
	e, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEngine, name)
	}
	return e, nil
}
