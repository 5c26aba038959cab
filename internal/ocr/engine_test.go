package ocr

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngine struct {
	name  string
	text  string
	calls int
}

func (s *stubEngine) Name() string { return s.name }

func (s *stubEngine) RecognizeText(ctx context.Context, img *image.Gray) (string, error) {
	s.calls++
	return s.text, nil
}

func TestRegistryGet(t *testing.T) {
	neural := &stubEngine{name: EngineEasyOCR}
	classical := &stubEngine{name: EngineTesseract}
	reg := NewRegistry(neural, classical)

	got, err := reg.Get(EngineTesseract)
	require.NoError(t, err)
	assert.Equal(t, classical, got)

	got, err = reg.Get(EngineEasyOCR)
	require.NoError(t, err)
	assert.Equal(t, neural, got)
}

func TestRegistryGetUnknownSelector(t *testing.T) {
	reg := NewRegistry(&stubEngine{name: EngineEasyOCR})

	_, err := reg.Get("paddleocr")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedEngine)
	assert.Contains(t, err.Error(), "paddleocr")
}
