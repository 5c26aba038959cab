package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain text", "Hello", "Hello"},
		{"trims whitespace", "  Hello world \n", "Hello world"},
		{"empty", "", NoTextDetected},
		{"whitespace only", "  ", NoTextDetected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, language := Normalize(tt.raw)
			assert.Equal(t, tt.want, text)
			assert.Equal(t, LanguageEnglish, language)
		})
	}
}
