package ocr

import "strings"

const (
	// NoTextDetected is reported when an engine produces no usable output.
	NoTextDetected = "No text detected in the image"

	// LanguageEnglish is the fixed language tag. Recognition is locked to
	// English; the tag is asserted, not detected.
	LanguageEnglish = "en"
)

// Normalize trims the engine's raw output and substitutes the sentinel when
// nothing remains. Pure and total: there is no failure path.
func Normalize(raw string) (text, language string) {
	text = strings.TrimSpace(raw)
	if text == "" {
		text = NoTextDetected
	}
	return text, LanguageEnglish
}
