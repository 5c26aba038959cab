package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// whitePNG renders an all-white RGBA image and encodes it.
func whitePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// textPNG renders black text on a white background.
func textPNG(t *testing.T, text string) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 200, 80))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 50),
	}
	d.DrawString(text)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"))
	require.Error(t, err)
}

func TestGrayscaleKeepsDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 13, 7))
	gray := Grayscale(img)
	assert.Equal(t, 13, gray.Bounds().Dx())
	assert.Equal(t, 7, gray.Bounds().Dy())
}

func TestOtsuThresholdBimodal(t *testing.T) {
	// Two equal clusters at 10 and 200: any cutoff between them maximizes
	// between-class variance, and the scan keeps the first one.
	gray := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range gray.Pix {
		if i%2 == 0 {
			gray.Pix[i] = 10
		} else {
			gray.Pix[i] = 200
		}
	}

	threshold := OtsuThreshold(gray)
	assert.GreaterOrEqual(t, threshold, uint8(10))
	assert.Less(t, threshold, uint8(200))
}

func TestBinarizeInverseDoesNotMutateInput(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range gray.Pix {
		gray.Pix[i] = uint8(i * 16)
	}
	before := append([]uint8(nil), gray.Pix...)

	out := BinarizeInverse(gray, 100)

	assert.Equal(t, before, gray.Pix)
	for _, v := range out.Pix {
		assert.Contains(t, []uint8{0, 255}, v)
	}
}

func TestPreprocessAllWhiteHasNoForeground(t *testing.T) {
	raster, err := Preprocess(whitePNG(t, 32, 32))
	require.NoError(t, err)

	require.Equal(t, 32, raster.Bounds().Dx())
	require.Equal(t, 32, raster.Bounds().Dy())
	for _, v := range raster.Pix {
		require.Equal(t, uint8(0), v)
	}
}

func TestPreprocessLiftsTextIntoForeground(t *testing.T) {
	raster, err := Preprocess(textPNG(t, "Hi"))
	require.NoError(t, err)

	// Dark glyph pixels must land in the high-intensity class.
	foreground := 0
	for _, v := range raster.Pix {
		if v == 255 {
			foreground++
		}
	}
	assert.Greater(t, foreground, 0)
	assert.Less(t, foreground, len(raster.Pix)/2)
}

func TestPreprocessIdempotent(t *testing.T) {
	data := textPNG(t, "Same input")

	first, err := Preprocess(data)
	require.NoError(t, err)
	second, err := Preprocess(data)
	require.NoError(t, err)

	require.Equal(t, first.Bounds(), second.Bounds())
	require.Equal(t, first.Pix, second.Pix)
}
