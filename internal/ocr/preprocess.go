package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/jpeg" // register JPEG decoder

	xdraw "golang.org/x/image/draw"
)

// Decode turns raw upload bytes into a color image. The caller has already
// gated the file by extension; no content sniffing happens beyond what the
// registered decoders do.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Grayscale converts an image to a new single-channel 8-bit raster.
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(gray, gray.Bounds(), img, bounds.Min, xdraw.Src)
	return gray
}

// OtsuThreshold selects the global binarization cutoff that maximizes
// between-class variance over the intensity histogram. All 256 candidate
// thresholds are scanned using cumulative histogram statistics.
func OtsuThreshold(gray *image.Gray) uint8 {
	var hist [256]int
	bounds := gray.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := gray.Pix[(y-bounds.Min.Y)*gray.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			hist[row[x]]++
		}
	}

	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}

	var sum float64
	for i, count := range hist {
		sum += float64(i) * float64(count)
	}

	var sumB, wB, maxVariance float64
	var threshold uint8
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		meanB := sumB / wB
		meanF := (sum - sumB) / wF
		between := wB * wF * (meanB - meanF) * (meanB - meanF)
		if between > maxVariance {
			maxVariance = between
			threshold = uint8(t)
		}
	}
	return threshold
}

// BinarizeInverse applies binary-inverse thresholding: pixels at or below
// the cutoff become white (255), pixels above become black (0), so dark
// foreground text lands in the high-intensity class. A new raster is
// returned; the input is not mutated.
func BinarizeInverse(gray *image.Gray, threshold uint8) *image.Gray {
	bounds := gray.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		src := gray.Pix[y*gray.Stride : y*gray.Stride+bounds.Dx()]
		dst := out.Pix[y*out.Stride : y*out.Stride+bounds.Dx()]
		for x, v := range src {
			if v > threshold {
				dst[x] = 0
			} else {
				dst[x] = 255
			}
		}
	}
	return out
}

// Preprocess runs the full pipeline: decode, grayscale, Otsu selection and
// inverse binarization. The result has the same dimensions as the source.
func Preprocess(data []byte) (*image.Gray, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	gray := Grayscale(img)
	return BinarizeInverse(gray, OtsuThreshold(gray)), nil
}

// EncodePNG serializes a raster as PNG for engines that consume encoded
// bytes. An *image.Gray encodes as an explicit 8-bit grayscale PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
