package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"
)

// EasyOCREngine is the neural variant. The EasyOCR reader itself lives in a
// sidecar service (the model is expensive to load, so the sidecar loads it
// once at startup); this adapter posts rasters to it over HTTP. One adapter
// instance is constructed at process start and shared across requests — the
// underlying http.Client is safe for concurrent use.
type EasyOCREngine struct {
	baseURL string
	client  *http.Client
}

func NewEasyOCREngine(baseURL string) *EasyOCREngine {
	return &EasyOCREngine{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *EasyOCREngine) Name() string { return EngineEasyOCR }

type easyOCRRequest struct {
	// Image is the base64-encoded PNG payload.
	Image string `json:"image"`
	// Languages is locked to English; detection is not performed.
	Languages []string `json:"languages"`
	// Paragraph asks the reader to merge detections into reading-order
	// paragraphs instead of disjoint line fragments.
	Paragraph bool `json:"paragraph"`
}

type easyOCRResponse struct {
	Paragraphs []string `json:"paragraphs"`
	Error      string   `json:"error,omitempty"`
}

// RecognizeText submits the binary raster for paragraph-aggregated reading
// and joins the returned paragraphs with single spaces.
func (e *EasyOCREngine) RecognizeText(ctx context.Context, img *image.Gray) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(easyOCRRequest{
		Image:     base64.StdEncoding.EncodeToString(data),
		Languages: []string{"en"},
		Paragraph: true,
	})
	if err != nil {
		return "", fmt.Errorf("marshal easyocr request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/readtext", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build easyocr request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("easyocr request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read easyocr response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// The sidecar reports failures as {"error": ...}, but a proxy in
		// front of it may answer with a non-JSON body.
		var failure easyOCRResponse
		if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
			return "", fmt.Errorf("easyocr: %s", failure.Error)
		}
		return "", fmt.Errorf("easyocr: unexpected status %d", resp.StatusCode)
	}

	var result easyOCRResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode easyocr response: %w", err)
	}
	return strings.Join(result.Paragraphs, " "), nil
}
