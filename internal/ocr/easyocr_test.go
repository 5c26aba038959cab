package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasyOCREngineRecognizeText(t *testing.T) {
	var received easyOCRRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/readtext", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(easyOCRResponse{Paragraphs: []string{"Hello", "world"}})
	}))
	defer srv.Close()

	engine := NewEasyOCREngine(srv.URL)
	assert.Equal(t, EngineEasyOCR, engine.Name())

	text, err := engine.RecognizeText(context.Background(), image.NewGray(image.Rect(0, 0, 8, 8)))
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text)

	// The sidecar must be asked for paragraph-aggregated English reading.
	assert.True(t, received.Paragraph)
	assert.Equal(t, []string{"en"}, received.Languages)

	// The payload must be a decodable PNG raster.
	data, err := base64.StdEncoding.DecodeString(received.Image)
	require.NoError(t, err)
	_, _, err = image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestEasyOCREngineSidecarError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(easyOCRResponse{Error: "reader not loaded"})
	}))
	defer srv.Close()

	engine := NewEasyOCREngine(srv.URL)
	_, err := engine.RecognizeText(context.Background(), image.NewGray(image.Rect(0, 0, 8, 8)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reader not loaded")
}

func TestEasyOCREngineNonJSONErrorBody(t *testing.T) {
	// A proxy in front of the sidecar answers with a plain-text error page.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>Bad Gateway</html>"))
	}))
	defer srv.Close()

	engine := NewEasyOCREngine(srv.URL)
	_, err := engine.RecognizeText(context.Background(), image.NewGray(image.Rect(0, 0, 8, 8)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
	assert.NotContains(t, err.Error(), "decode easyocr response")
}

func TestEasyOCREngineUnreachableSidecar(t *testing.T) {
	engine := NewEasyOCREngine("http://127.0.0.1:1")
	_, err := engine.RecognizeText(context.Background(), image.NewGray(image.Rect(0, 0, 8, 8)))
	require.Error(t, err)
}
