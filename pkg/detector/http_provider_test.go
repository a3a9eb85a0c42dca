package detector

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProviderInfer(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "shelf.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("fake-jpeg-bytes"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sku-110k/2", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		body, _ := io.ReadAll(r.Body)
		decoded, err := base64.StdEncoding.DecodeString(string(body))
		require.NoError(t, err)
		assert.Equal(t, "fake-jpeg-bytes", string(decoded))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions":[
			{"x":100,"y":120,"width":40,"height":60,"confidence":0.92,"class":"product"},
			{"x":200,"y":80,"width":30,"height":50,"confidence":0.61,"class":"product"}
		]}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "test-key", "sku-110k/2")
	preds, err := p.Infer(context.Background(), imagePath)
	require.NoError(t, err)
	require.Len(t, preds, 2)
	// Prediction order must be preserved.
	assert.Equal(t, 100.0, preds[0].X)
	assert.Equal(t, 200.0, preds[1].X)
}

func TestHTTPProviderInferErrors(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "shelf.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("x"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "k", "missing/1")
	_, err := p.Infer(context.Background(), imagePath)
	assert.Error(t, err)

	_, err = p.Infer(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}
