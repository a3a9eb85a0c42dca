package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// HTTPLoader builds handles for models served over HTTP by a YOLO-style
// model server. "Loading" asks the server to mount the named model so that
// the first real inference does not pay the warm-up cost.
type HTTPLoader struct {
	BaseURL string
	client  *http.Client
}

func NewHTTPLoader(baseURL string) *HTTPLoader {
	return &HTTPLoader{BaseURL: baseURL, client: &http.Client{}}
}

func (l *HTTPLoader) Load(name string) (Model, error) {
	endpoint := fmt.Sprintf("%s/models/%s/load", l.BaseURL, name)
	resp, err := l.client.Post(endpoint, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("load model %s: %s", name, string(body))
	}

	return &httpModel{baseURL: l.BaseURL, name: name, client: l.client}, nil
}

type httpModel struct {
	baseURL string
	name    string
	client  *http.Client
}

type predictRequest struct {
	Image string `json:"image"` // base64
}

type classifyResponse struct {
	// Probs is null when the model produced no usable distribution.
	Probs *TopPrediction `json:"probs"`
}

type detectResponse struct {
	Boxes []Box `json:"boxes"`
}

func (m *httpModel) post(ctx context.Context, op, imagePath string, out interface{}) error {
	raw, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	reqBody, err := json.Marshal(predictRequest{Image: base64.StdEncoding.EncodeToString(raw)})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/models/%s/%s", m.baseURL, m.name, op)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model %s %s error: %s", m.name, op, string(bodyBytes))
	}

	return json.Unmarshal(bodyBytes, out)
}

func (m *httpModel) ClassifyTop1(ctx context.Context, imagePath string) (*TopPrediction, error) {
	var result classifyResponse
	if err := m.post(ctx, "classify", imagePath, &result); err != nil {
		return nil, err
	}
	return result.Probs, nil
}

func (m *httpModel) DetectBoxes(ctx context.Context, imagePath string) ([]Box, error) {
	var result detectResponse
	if err := m.post(ctx, "detect", imagePath, &result); err != nil {
		return nil, err
	}
	return result.Boxes, nil
}
