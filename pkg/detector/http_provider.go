package detector

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// HTTPProvider talks to a Roboflow-style inference endpoint:
// POST {base}/{model}?api_key=... with a base64 image body.
type HTTPProvider struct {
	BaseURL string
	APIKey  string
	ModelID string
	client  *http.Client
}

func NewHTTPProvider(baseURL, apiKey, modelID string) Provider {
	return &HTTPProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		ModelID: modelID,
		client:  &http.Client{},
	}
}

type inferResponse struct {
	Predictions []Prediction `json:"predictions"`
}

func (p *HTTPProvider) Infer(ctx context.Context, imagePath string) ([]Prediction, error) {
	raw, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	params := url.Values{}
	params.Add("api_key", p.APIKey)
	endpoint := fmt.Sprintf("%s/%s?%s", p.BaseURL, p.ModelID, params.Encode())

	encoded := base64.StdEncoding.EncodeToString(raw)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detector error: %s", string(bodyBytes))
	}

	var result inferResponse
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, err
	}

	return result.Predictions, nil
}
