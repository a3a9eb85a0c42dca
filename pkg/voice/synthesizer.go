// Package voice renders announcement text to audio and plays it back.
// Both halves are opaque collaborators: an HTTP text-to-speech endpoint and
// a system audio player.
package voice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Synthesizer turns text into playable audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// HTTPSynthesizer calls a TTS server: GET {base}/api/tts?text=... returning
// the rendered audio body.
type HTTPSynthesizer struct {
	BaseURL string
	client  *http.Client
}

func NewHTTPSynthesizer(baseURL string) Synthesizer {
	return &HTTPSynthesizer{BaseURL: baseURL, client: &http.Client{}}
}

func (s *HTTPSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	params := url.Values{}
	params.Add("text", text)
	params.Add("lang", "en")

	endpoint := fmt.Sprintf("%s/api/tts?%s", s.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts error: %s", string(body))
	}

	return body, nil
}
