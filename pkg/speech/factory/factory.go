package factory

import (
	"fmt"

	"shelf-assist-be/pkg/speech"
	"shelf-assist-be/pkg/speech/server"
	"shelf-assist-be/pkg/speech/whispercli"
)

func NewTranscriber(providerType, serverURL string) (speech.Transcriber, error) {
	switch providerType {
	case "whisper-cli":
		return whispercli.New(), nil
	case "server":
		if serverURL == "" {
			serverURL = "http://localhost:9000" // Default
		}
		return server.New(serverURL), nil
	default:
		return nil, fmt.Errorf("unsupported speech provider: %s", providerType)
	}
}
