// Package whispercli transcribes by shelling out to whisper-cli, downmixing
// the input to the 16 kHz mono PCM wav the model expects first.
package whispercli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"shelf-assist-be/pkg/speech"
)

type Provider struct{}

func New() speech.Transcriber {
	return &Provider{}
}

func (p *Provider) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	tmpWav := filepath.Join(os.TempDir(), "transcribe_tmp.wav")
	defer os.Remove(tmpWav)

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y", // overwrite output file without asking
		"-i", audioPath,
		"-ac", "1", // 1 channel
		"-ar", "16000", // 16 kHz
		"-acodec", "pcm_s16le", // 16-bit little-endian PCM
		tmpWav)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("ffmpeg error: %w, output: %s", err, string(output))
	}

	cmd = exec.CommandContext(ctx,
		"whisper-cli",
		"-f", tmpWav,
		"-l", language,
		"-otxt",
		"-of", "-",
	)
	output, err = cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("whisper-cli error: %w, output: %s", err, string(output))
	}

	return strings.TrimSpace(string(output)), nil
}
