package voice

import (
	"context"
	"fmt"
	"os/exec"
)

// Player plays an audio file and blocks until playback finishes.
type Player interface {
	Play(ctx context.Context, filePath string) error
}

// ExecPlayer shells out to a system player (ffplay by default).
type ExecPlayer struct {
	Bin string
}

func NewExecPlayer(bin string) Player {
	if bin == "" {
		bin = "ffplay"
	}
	return &ExecPlayer{Bin: bin}
}

func (p *ExecPlayer) Play(ctx context.Context, filePath string) error {
	cmd := exec.CommandContext(ctx, p.Bin, "-nodisp", "-autoexit", filePath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s error: %w, output: %s", p.Bin, err, string(output))
	}
	return nil
}
