// Package speech wraps the speech-to-text collaborator. Providers turn an
// audio file on disk into a raw transcript; normalization is the caller's job.
package speech

import "context"

// Transcriber defines the contract for any speech-to-text backend.
type Transcriber interface {
	// Transcribe decodes the audio file in the given language ("en").
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}
