package service

import (
	"context"
	"os"
	"path/filepath"

	"shelf-assist-be/internal/pkg/apperrors"
	"shelf-assist-be/internal/pkg/logger"
	"shelf-assist-be/pkg/speech"
	"shelf-assist-be/pkg/textnorm"
)

const uploadedAudioName = "audio_.wav"

// ITranscriptionService turns a raw audio upload into a normalized transcript.
type ITranscriptionService interface {
	Transcribe(ctx context.Context, audioBytes []byte) (string, error)
}

type transcriptionService struct {
	uploadDir   string
	transcriber speech.Transcriber
	language    string
	logger      logger.ILogger
}

func NewTranscriptionService(
	uploadDir string,
	transcriber speech.Transcriber,
	language string,
	sysLogger logger.ILogger,
) ITranscriptionService {
	return &transcriptionService{
		uploadDir:   uploadDir,
		transcriber: transcriber,
		language:    language,
		logger:      sysLogger,
	}
}

func (s *transcriptionService) Transcribe(ctx context.Context, audioBytes []byte) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", apperrors.Wrap(apperrors.KindUnexpected, "audio.save", "could not create upload dir", err)
	}

	audioPath := filepath.Join(s.uploadDir, uploadedAudioName)
	if err := os.WriteFile(audioPath, audioBytes, 0o644); err != nil {
		return "", apperrors.Wrap(apperrors.KindUnexpected, "audio.save", "could not persist audio", err)
	}

	if _, err := os.Stat(audioPath); err != nil {
		return "", apperrors.ErrFileAccess
	}

	raw, err := s.transcriber.Transcribe(ctx, audioPath, s.language)
	if err != nil {
		s.logger.Error("audio", "Transcription failed", map[string]interface{}{"error": err.Error()})
		return "", apperrors.ErrTranscription
	}

	transcript := textnorm.Clean(raw)
	s.logger.Info("audio", "Audio transcribed", map[string]interface{}{
		"raw":     raw,
		"cleaned": transcript,
	})

	// An empty transcript cannot match anything; treat it like a failed
	// decode so the caller announces it.
	if transcript == "" {
		return "", apperrors.ErrTranscription
	}

	return transcript, nil
}
