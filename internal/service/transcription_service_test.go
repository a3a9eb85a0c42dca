package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelf-assist-be/internal/pkg/apperrors"
)

func TestTranscribeNormalizesText(t *testing.T) {
	dir := t.TempDir()
	svc := NewTranscriptionService(dir, &fakeTranscriber{text: "  Where is the MILK?! "}, "en", nopLogger{})

	transcript, err := svc.Transcribe(context.Background(), []byte("riff-data"))
	require.NoError(t, err)
	assert.Equal(t, "where is the milk", transcript)

	// The raw upload is persisted under a fixed name for the transcriber.
	saved, err := os.ReadFile(filepath.Join(dir, "audio_.wav"))
	require.NoError(t, err)
	assert.Equal(t, []byte("riff-data"), saved)
}

func TestTranscribeProviderFailure(t *testing.T) {
	svc := NewTranscriptionService(t.TempDir(), &fakeTranscriber{err: errors.New("decode error")}, "en", nopLogger{})

	_, err := svc.Transcribe(context.Background(), []byte("noise"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTranscription)
}

func TestTranscribeEmptyResult(t *testing.T) {
	// Punctuation-only speech normalizes to nothing and cannot match.
	svc := NewTranscriptionService(t.TempDir(), &fakeTranscriber{text: " ... "}, "en", nopLogger{})

	_, err := svc.Transcribe(context.Background(), []byte("silence"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTranscription)
}
