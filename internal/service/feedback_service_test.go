package service

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynthesizer struct {
	err error
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("mp3:" + text), nil
}

type recordingPlayer struct {
	mu     sync.Mutex
	played []string
	err    error
}

func (p *recordingPlayer) Play(ctx context.Context, audioPath string) error {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.played = append(p.played, string(data))
	p.mu.Unlock()
	return p.err
}

func (p *recordingPlayer) All() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.played...)
}

func newFeedbackService(t *testing.T, synth *fakeSynthesizer, player *recordingPlayer) IFeedbackService {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })
	return NewFeedbackService(pubSub, "FEEDBACK_ANNOUNCE", synth, player, nopLogger{})
}

func TestAnnouncePlaysInOrder(t *testing.T) {
	player := &recordingPlayer{}
	svc := newFeedbackService(t, &fakeSynthesizer{}, player)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, svc.Consume(ctx))

	svc.Announce("first")
	svc.Announce("second")
	svc.Announce("third")

	assert.Eventually(t, func() bool {
		return len(player.All()) == 3
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"mp3:first", "mp3:second", "mp3:third"}, player.All())
}

func TestAnnounceSurvivesSynthesisFailure(t *testing.T) {
	player := &recordingPlayer{}
	svc := newFeedbackService(t, &fakeSynthesizer{err: errors.New("tts offline")}, player)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, svc.Consume(ctx))

	svc.Announce("lost announcement")
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, player.All())
}

func TestAnnounceSurvivesPlayerFailure(t *testing.T) {
	// A broken player must not wedge the queue for later announcements.
	player := &recordingPlayer{err: errors.New("no audio device")}
	svc := newFeedbackService(t, &fakeSynthesizer{}, player)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, svc.Consume(ctx))

	svc.Announce("one")
	svc.Announce("two")

	assert.Eventually(t, func() bool {
		return len(player.All()) == 2
	}, 2*time.Second, 10*time.Millisecond)
}
