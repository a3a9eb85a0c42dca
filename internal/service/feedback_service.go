package service

import (
	"context"
	"os"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"shelf-assist-be/internal/pkg/logger"
	"shelf-assist-be/pkg/voice"
)

// IFeedbackService is the audio feedback channel. Announce enqueues; a
// single background consumer renders and plays, so announcements come out
// in submission order and never block the request that produced them.
type IFeedbackService interface {
	Announce(text string)
	Consume(ctx context.Context) error
}

type feedbackService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	synth     voice.Synthesizer
	player    voice.Player
	logger    logger.ILogger
}

func NewFeedbackService(
	pubSub *gochannel.GoChannel,
	topicName string,
	synth voice.Synthesizer,
	player voice.Player,
	sysLogger logger.ILogger,
) IFeedbackService {
	return &feedbackService{
		pubSub:    pubSub,
		topicName: topicName,
		synth:     synth,
		player:    player,
		logger:    sysLogger,
	}
}

func (s *feedbackService) Announce(text string) {
	msg := message.NewMessage(watermill.NewUUID(), []byte(text))
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.logger.Error("feedback", "Failed to enqueue announcement", map[string]interface{}{
			"error": err.Error(),
			"text":  text,
		})
	}
}

func (s *feedbackService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.speak(ctx, string(msg.Payload))
			// Playback failures are logged inside speak; always Ack so a
			// broken player cannot wedge the queue.
			msg.Ack()
		}
	}()

	return nil
}

func (s *feedbackService) speak(ctx context.Context, text string) {
	audio, err := s.synth.Synthesize(ctx, text)
	if err != nil {
		s.logger.Error("feedback", "Failed to synthesize announcement", map[string]interface{}{
			"error": err.Error(),
			"text":  text,
		})
		return
	}

	tmp, err := os.CreateTemp("", "announce_*.mp3")
	if err != nil {
		s.logger.Error("feedback", "Failed to create announcement file", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	// The file is removed even when playback fails.
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		s.logger.Error("feedback", "Failed to write announcement file", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	tmp.Close()

	if err := s.player.Play(ctx, tmp.Name()); err != nil {
		s.logger.Error("feedback", "Failed to play announcement", map[string]interface{}{
			"error": err.Error(),
			"text":  text,
		})
	}
}
