package service

import (
	"context"
	"sync"

	"shelf-assist-be/internal/constant"
	"shelf-assist-be/internal/pkg/apperrors"
	"shelf-assist-be/internal/pkg/logger"
	"shelf-assist-be/pkg/vision"
)

// Mode selects which pipeline an image upload is routed to.
type Mode int

const (
	ModeProduct  Mode = 0
	ModeCurrency Mode = 1
)

func (m Mode) String() string {
	if m == ModeCurrency {
		return "currency"
	}
	return "product"
}

// IModeService owns the process-wide operating mode. Set validates and swaps
// under the lock, so a concurrent upload observes either the old or the new
// mode, never a half-applied switch.
type IModeService interface {
	Set(ctx context.Context, raw string) (Mode, bool, error)
	Current() Mode
}

type modeService struct {
	mu   sync.RWMutex
	mode Mode

	registry      *vision.Registry
	currencyModel string
	feedback      IFeedbackService
	logger        logger.ILogger
}

func NewModeService(
	registry *vision.Registry,
	currencyModel string,
	feedback IFeedbackService,
	sysLogger logger.ILogger,
) IModeService {
	return &modeService{
		mode:          ModeProduct,
		registry:      registry,
		currencyModel: currencyModel,
		feedback:      feedback,
		logger:        sysLogger,
	}
}

func (s *modeService) Current() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *modeService) Set(ctx context.Context, raw string) (Mode, bool, error) {
	var requested Mode
	switch raw {
	case "0":
		requested = ModeProduct
	case "1":
		requested = ModeCurrency
	default:
		s.feedback.Announce(constant.AnnounceInvalidMode)
		return s.Current(), false, apperrors.ErrInvalidMode
	}

	s.mu.Lock()
	changed := requested != s.mode
	s.mode = requested
	s.mu.Unlock()

	if !changed {
		return requested, false, nil
	}

	ttsText := constant.AnnounceProductMode
	if requested == ModeCurrency {
		ttsText = constant.AnnounceCurrencyMode
		if !s.registry.Loaded(s.currencyModel) {
			if err := s.registry.Warm(s.currencyModel); err != nil {
				// Load failure does not fail the switch; detection will
				// retry the load on first use.
				s.logger.Error("mode", "Failed to load currency model", map[string]interface{}{
					"error": err.Error(),
					"model": s.currencyModel,
				})
			} else {
				ttsText += constant.AnnounceCurrencyModelLoaded
			}
		}
	}

	s.logger.Info("mode", "Mode updated", map[string]interface{}{"mode": requested.String()})
	s.feedback.Announce(ttsText)

	return requested, true, nil
}
