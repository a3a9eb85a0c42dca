package service

import (
	"context"
	"fmt"

	"shelf-assist-be/internal/constant"
	"shelf-assist-be/internal/pkg/apperrors"
	"shelf-assist-be/internal/pkg/logger"
	"shelf-assist-be/pkg/vision"
)

// ICurrencyService runs the single-shot currency pipeline on a saved image.
// The returned label is empty when nothing was detected; that is a valid
// outcome, distinct from a pipeline error.
type ICurrencyService interface {
	Detect(ctx context.Context, imagePath string) (string, error)
}

type currencyService struct {
	registry  *vision.Registry
	modelName string
	feedback  IFeedbackService
	logger    logger.ILogger
}

func NewCurrencyService(
	registry *vision.Registry,
	modelName string,
	feedback IFeedbackService,
	sysLogger logger.ILogger,
) ICurrencyService {
	return &currencyService{
		registry:  registry,
		modelName: modelName,
		feedback:  feedback,
		logger:    sysLogger,
	}
}

func (s *currencyService) Detect(ctx context.Context, imagePath string) (string, error) {
	model, err := s.registry.Get(s.modelName)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindCollaborator, "currency.load", "currency model unavailable", err)
	}

	boxes, err := model.DetectBoxes(ctx, imagePath)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindCollaborator, "currency.detect", "currency detection failed", err)
	}

	// Strictly highest confidence wins; ties keep the first-seen box.
	bestCurrency := ""
	highestConfidence := 0.0
	for _, box := range boxes {
		if box.Confidence > highestConfidence {
			highestConfidence = box.Confidence
			bestCurrency = box.Class
		}
	}

	responseText := constant.AnnounceNoCurrency
	if bestCurrency != "" {
		responseText = fmt.Sprintf(constant.AnnounceCurrencyHeldFmt, bestCurrency)
	}

	s.logger.Info("currency", "Currency detection finished", map[string]interface{}{
		"currency":   bestCurrency,
		"confidence": highestConfidence,
	})
	s.feedback.Announce(responseText)

	return bestCurrency, nil
}
