package service

import (
	"context"
	"strings"

	"shelf-assist-be/internal/pkg/logger"
	"shelf-assist-be/pkg/textnorm"
	"shelf-assist-be/pkg/vision"
)

// MatchResult is the outcome of reconciling candidates with a transcript.
// A zero value means no candidate matched, which is a valid outcome.
type MatchResult struct {
	Matched    bool
	Product    string
	Confidence float64
}

// IMatchingService classifies each candidate region and picks the first one
// whose label and the transcript contain each other.
type IMatchingService interface {
	MatchProduct(ctx context.Context, candidates []string, transcript string) (*MatchResult, error)
}

type matchingService struct {
	registry     *vision.Registry
	productModel string
	lookup       ILookupService
	logger       logger.ILogger
}

func NewMatchingService(
	registry *vision.Registry,
	productModel string,
	lookup ILookupService,
	sysLogger logger.ILogger,
) IMatchingService {
	return &matchingService{
		registry:     registry,
		productModel: productModel,
		lookup:       lookup,
		logger:       sysLogger,
	}
}

func (s *matchingService) MatchProduct(ctx context.Context, candidates []string, transcript string) (*MatchResult, error) {
	model, err := s.registry.Get(s.productModel)
	if err != nil {
		// Without a classifier no candidate can be scored; that degrades
		// to a no-match outcome rather than a request failure.
		s.logger.Error("match", "Product model unavailable", map[string]interface{}{"error": err.Error()})
		return &MatchResult{}, nil
	}

	for _, candidatePath := range candidates {
		prediction, err := model.ClassifyTop1(ctx, candidatePath)
		if err != nil {
			s.logger.Warn("match", "Classification failed, skipping candidate", map[string]interface{}{
				"candidate": candidatePath,
				"error":     err.Error(),
			})
			continue
		}
		if prediction == nil {
			s.logger.Warn("match", "No probabilities for candidate, skipping", map[string]interface{}{
				"candidate": candidatePath,
			})
			continue
		}

		label := textnorm.Clean(prediction.Class)
		s.logger.Debug("match", "Checking candidate against transcript", map[string]interface{}{
			"label":      label,
			"transcript": transcript,
		})

		// Bidirectional containment tolerates partial transcriptions and
		// multi-word labels. First match wins; confidence of later
		// candidates is never consulted.
		if strings.Contains(transcript, label) || strings.Contains(label, transcript) {
			s.logger.Info("match", "Match found", map[string]interface{}{
				"product":    prediction.Class,
				"confidence": prediction.Confidence,
			})
			s.lookup.Locate(ctx, prediction.Class)
			return &MatchResult{
				Matched:    true,
				Product:    prediction.Class,
				Confidence: prediction.Confidence,
			}, nil
		}
	}

	s.logger.Info("match", "No product match found", map[string]interface{}{
		"candidates": len(candidates),
		"transcript": transcript,
	})
	return &MatchResult{}, nil
}
