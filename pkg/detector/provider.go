// Package detector wraps the hosted region-proposal model. The model is an
// opaque collaborator: it receives one image and returns labeled bounding
// boxes as center + size, in the order it predicted them.
package detector

import "context"

// Prediction is one proposed region. X and Y locate the box center.
type Prediction struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence"`
	Class      string  `json:"class"`
}

// Provider proposes candidate regions for an image on disk.
// Prediction order must be preserved by implementations.
type Provider interface {
	Infer(ctx context.Context, imagePath string) ([]Prediction, error)
}
