// Package vision wraps the classification model server. Models are opaque
// scoring functions; this package only knows how to call them and how to
// hand out load-once handles per model kind.
package vision

import "context"

// TopPrediction is a single-label top-1 classification with confidence.
type TopPrediction struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

// Box is one detected region with its label. Coordinates are not exposed;
// the currency pipeline only ranks boxes by confidence.
type Box struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

// Model is a loaded classifier handle.
//
// ClassifyTop1 returns (nil, nil) when the model produced no usable
// probability distribution for the image; callers skip such candidates.
type Model interface {
	ClassifyTop1(ctx context.Context, imagePath string) (*TopPrediction, error)
	DetectBoxes(ctx context.Context, imagePath string) ([]Box, error)
}

// Loader materializes a model handle by name. Loading may be expensive
// (weights download, warm-up); the Registry makes sure it happens once.
type Loader interface {
	Load(name string) (Model, error)
}
