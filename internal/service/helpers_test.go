package service

import (
	"context"
	"sync"

	"shelf-assist-be/pkg/detector"
	"shelf-assist-be/pkg/vision"
)

// Shared fakes for the service tests.

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeFeedback struct {
	mu        sync.Mutex
	announced []string
}

func (f *fakeFeedback) Announce(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.announced = append(f.announced, text)
}

func (f *fakeFeedback) Consume(ctx context.Context) error { return nil }

func (f *fakeFeedback) All() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.announced...)
}

// fakeModel scripts classification and detection per image path.
type fakeModel struct {
	classifications map[string]*vision.TopPrediction
	classifyErr     map[string]error
	boxes           []vision.Box
	detectErr       error
}

func (m *fakeModel) ClassifyTop1(ctx context.Context, imagePath string) (*vision.TopPrediction, error) {
	if err, ok := m.classifyErr[imagePath]; ok {
		return nil, err
	}
	return m.classifications[imagePath], nil
}

func (m *fakeModel) DetectBoxes(ctx context.Context, imagePath string) ([]vision.Box, error) {
	if m.detectErr != nil {
		return nil, m.detectErr
	}
	return m.boxes, nil
}

// fixedLoader returns the same handle for every model name.
type fixedLoader struct {
	model vision.Model
	err   error
	loads int
}

func (l *fixedLoader) Load(name string) (vision.Model, error) {
	l.loads++
	if l.err != nil {
		return nil, l.err
	}
	return l.model, nil
}

type fakeLookup struct {
	located []string
	found   bool
}

func (f *fakeLookup) Locate(ctx context.Context, productName string) bool {
	f.located = append(f.located, productName)
	return f.found
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	return f.text, f.err
}

type fakeDetector struct {
	predictions []detector.Prediction
	err         error
}

func (f *fakeDetector) Infer(ctx context.Context, imagePath string) ([]detector.Prediction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.predictions, nil
}
