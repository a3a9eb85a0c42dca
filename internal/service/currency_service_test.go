package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelf-assist-be/internal/constant"
	"shelf-assist-be/internal/pkg/apperrors"
	"shelf-assist-be/pkg/vision"
)

func newCurrencyService(model *fakeModel, loaderErr error, feedback *fakeFeedback) ICurrencyService {
	loader := &fixedLoader{model: model, err: loaderErr}
	return NewCurrencyService(vision.NewRegistry(loader), "currency-detector", feedback, nopLogger{})
}

func TestDetectCurrencyPicksHighestConfidence(t *testing.T) {
	model := &fakeModel{boxes: []vision.Box{
		{Class: "A", Confidence: 0.4},
		{Class: "B", Confidence: 0.91},
		{Class: "C", Confidence: 0.3},
	}}
	feedback := &fakeFeedback{}
	svc := newCurrencyService(model, nil, feedback)

	currency, err := svc.Detect(context.Background(), "note.jpg")
	require.NoError(t, err)
	assert.Equal(t, "B", currency)
	assert.Equal(t, []string{fmt.Sprintf(constant.AnnounceCurrencyHeldFmt, "B")}, feedback.All())
}

func TestDetectCurrencyTieKeepsFirstSeen(t *testing.T) {
	model := &fakeModel{boxes: []vision.Box{
		{Class: "10 dollars", Confidence: 0.8},
		{Class: "20 dollars", Confidence: 0.8},
	}}
	svc := newCurrencyService(model, nil, &fakeFeedback{})

	currency, err := svc.Detect(context.Background(), "note.jpg")
	require.NoError(t, err)
	assert.Equal(t, "10 dollars", currency)
}

func TestDetectCurrencyNoBoxes(t *testing.T) {
	feedback := &fakeFeedback{}
	svc := newCurrencyService(&fakeModel{}, nil, feedback)

	currency, err := svc.Detect(context.Background(), "note.jpg")
	require.NoError(t, err)
	assert.Empty(t, currency, "no detection is a valid outcome, not an error")
	assert.Equal(t, []string{constant.AnnounceNoCurrency}, feedback.All())
}

func TestDetectCurrencyClassifierFailure(t *testing.T) {
	feedback := &fakeFeedback{}
	svc := newCurrencyService(&fakeModel{detectErr: errors.New("cuda out of memory")}, nil, feedback)

	_, err := svc.Detect(context.Background(), "note.jpg")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindCollaborator, apperrors.KindOf(err))
	assert.Empty(t, feedback.All(), "failures are reported to the caller, not announced as a detection result")
}

func TestDetectCurrencyModelLoadFailure(t *testing.T) {
	svc := newCurrencyService(nil, errors.New("weights missing"), &fakeFeedback{})

	_, err := svc.Detect(context.Background(), "note.jpg")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindCollaborator, apperrors.KindOf(err))
}
