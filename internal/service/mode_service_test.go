package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelf-assist-be/internal/constant"
	"shelf-assist-be/internal/pkg/apperrors"
	"shelf-assist-be/pkg/vision"
)

func newModeService(loader *fixedLoader, feedback *fakeFeedback) IModeService {
	return NewModeService(vision.NewRegistry(loader), "currency-detector", feedback, nopLogger{})
}

func TestSetModeSwitchAndRepeat(t *testing.T) {
	feedback := &fakeFeedback{}
	svc := newModeService(&fixedLoader{model: &fakeModel{}}, feedback)

	assert.Equal(t, ModeProduct, svc.Current())

	mode, changed, err := svc.Set(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, ModeCurrency, mode)
	assert.True(t, changed)

	// Setting the same mode again is a no-op without announcement.
	mode, changed, err = svc.Set(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, ModeCurrency, mode)
	assert.False(t, changed)

	announcements := feedback.All()
	require.Len(t, announcements, 1)
	assert.Equal(t, constant.AnnounceCurrencyMode+constant.AnnounceCurrencyModelLoaded, announcements[0])
}

func TestSetModeInvalidValue(t *testing.T) {
	feedback := &fakeFeedback{}
	svc := newModeService(&fixedLoader{model: &fakeModel{}}, feedback)

	_, changed, err := svc.Set(context.Background(), "2")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
	assert.False(t, changed)
	assert.Equal(t, ModeProduct, svc.Current(), "failed set must not mutate state")
	assert.Equal(t, []string{constant.AnnounceInvalidMode}, feedback.All())
}

func TestSetModeCurrencyLoadFailureStillSwitches(t *testing.T) {
	feedback := &fakeFeedback{}
	svc := newModeService(&fixedLoader{err: errors.New("weights missing")}, feedback)

	mode, changed, err := svc.Set(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, ModeCurrency, mode)
	assert.True(t, changed)

	// Switch is announced without the loaded suffix.
	assert.Equal(t, []string{constant.AnnounceCurrencyMode}, feedback.All())
}

func TestSetModeBackToProduct(t *testing.T) {
	feedback := &fakeFeedback{}
	svc := newModeService(&fixedLoader{model: &fakeModel{}}, feedback)

	_, _, err := svc.Set(context.Background(), "1")
	require.NoError(t, err)

	mode, changed, err := svc.Set(context.Background(), "0")
	require.NoError(t, err)
	assert.Equal(t, ModeProduct, mode)
	assert.True(t, changed)

	announcements := feedback.All()
	require.Len(t, announcements, 2)
	assert.Equal(t, constant.AnnounceProductMode, announcements[1])
}
