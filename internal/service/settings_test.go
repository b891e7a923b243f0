package service

import (
	"errors"
	"testing"
	"time"

	"menubot/internal/domain"
	"menubot/internal/repository/memory"
	"menubot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var errDown = errors.New("primary unavailable")

func newFallback(t *testing.T) *memory.SettingsRepo {
	t.Helper()
	repo, err := memory.NewSettingsRepo(time.Hour)
	assert.NoError(t, err)
	return repo
}

func TestSettingsService_Get_PrimaryHealthy(t *testing.T) {
	primary := new(testutil.MockSettingsRepository)
	primary.On("GetSettings", int64(123), "upload_bot").
		Return(domain.Settings{"font_color": "red"}, nil)

	service := NewSettingsService(primary, newFallback(t), testutil.NewTestLogger())

	settings := service.Get(123, "upload_bot")

	assert.Equal(t, "red", settings["font_color"])
	primary.AssertExpectations(t)
}

func TestSettingsService_Get_FallsBackOnPrimaryError(t *testing.T) {
	fallback := newFallback(t)
	assert.NoError(t, fallback.SetSetting(123, "upload_bot", "font_color", "blue"))

	primary := new(testutil.MockSettingsRepository)
	primary.On("GetSettings", int64(123), "upload_bot").Return(nil, errDown)

	service := NewSettingsService(primary, fallback, testutil.NewTestLogger())

	settings := service.Get(123, "upload_bot")

	assert.Equal(t, "blue", settings["font_color"])
}

func TestSettingsService_Get_BothFailingYieldsEmptySnapshot(t *testing.T) {
	primary := new(testutil.MockSettingsRepository)
	primary.On("GetSettings", int64(123), "upload_bot").Return(nil, errDown)

	brokenFallback := new(testutil.MockSettingsRepository)
	brokenFallback.On("GetSettings", int64(123), "upload_bot").Return(nil, errors.New("cache broken"))

	service := NewSettingsService(primary, brokenFallback, testutil.NewTestLogger())

	settings := service.Get(123, "upload_bot")

	assert.Equal(t, domain.Settings{}, settings)
}

func TestSettingsService_Set_PrimaryAcceptsWrite(t *testing.T) {
	primary := new(testutil.MockSettingsRepository)
	primary.On("SetSetting", int64(123), "upload_bot", "font_color", "red").Return(nil)

	fallback := new(testutil.MockSettingsRepository)

	service := NewSettingsService(primary, fallback, testutil.NewTestLogger())

	err := service.Set(123, "upload_bot", domain.KeyFontColor, "red")

	assert.NoError(t, err)
	primary.AssertExpectations(t)
	fallback.AssertNotCalled(t, "SetSetting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSettingsService_Set_FallbackAcceptsWhenPrimaryFails(t *testing.T) {
	fallback := newFallback(t)

	primary := new(testutil.MockSettingsRepository)
	primary.On("SetSetting", int64(123), "upload_bot", "font_color", "red").Return(errDown)
	primary.On("GetSettings", int64(123), "upload_bot").Return(nil, errDown)

	service := NewSettingsService(primary, fallback, testutil.NewTestLogger())

	err := service.Set(123, "upload_bot", domain.KeyFontColor, "red")
	assert.NoError(t, err)

	// The post-fallback read sees the value written via the fallback path
	settings := service.Get(123, "upload_bot")
	assert.Equal(t, "red", settings["font_color"])
}

func TestSettingsService_Set_BothPathsFailing(t *testing.T) {
	primary := new(testutil.MockSettingsRepository)
	primary.On("SetSetting", int64(123), "upload_bot", "token", "abc").Return(errDown)

	brokenFallback := new(testutil.MockSettingsRepository)
	brokenFallback.On("SetSetting", int64(123), "upload_bot", "token", "abc").
		Return(errors.New("cache broken"))

	service := NewSettingsService(primary, brokenFallback, testutil.NewTestLogger())

	err := service.Set(123, "upload_bot", domain.KeyToken, "abc")

	assert.Error(t, err)
}

func TestSettingsService_RoundTrip(t *testing.T) {
	// Fallback repo doubles as a healthy primary here
	service := NewSettingsService(newFallback(t), newFallback(t), testutil.NewTestLogger())

	err := service.Set(123, "upload_bot", domain.KeyFileName, "report.pdf")
	assert.NoError(t, err)

	settings := service.Get(123, "upload_bot")
	assert.Equal(t, "report.pdf", settings[string(domain.KeyFileName)])
}

func TestSettingsService_Toggle(t *testing.T) {
	service := NewSettingsService(newFallback(t), newFallback(t), testutil.NewTestLogger())

	// Absent key counts as false, first toggle turns it on
	on, err := service.Toggle(123, "upload_bot", domain.KeyPDFHyperlinks)
	assert.NoError(t, err)
	assert.True(t, on)

	// Second toggle restores the original state
	off, err := service.Toggle(123, "upload_bot", domain.KeyPDFHyperlinks)
	assert.NoError(t, err)
	assert.False(t, off)

	settings := service.Get(123, "upload_bot")
	assert.False(t, settings.Bool(domain.KeyPDFHyperlinks))
}

func TestSettingsService_Toggle_SetFailureReportsOldState(t *testing.T) {
	primary := new(testutil.MockSettingsRepository)
	primary.On("GetSettings", int64(123), "upload_bot").Return(domain.Settings{}, nil)
	primary.On("SetSetting", int64(123), "upload_bot", "pdf_hyperlinks", "true").Return(errDown)

	brokenFallback := new(testutil.MockSettingsRepository)
	brokenFallback.On("SetSetting", int64(123), "upload_bot", "pdf_hyperlinks", "true").
		Return(errors.New("cache broken"))

	service := NewSettingsService(primary, brokenFallback, testutil.NewTestLogger())

	state, err := service.Toggle(123, "upload_bot", domain.KeyPDFHyperlinks)

	assert.Error(t, err)
	assert.False(t, state)
}
