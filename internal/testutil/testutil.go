package testutil

import (
	"menubot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSettings creates a settings snapshot from key/value pairs
func NewTestSettings(pairs ...string) domain.Settings {
	s := domain.Settings{}
	for i := 0; i+1 < len(pairs); i += 2 {
		s[pairs[i]] = pairs[i+1]
	}
	return s
}
