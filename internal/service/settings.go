package service

import (
	"menubot/internal/domain"
	"menubot/internal/repository"

	"go.uber.org/zap"
)

// SettingsService persists user settings through a primary backend,
// degrading to an in-process fallback store when the primary fails.
// The two stores are never merged: whichever path accepts a write is
// authoritative for the next read on that same path.
type SettingsService struct {
	primary  repository.SettingsRepository
	fallback repository.SettingsRepository
	logger   *zap.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(primary, fallback repository.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Get returns the best-effort settings snapshot for a user. Backend
// failures never propagate: a failing primary degrades to the
// fallback snapshot, a failing fallback degrades to an empty map.
func (s *SettingsService) Get(userID int64, scope string) domain.Settings {
	settings, err := s.primary.GetSettings(userID, scope)
	if err == nil {
		return settings
	}

	s.logger.Warn("Primary settings read failed, using fallback",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("scope", scope),
	)

	settings, err = s.fallback.GetSettings(userID, scope)
	if err != nil {
		s.logger.Warn("Fallback settings read failed, using empty snapshot",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return domain.Settings{}
	}
	return settings
}

// Set persists a single key. The primary backend is tried first; on
// failure the write lands in the fallback store instead. An error is
// returned only when both paths reject the write.
func (s *SettingsService) Set(userID int64, scope string, key domain.SettingKey, value string) error {
	err := s.primary.SetSetting(userID, scope, string(key), value)
	if err == nil {
		return nil
	}

	s.logger.Warn("Primary settings write failed, writing to fallback",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("scope", scope),
		zap.String("key", string(key)),
	)

	if fbErr := s.fallback.SetSetting(userID, scope, string(key), value); fbErr != nil {
		s.logger.Error("Fallback settings write failed",
			zap.Error(fbErr),
			zap.Int64("user_id", userID),
			zap.String("key", string(key)),
		)
		return fbErr
	}
	return nil
}

// Toggle flips a boolean key and returns the new state. Absent keys
// count as false, so the first toggle turns the feature on.
// Read-then-write with no compare-and-swap: concurrent toggles of the
// same key are last-write-wins.
func (s *SettingsService) Toggle(userID int64, scope string, key domain.SettingKey) (bool, error) {
	current := s.Get(userID, scope).Bool(key)
	next := !current
	if err := s.Set(userID, scope, key, domain.FormatBool(next)); err != nil {
		return current, err
	}
	return next, nil
}
