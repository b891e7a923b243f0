package repository

import (
	"menubot/internal/domain"
)

// UserRepository defines authorization data operations
type UserRepository interface {
	IsAdmin(userID int64) (bool, error)
	IsEntitled(userID int64, scope string) (bool, error)
}

// SettingsRepository defines user settings persistence
type SettingsRepository interface {
	GetSettings(userID int64, scope string) (domain.Settings, error)
	SetSetting(userID int64, scope string, key, value string) error
}
