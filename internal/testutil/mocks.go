package testutil

import (
	"menubot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAdmin(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) IsEntitled(userID int64, scope string) (bool, error) {
	args := m.Called(userID, scope)
	return args.Bool(0), args.Error(1)
}

// MockSettingsRepository is a mock for SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(userID int64, scope string) (domain.Settings, error) {
	args := m.Called(userID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SetSetting(userID int64, scope string, key, value string) error {
	args := m.Called(userID, scope, key, value)
	return args.Error(0)
}
