package postgres

import (
	"errors"
	"testing"

	"menubot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSettingsRepo_GetSettings(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		scope         string
		mockRows      *sqlmock.Rows
		mockError     error
		expected      domain.Settings
		expectedError bool
	}{
		{
			name:   "user with settings",
			userID: 123,
			scope:  "upload_bot",
			mockRows: sqlmock.NewRows([]string{"key", "value"}).
				AddRow("font_color", "red").
				AddRow("pdf_hyperlinks", "true"),
			expected: domain.Settings{
				"font_color":     "red",
				"pdf_hyperlinks": "true",
			},
		},
		{
			name:     "user without settings",
			userID:   456,
			scope:    "upload_bot",
			mockRows: sqlmock.NewRows([]string{"key", "value"}),
			expected: domain.Settings{},
		},
		{
			name:          "database error",
			userID:        123,
			scope:         "upload_bot",
			mockError:     errors.New("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSettingsRepo(db)

			query := "SELECT key, value FROM user_settings"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID, tt.scope).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID, tt.scope).WillReturnRows(tt.mockRows)
			}

			settings, err := repo.GetSettings(tt.userID, tt.scope)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, settings)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSettingsRepo_SetSetting(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSettingsRepo(db)

	mock.ExpectExec("INSERT INTO user_settings").
		WithArgs(int64(123), "upload_bot", "font_color", "red").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SetSetting(123, "upload_bot", "font_color", "red")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_SetSetting_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSettingsRepo(db)

	mock.ExpectExec("INSERT INTO user_settings").
		WithArgs(int64(123), "upload_bot", "font_color", "red").
		WillReturnError(errors.New("connection refused"))

	err = repo.SetSetting(123, "upload_bot", "font_color", "red")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
