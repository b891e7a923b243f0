package postgres

import (
	"database/sql"

	"menubot/internal/domain"
)

// SettingsRepo implements repository.SettingsRepository
type SettingsRepo struct {
	db *sql.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// GetSettings returns the settings snapshot for a user in a scope
func (r *SettingsRepo) GetSettings(userID int64, scope string) (domain.Settings, error) {
	query := `
		SELECT key, value FROM user_settings
		WHERE user_id = $1 AND scope = $2
	`
	rows, err := r.db.Query(query, userID, scope)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := domain.Settings{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}

	return settings, rows.Err()
}

// SetSetting upserts a single key for a user in a scope
func (r *SettingsRepo) SetSetting(userID int64, scope string, key, value string) error {
	query := `
		INSERT INTO user_settings (user_id, scope, key, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, scope, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID, scope, key, value)
	return err
}
