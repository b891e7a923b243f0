package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAdmin checks if user is a privileged operator
func (r *UserRepo) IsAdmin(userID int64) (bool, error) {
	var isAdmin bool
	query := `SELECT is_admin FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&isAdmin)

	if err == sql.ErrNoRows {
		// User doesn't exist yet
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return isAdmin, nil
}

// IsEntitled checks if user has been granted access for this bot scope
func (r *UserRepo) IsEntitled(userID int64, scope string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM entitlements WHERE user_id = $1 AND scope = $2)`
	err := r.db.QueryRow(query, userID, scope).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
