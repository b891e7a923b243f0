package service

import (
	"menubot/internal/repository"

	"go.uber.org/zap"
)

// AuthService decides whether a user may use the premium menu.
// Decisions are computed fresh per request and fail closed: an
// unreachable backend is never interpreted as "allowed".
type AuthService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// IsAuthorized checks if user may act within the given bot scope.
// Admins are authorized everywhere; otherwise the user must be
// entitled for this scope. Backend errors count as "not granted".
func (s *AuthService) IsAuthorized(userID int64, scope string) bool {
	admin, err := s.userRepo.IsAdmin(userID)
	if err != nil {
		s.logger.Warn("Admin check failed, treating as not granted",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
	} else if admin {
		return true
	}

	entitled, err := s.userRepo.IsEntitled(userID, scope)
	if err != nil {
		s.logger.Warn("Entitlement check failed, denying access",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("scope", scope),
		)
		return false
	}

	return entitled
}
