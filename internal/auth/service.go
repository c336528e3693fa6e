package auth

import (
	"context"
	"time"

	"github.com/klemart/markd/internal/domain"
	"github.com/klemart/markd/internal/logger"
)

// UserStore is the slice of user persistence the auth service needs.
type UserStore interface {
	Create(ctx context.Context, email, hash string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Service issues access tokens for signup and signin.
type Service struct {
	users  UserStore
	secret string
	ttl    time.Duration
	logger logger.Logger
}

func NewService(users UserStore, secret string, ttl time.Duration, log logger.Logger) *Service {
	return &Service{users: users, secret: secret, ttl: ttl, logger: log}
}

// Signup registers a new user and returns a signed access token.
// Returns domain.ErrEmailTaken when the email is already registered.
func (s *Service) Signup(ctx context.Context, email, password string) (string, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	user, err := s.users.Create(ctx, email, hash)
	if err != nil {
		return "", err
	}

	s.logger.Info("user signed up",
		logger.Int64("user_id", user.ID))

	return IssueToken(s.secret, user.ID, user.Email, s.ttl)
}

// Signin verifies credentials and returns a signed access token.
// Unknown email and wrong password both return domain.ErrBadCredentials.
func (s *Service) Signin(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !CheckPassword(user.Hash, password) {
		return "", domain.ErrBadCredentials
	}

	s.logger.Info("user signed in",
		logger.Int64("user_id", user.ID))

	return IssueToken(s.secret, user.ID, user.Email, s.ttl)
}
