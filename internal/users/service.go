package users

import (
	"context"
	"errors"

	"github.com/klemart/markd/internal/domain"
	"github.com/klemart/markd/internal/logger"
)

// Store is the slice of user persistence the service needs.
type Store interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, email, firstName, lastName *string) (*domain.User, error)
}

// EditInput is a partial patch of the user profile.
type EditInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// Service exposes the authenticated user's own profile.
type Service struct {
	store  Store
	logger logger.Logger
}

func NewService(store Store, log logger.Logger) *Service {
	return &Service{store: store, logger: log}
}

// Me returns the user record for the authenticated principal.
func (s *Service) Me(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// The principal came from a valid token, so the row should exist.
		return nil, errors.New("authenticated user not found")
	}
	return u, nil
}

// Edit applies the patch to the principal's own record and returns it.
func (s *Service) Edit(ctx context.Context, id int64, in EditInput) (*domain.User, error) {
	u, err := s.store.Update(ctx, id, in.Email, in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user profile updated",
		logger.Int64("user_id", id))
	return u, nil
}
