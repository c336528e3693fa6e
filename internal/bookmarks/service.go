package bookmarks

import (
	"context"

	"github.com/klemart/markd/internal/domain"
	"github.com/klemart/markd/internal/logger"
)

// Store is the slice of bookmark persistence the service needs.
type Store interface {
	Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	GetByID(ctx context.Context, id int64) (*domain.Bookmark, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Bookmark, error)
	UpdateOwned(ctx context.Context, ownerID, id int64, title, description, link *string) (int64, error)
	DeleteOwned(ctx context.Context, ownerID, id int64) (int64, error)
}

// ListCache caches per-owner bookmark lists. May be nil (cache disabled).
type ListCache interface {
	GetList(ctx context.Context, ownerID int64) ([]domain.Bookmark, error)
	SetList(ctx context.Context, ownerID int64, bookmarks []domain.Bookmark) error
	InvalidateList(ctx context.Context, ownerID int64) error
}

// CreateInput carries the fields for a new bookmark. Title and Link are
// required; validation happens at the HTTP layer before the service is called.
type CreateInput struct {
	Title       string
	Description string
	Link        string
}

// EditInput is a partial patch: nil fields are left untouched, non-nil
// fields overwrite the stored value.
type EditInput struct {
	Title       *string
	Description *string
	Link        *string
}

// Service enforces per-user bookmark CRUD semantics over the store.
type Service struct {
	store  Store
	cache  ListCache
	logger logger.Logger
}

// NewService creates the bookmark service. cache may be nil, in which case
// every read goes straight to the store.
func NewService(store Store, cache ListCache, log logger.Logger) *Service {
	return &Service{store: store, cache: cache, logger: log}
}

// ListForOwner returns every bookmark owned by ownerID, in storage order.
// An owner with zero bookmarks gets an empty slice. The cache is consulted
// first and repopulated best effort; a cache fault never fails the read.
func (s *Service) ListForOwner(ctx context.Context, ownerID int64) ([]domain.Bookmark, error) {
	if s.cache != nil {
		cached, err := s.cache.GetList(ctx, ownerID)
		if err != nil {
			s.logger.Warn("bookmark list cache read failed",
				logger.Int64("owner_id", ownerID),
				logger.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	list, err := s.store.ListByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetList(ctx, ownerID, list)
	}
	return list, nil
}

// GetByID returns the bookmark with the given id, or (nil, nil) when none
// exists. Reads are looked up by id only and are not scoped to ownerID; the
// parameter is accepted to mirror the rest of the API surface but unused.
func (s *Service) GetByID(ctx context.Context, ownerID, id int64) (*domain.Bookmark, error) {
	return s.store.GetByID(ctx, id)
}

// Create persists a new bookmark owned by ownerID and returns it with its
// generated id and timestamps.
func (s *Service) Create(ctx context.Context, ownerID int64, in CreateInput) (*domain.Bookmark, error) {
	created, err := s.store.Create(ctx, &domain.Bookmark{
		UserID:      ownerID,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, ownerID)

	s.logger.Info("bookmark created",
		logger.Int64("owner_id", ownerID),
		logger.Int64("bookmark_id", created.ID))
	return created, nil
}

// EditByID applies the patch to the bookmark, but only when it exists and is
// owned by ownerID. The ownership check and the write are one conditional
// UPDATE; zero affected rows means missing or not owned, reported uniformly
// as domain.ErrNotOwner.
func (s *Service) EditByID(ctx context.Context, ownerID, id int64, in EditInput) (*domain.Bookmark, error) {
	affected, err := s.store.UpdateOwned(ctx, ownerID, id, in.Title, in.Description, in.Link)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrNotOwner
	}

	s.invalidate(ctx, ownerID)

	s.logger.Info("bookmark updated",
		logger.Int64("owner_id", ownerID),
		logger.Int64("bookmark_id", id))
	return s.store.GetByID(ctx, id)
}

// DeleteByID permanently removes the bookmark, but only when it exists and
// is owned by ownerID. Same error contract as EditByID: a second delete of
// the same id fails with domain.ErrNotOwner.
func (s *Service) DeleteByID(ctx context.Context, ownerID, id int64) error {
	affected, err := s.store.DeleteOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotOwner
	}

	s.invalidate(ctx, ownerID)

	s.logger.Info("bookmark deleted",
		logger.Int64("owner_id", ownerID),
		logger.Int64("bookmark_id", id))
	return nil
}

// invalidate drops the owner's cached list after a mutation (best effort).
func (s *Service) invalidate(ctx context.Context, ownerID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateList(ctx, ownerID); err != nil {
		s.logger.Warn("bookmark list cache invalidation failed",
			logger.Int64("owner_id", ownerID),
			logger.Error(err))
	}
}
