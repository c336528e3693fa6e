package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/klemart/markd/internal/domain"
	"github.com/klemart/markd/internal/utils"
)

type BookmarkRepository struct {
	db *sql.DB
}

func NewBookmarkRepository(db *sql.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Create inserts a new bookmark owned by b.UserID and returns it with its
// generated id and timestamps.
func (r *BookmarkRepository) Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO bookmarks (user_id, title, description, link, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		b.UserID, b.Title, nullStr(b.Description), b.Link, now, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	out := *b
	out.ID = id
	out.CreatedAt = now
	out.UpdatedAt = now
	return &out, nil
}

// GetByID returns the bookmark with the given id, or (nil, nil) when no such
// record exists. Lookup is by id only; reads are not scoped to an owner.
func (r *BookmarkRepository) GetByID(ctx context.Context, id int64) (*domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var b domain.Bookmark
	var desc sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, description, link, created_at, updated_at
         FROM bookmarks WHERE id = ?`, id).
		Scan(&b.ID, &b.UserID, &b.Title, &desc, &b.Link, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	b.Description = desc.String
	return &b, nil
}

// ListByUserID returns every bookmark owned by userID, in storage order.
// An owner with no bookmarks gets an empty (non-nil) slice.
func (r *BookmarkRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, description, link, created_at, updated_at
         FROM bookmarks WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer utils.Close(rows)

	out := make([]domain.Bookmark, 0, 8)
	for rows.Next() {
		var b domain.Bookmark
		var desc sql.NullString
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &desc, &b.Link, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		b.Description = desc.String
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOwned applies the non-nil patch fields to the bookmark, but only when
// it exists AND belongs to ownerID. The ownership check and the write are a
// single conditional UPDATE, so there is no window between check and mutation.
// Returns the number of affected rows (0 = missing or not owned).
func (r *BookmarkRepository) UpdateOwned(ctx context.Context, ownerID, id int64, title, description, link *string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE bookmarks
         SET title       = COALESCE(?, title),
             description = COALESCE(?, description),
             link        = COALESCE(?, link),
             updated_at  = ?
         WHERE id = ? AND user_id = ?`,
		title, description, link, time.Now().UTC(), id, ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteOwned removes the bookmark when it exists AND belongs to ownerID, as
// a single conditional DELETE. Returns the number of affected rows.
func (r *BookmarkRepository) DeleteOwned(ctx context.Context, ownerID, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM bookmarks WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// nullStr maps the empty string to NULL so optional text columns stay NULL
// instead of storing "".
func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
