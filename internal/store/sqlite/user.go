package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/klemart/markd/internal/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user with the given email and password hash.
// Returns domain.ErrEmailTaken when the email is already registered.
func (r *UserRepository) Create(ctx context.Context, email, hash string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, hash, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		email, hash, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Email: email, Hash: hash, CreatedAt: now, UpdatedAt: now}, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, email, hash, first_name, last_name, created_at, updated_at
         FROM users WHERE id = ?`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, email, hash, first_name, last_name, created_at, updated_at
         FROM users WHERE email = ?`, email))
}

// Update applies the non-nil fields to the user record and returns the
// updated row. Returns domain.ErrEmailTaken on an email collision.
func (r *UserRepository) Update(ctx context.Context, id int64, email, firstName, lastName *string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`UPDATE users
         SET email      = COALESCE(?, email),
             first_name = COALESCE(?, first_name),
             last_name  = COALESCE(?, last_name),
             updated_at = ?
         WHERE id = ?`,
		email, firstName, lastName, time.Now().UTC(), id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) scanOne(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Hash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	return errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique
}
