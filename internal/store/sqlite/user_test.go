package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/klemart/markd/internal/domain"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	d, err := Open("file:userrepo?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewUserRepository(d)
	ctx := context.Background()

	u, err := repo.Create(ctx, "alice@test.local", "hash1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 || u.Email != "alice@test.local" || u.Hash != "hash1" {
		t.Fatalf("unexpected created user: %+v", u)
	}

	g, err := repo.GetByID(ctx, u.ID)
	if err != nil || g == nil || g.Email != "alice@test.local" {
		t.Fatalf("get by id: %v %+v", err, g)
	}

	g2, err := repo.GetByEmail(ctx, "alice@test.local")
	if err != nil || g2 == nil || g2.ID != u.ID {
		t.Fatalf("get by email: %v %+v", err, g2)
	}

	none, err := repo.GetByEmail(ctx, "nobody@test.local")
	if err != nil || none != nil {
		t.Fatalf("expected nil for unknown email, got %+v err=%v", none, err)
	}

	// Duplicate email is reported as the taken-email error.
	if _, err := repo.Create(ctx, "alice@test.local", "hash2"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("duplicate email: got %v, want ErrEmailTaken", err)
	}
}

func TestUserRepository_Update(t *testing.T) {
	d, err := Open("file:userrepo_update?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewUserRepository(d)
	ctx := context.Background()

	u, err := repo.Create(ctx, "bob@test.local", "h")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first := "Bob"
	updated, err := repo.Update(ctx, u.ID, nil, &first, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FirstName != "Bob" {
		t.Fatalf("first name not updated: %+v", updated)
	}
	if updated.Email != "bob@test.local" {
		t.Fatalf("omitted email overwritten: %+v", updated)
	}

	// Updating onto an existing email collides.
	if _, err := repo.Create(ctx, "carol@test.local", "h"); err != nil {
		t.Fatalf("create second user: %v", err)
	}
	carol := "carol@test.local"
	if _, err := repo.Update(ctx, u.ID, &carol, nil, nil); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("email collision: got %v, want ErrEmailTaken", err)
	}
}
