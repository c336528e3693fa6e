package users

import (
	"context"
	"testing"

	"github.com/klemart/markd/internal/logger"
	"github.com/klemart/markd/internal/store/sqlite"
)

func TestService_MeAndEdit(t *testing.T) {
	d, err := sqlite.Open("file:usersvc?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := sqlite.NewUserRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, "evan@test.local", "hash")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	svc := NewService(repo, logger.New("error", false))

	me, err := svc.Me(ctx, created.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if me.Email != "evan@test.local" {
		t.Fatalf("unexpected user: %+v", me)
	}

	first, last := "Evan", "You"
	updated, err := svc.Edit(ctx, created.ID, EditInput{FirstName: &first, LastName: &last})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if updated.FirstName != "Evan" || updated.LastName != "You" {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Email != "evan@test.local" {
		t.Fatalf("omitted email overwritten: %+v", updated)
	}

	// A principal id with no row is a fault, not an empty result.
	if _, err := svc.Me(ctx, 9999); err == nil {
		t.Error("Me() with unknown id should fail")
	}
}
