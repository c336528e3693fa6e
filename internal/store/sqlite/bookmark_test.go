package sqlite

import (
	"context"
	"testing"

	"github.com/klemart/markd/internal/domain"
)

func openTestDB(t *testing.T, name string) *BookmarkRepository {
	t.Helper()
	// Shared cache memory database so multiple connections see the same DB.
	d, err := Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	// Bookmarks need an owning user row (FK enforced).
	users := NewUserRepository(d)
	ctx := context.Background()
	for _, email := range []string{"owner1@test.local", "owner2@test.local"} {
		if _, err := users.Create(ctx, email, "x"); err != nil {
			t.Fatalf("seed user %s: %v", email, err)
		}
	}
	return NewBookmarkRepository(d)
}

func TestBookmarkRepository_CreateAndGet(t *testing.T) {
	repo := openTestDB(t, "bmrepo_create")
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Bookmark{
		UserID:      1,
		Title:       "my bookmark",
		Description: "it's a bookmark",
		Link:        "google.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("created record missing generated fields: %+v", created)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected bookmark, got nil")
	}
	if got.Title != "my bookmark" || got.Description != "it's a bookmark" || got.Link != "google.com" || got.UserID != 1 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestBookmarkRepository_GetMissingReturnsNil(t *testing.T) {
	repo := openTestDB(t, "bmrepo_missing")

	got, err := repo.GetByID(context.Background(), 9999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing id, got %+v", got)
	}
}

func TestBookmarkRepository_ListScopedToOwner(t *testing.T) {
	repo := openTestDB(t, "bmrepo_list")
	ctx := context.Background()

	for _, b := range []domain.Bookmark{
		{UserID: 1, Title: "a", Link: "a.com"},
		{UserID: 1, Title: "b", Link: "b.com"},
		{UserID: 2, Title: "c", Link: "c.com"},
	} {
		if _, err := repo.Create(ctx, &b); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list1, err := repo.ListByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("list owner 1: %v", err)
	}
	if len(list1) != 2 {
		t.Fatalf("owner 1 expected 2 bookmarks, got %d", len(list1))
	}
	for _, b := range list1 {
		if b.UserID != 1 {
			t.Fatalf("owner 1 list contains foreign bookmark: %+v", b)
		}
	}

	list2, err := repo.ListByUserID(ctx, 2)
	if err != nil {
		t.Fatalf("list owner 2: %v", err)
	}
	if len(list2) != 1 || list2[0].Title != "c" {
		t.Fatalf("owner 2 list wrong: %+v", list2)
	}

	empty, err := repo.ListByUserID(ctx, 42)
	if err != nil {
		t.Fatalf("list owner 42: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}

func TestBookmarkRepository_UpdateOwned(t *testing.T) {
	repo := openTestDB(t, "bmrepo_update")
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Bookmark{
		UserID: 1, Title: "old title", Description: "keep me", Link: "old.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newTitle := "new title"
	newLink := "newlink.com"

	// Wrong owner: zero rows, record untouched.
	n, err := repo.UpdateOwned(ctx, 2, created.ID, &newTitle, nil, &newLink)
	if err != nil {
		t.Fatalf("update wrong owner: %v", err)
	}
	if n != 0 {
		t.Fatalf("wrong owner affected %d rows, want 0", n)
	}
	unchanged, _ := repo.GetByID(ctx, created.ID)
	if unchanged.Title != "old title" || unchanged.Link != "old.com" {
		t.Fatalf("record mutated by unauthorized update: %+v", unchanged)
	}

	// Right owner: partial patch, omitted fields stay.
	n, err = repo.UpdateOwned(ctx, 1, created.ID, &newTitle, nil, &newLink)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n != 1 {
		t.Fatalf("affected %d rows, want 1", n)
	}
	got, _ := repo.GetByID(ctx, created.ID)
	if got.Title != "new title" || got.Link != "newlink.com" {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Description != "keep me" {
		t.Fatalf("omitted field overwritten: %+v", got)
	}
	if !got.UpdatedAt.After(created.UpdatedAt) && !got.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("updated_at went backwards: %v -> %v", created.UpdatedAt, got.UpdatedAt)
	}

	// Missing id behaves exactly like wrong owner.
	n, err = repo.UpdateOwned(ctx, 1, 9999, &newTitle, nil, nil)
	if err != nil || n != 0 {
		t.Fatalf("missing id: n=%d err=%v, want 0 rows no error", n, err)
	}
}

func TestBookmarkRepository_DeleteOwned(t *testing.T) {
	repo := openTestDB(t, "bmrepo_delete")
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Bookmark{UserID: 1, Title: "t", Link: "l.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Wrong owner does not delete.
	n, err := repo.DeleteOwned(ctx, 2, created.ID)
	if err != nil || n != 0 {
		t.Fatalf("wrong owner delete: n=%d err=%v", n, err)
	}

	// Right owner deletes exactly once.
	n, err = repo.DeleteOwned(ctx, 1, created.ID)
	if err != nil || n != 1 {
		t.Fatalf("delete: n=%d err=%v", n, err)
	}

	// Second delete finds nothing.
	n, err = repo.DeleteOwned(ctx, 1, created.ID)
	if err != nil || n != 0 {
		t.Fatalf("second delete: n=%d err=%v", n, err)
	}

	gone, err := repo.GetByID(ctx, created.ID)
	if err != nil || gone != nil {
		t.Fatalf("expected bookmark deleted, got: %+v err=%v", gone, err)
	}
}
