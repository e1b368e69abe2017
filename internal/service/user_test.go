package service

import (
	"context"
	"testing"

	"bistro-server/internal/model"
	"bistro-server/internal/repository"
)

func TestRegisterDeduplicatesByEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	id, err := svc.Register(ctx, "a@x.com", "Alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id == "" {
		t.Fatal("expected an id for the first registration")
	}

	dup, err := svc.Register(ctx, "a@x.com", "Alice Again")
	if err != nil {
		t.Fatalf("duplicate register: %v", err)
	}
	if dup != "" {
		t.Errorf("expected empty id for duplicate email, got %q", dup)
	}

	var count int64
	db.Model(&model.User{}).Where("email = ?", "a@x.com").Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one user row, got %d", count)
	}
}

func TestPromoteIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewUserRepository(db)
	svc := NewUserService(repo)
	ctx := context.Background()

	id, err := svc.Register(ctx, "a@x.com", "Alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Promote(ctx, id); err != nil {
		t.Fatalf("first promote: %v", err)
	}
	if _, err := svc.Promote(ctx, id); err != nil {
		t.Fatalf("second promote must not error: %v", err)
	}

	user, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if user == nil || user.Role != model.RoleAdmin {
		t.Errorf("expected admin role after double promote, got %+v", user)
	}
}

func TestIsAdmin(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	id, err := svc.Register(ctx, "a@x.com", "Alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	admin, err := svc.IsAdmin(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("isAdmin: %v", err)
	}
	if admin {
		t.Error("fresh member should not be admin")
	}

	// absent records answer false, not an error
	admin, err = svc.IsAdmin(ctx, "ghost@x.com")
	if err != nil {
		t.Fatalf("isAdmin for absent record: %v", err)
	}
	if admin {
		t.Error("absent record should not be admin")
	}

	if _, err := svc.Promote(ctx, id); err != nil {
		t.Fatalf("promote: %v", err)
	}
	admin, err = svc.IsAdmin(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("isAdmin after promote: %v", err)
	}
	if !admin {
		t.Error("promoted user should be admin")
	}
}
