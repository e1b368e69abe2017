package service

import (
	"context"
	"fmt"

	"bistro-server/internal/model"
	"bistro-server/internal/repository"

	"github.com/google/uuid"
)

type UserService interface {
	List(ctx context.Context) ([]*model.User, error)
	// Register creates the user unless one with the same email exists.
	// Returns the new id, or "" when the email was already taken.
	Register(ctx context.Context, email, name string) (string, error)
	Delete(ctx context.Context, id string) (int64, error)
	// Promote elevates the user to admin. Idempotent: promoting an admin
	// again succeeds with the same observable result.
	Promote(ctx context.Context, id string) (int64, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(
	userRepo repository.UserRepository,
) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userServiceImpl) Register(ctx context.Context, email, name string) (string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return "", nil
	}

	user := &model.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Role:  model.RoleMember,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	return user.ID, nil
}

func (s *userServiceImpl) Delete(ctx context.Context, id string) (int64, error) {
	return s.userRepo.Delete(ctx, id)
}

func (s *userServiceImpl) Promote(ctx context.Context, id string) (int64, error) {
	matched, err := s.userRepo.SetRole(ctx, id, model.RoleAdmin)
	if err != nil {
		return 0, fmt.Errorf("set role: %w", err)
	}

	return matched, nil
}

// IsAdmin answers for any email, not only the caller's own. Absent records
// answer false rather than erroring.
func (s *userServiceImpl) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("find user by email: %w", err)
	}

	return user != nil && user.Role == model.RoleAdmin, nil
}
