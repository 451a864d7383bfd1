package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
)

// UserService implements the user management use cases. Validation happens
// before any write, and uniqueness is pre-checked so the common conflict is
// reported with a precise message rather than raw constraint text.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(ctx context.Context, name, email string) (*domain.User, error) {
	user, err := domain.NewUser(name, email)
	if err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, user.Email, 0); err != nil {
		return nil, err
	}
	return s.users.Create(ctx, user)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int64, name, email string) (*domain.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := domain.NewUser(name, email)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	if err := s.ensureEmailFree(ctx, updated.Email, existing.ID); err != nil {
		return nil, err
	}
	return s.users.Update(ctx, updated)
}

func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}

// ensureEmailFree rejects an email already held by a different user. The
// unique index remains the backstop for two creates racing past this check.
func (s *UserService) ensureEmailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ports.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return ports.Conflict(fmt.Sprintf("user with email %q already exists", email))
	}
	return nil
}

var _ ports.UserService = (*UserService)(nil)
