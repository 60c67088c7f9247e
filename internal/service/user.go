package service

import (
	"context"
	"fmt"

	"github.com/qbmille/trivia-api/internal/domain"
	"github.com/qbmille/trivia-api/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	CompleteOnboarding(ctx context.Context, id uint, role, langue, phone, country string) (domain.User, error)
	Delete(ctx context.Context, id uint) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return users, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// CompleteOnboarding records the role/locale/contact info collected at
// first login. Calling it again for an already-onboarded user returns
// the existing record untouched.
func (s *UserService) CompleteOnboarding(ctx context.Context, id uint, role, langue, phone, country string) (domain.User, error) {
	user, err := s.repo.CompleteOnboarding(ctx, id, role, langue, phone, country)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.CompleteOnboarding -> %w", err)
	}

	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
