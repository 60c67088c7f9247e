package repository

import (
	"context"
	"fmt"

	"github.com/qbmille/trivia-api/internal/domain"
	"github.com/qbmille/trivia-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindAll(ctx context.Context) ([]dao.User, error)
	Update(ctx context.Context, user dao.User) (dao.User, error)
	CompleteOnboarding(ctx context.Context, id uint, role, langue, phone, country string) (dao.User, error)
	Delete(ctx context.Context, id uint) error
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Email:     user.Email,
		Password:  user.Password,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Langue:    user.Langue,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return userDaoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return userDaoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return userDaoToDomain(found), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	users := make([]domain.User, len(found))
	for i, u := range found {
		users[i] = userDaoToDomain(u)
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	updated, err := r.dao.Update(ctx, dao.User{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Langue:    user.Langue,
		Phone:     user.Phone,
		Country:   user.Country,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return userDaoToDomain(updated), nil
}

func (r *UserRepository) CompleteOnboarding(ctx context.Context, id uint, role, langue, phone, country string) (domain.User, error) {
	updated, err := r.dao.CompleteOnboarding(ctx, id, role, langue, phone, country)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.CompleteOnboarding -> %w", err)
	}

	return userDaoToDomain(updated), nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func userDaoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Langue:    u.Langue,
		Phone:     u.Phone,
		Country:   u.Country,
		Onboarded: u.Onboarded,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
