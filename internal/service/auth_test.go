package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/qbmille/trivia-api/internal/domain"
	"github.com/qbmille/trivia-api/internal/repository"
	"github.com/qbmille/trivia-api/internal/service"
)

type stubAuthRepo struct {
	users map[string]domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: map[string]domain.User{}}
}

func (r *stubAuthRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return domain.User{}, repository.ErrUserEmailExists
	}
	user.ID = uint(len(r.users) + 1)
	r.users[user.Email] = user
	return user, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func TestSignup(t *testing.T) {
	svc := service.NewAuthService(newStubAuthRepo())

	created, err := svc.Signup(context.Background(), domain.User{
		Email:    "jean@example.com",
		Password: "password1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleJoueur, created.Role, "role defaults to JOUEUR")
	assert.Equal(t, domain.LangueFR, created.Langue, "langue defaults to FR")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password1")))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := service.NewAuthService(newStubAuthRepo())
	user := domain.User{Email: "jean@example.com", Password: "password1"}

	_, err := svc.Signup(context.Background(), user)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), user)
	assert.ErrorIs(t, err, service.ErrUserEmailExists)
}

func TestLogin(t *testing.T) {
	repo := newStubAuthRepo()
	svc := service.NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{
		Email:    "jean@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "jean@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, "jean@example.com", user.Email)

	_, err = svc.Login(context.Background(), "jean@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrWrongPassword)

	_, err = svc.Login(context.Background(), "nobody@example.com", "password1")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
