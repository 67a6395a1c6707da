package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/service"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(
	ctx context.Context, email, name, passwordHash string,
) (domain.User, error) {
	args := m.Called(ctx, email, name, passwordHash)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(
	ctx context.Context, user domain.User,
) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) UserByEmail(
	ctx context.Context, email string,
) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) UserByID(
	ctx context.Context, id int64,
) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) StoreSession(
	ctx context.Context, session domain.Session,
) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Session(
	ctx context.Context, token string,
) (domain.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockSessionStore) DeleteSession(
	ctx context.Context, token string,
) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestAuthLogin(t *testing.T) {
	const email = "shopper@example.com"

	t.Run("KnownEmailStartsSession", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("UserByEmail", t.Context(), email).
			Return(domain.User{ID: 7, Email: email, Name: "Amira"}, nil)

		sessions := new(MockSessionStore)
		sessions.On("StoreSession", t.Context(), mock.Anything).Return(nil)

		auth := service.NewAuth(users, sessions)

		user, session, err := auth.Login(t.Context(), email, "whatever")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, int64(7), session.UserID)
		sessions.AssertExpectations(t)
	})

	t.Run("UnknownEmailIsAutoRegistered", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("UserByEmail", t.Context(), email).
			Return(domain.User{}, domain.ErrNotFound)
		users.On(
			"CreateUser", t.Context(), email, "", mock.AnythingOfType("string"),
		).Return(domain.User{ID: 8, Email: email}, nil)

		sessions := new(MockSessionStore)
		sessions.On("StoreSession", t.Context(), mock.Anything).Return(nil)

		auth := service.NewAuth(users, sessions)

		user, session, err := auth.Login(t.Context(), email, "first-visit")
		require.NoError(t, err)
		assert.Equal(t, int64(8), user.ID)
		assert.Equal(t, email, session.Email)
		users.AssertExpectations(t)
	})
}

func TestAuthSignup(t *testing.T) {
	const email = "shopper@example.com"

	t.Run("ExistingEmailIsUpdated", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("UserByEmail", t.Context(), email).
			Return(domain.User{ID: 7, Email: email, Name: "Amira"}, nil)
		users.On("UpdateUser", t.Context(), mock.Anything).
			Return(domain.User{ID: 7, Email: email, Name: "Amira K."}, nil)

		sessions := new(MockSessionStore)
		sessions.On("StoreSession", t.Context(), mock.Anything).Return(nil)

		auth := service.NewAuth(users, sessions)

		user, _, err := auth.Signup(t.Context(), email, "secret", "Amira K.")
		require.NoError(t, err)
		assert.Equal(t, "Amira K.", user.Name)
		users.AssertExpectations(t)
	})
}

func TestAuthAuthenticate(t *testing.T) {
	t.Run("UnknownTokenIsUnauthorized", func(t *testing.T) {
		sessions := new(MockSessionStore)
		sessions.On("Session", t.Context(), "stale-token").
			Return(domain.Session{}, domain.ErrNotFound)

		auth := service.NewAuth(new(MockUserRepository), sessions)

		_, err := auth.Authenticate(t.Context(), "stale-token")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("ValidTokenResolvesSession", func(t *testing.T) {
		want := domain.Session{Token: "live-token", UserID: 7}

		sessions := new(MockSessionStore)
		sessions.On("Session", t.Context(), "live-token").Return(want, nil)

		auth := service.NewAuth(new(MockUserRepository), sessions)

		got, err := auth.Authenticate(t.Context(), "live-token")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
