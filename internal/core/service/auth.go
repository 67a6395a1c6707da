package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
)

// demoPassword substitutes an empty password on signup, matching the
// permissive demo behavior of the storefront.
const demoPassword = "demo123"

// AuthService implements the storefront demo auth: any credentials are
// accepted and unknown emails are registered on the fly. Sessions are
// opaque tokens resolved through an injected store; there is no
// package-level user state.
type AuthService struct {
	users    port.UserRepository
	sessions port.SessionStore
}

func NewAuth(users port.UserRepository, sessions port.SessionStore) AuthService {
	return AuthService{users, sessions}
}

// Signup creates the user, or updates name and password when the email
// is already registered.
func (s AuthService) Signup(
	ctx context.Context, email, password, name string,
) (domain.User, domain.Session, error) {
	const op = "AuthService.Signup"

	hash, err := hashPassword(password)
	if err != nil {
		return domain.User{}, domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.UserByEmail(ctx, email)
	switch {
	case err == nil:
		user.PasswordHash = hash
		if name != "" {
			user.Name = name
		}
		user, err = s.users.UpdateUser(ctx, user)
	case errors.Is(err, domain.ErrNotFound):
		user, err = s.users.CreateUser(ctx, email, name, hash)
	}
	if err != nil {
		return domain.User{}, domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	session, err := s.startSession(ctx, user)
	if err != nil {
		return domain.User{}, domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return user, session, nil
}

// Login accepts any password and auto-registers unknown emails.
func (s AuthService) Login(
	ctx context.Context, email, password string,
) (domain.User, domain.Session, error) {
	const op = "AuthService.Login"

	user, err := s.users.UserByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		var hash string
		hash, err = hashPassword(password)
		if err != nil {
			return domain.User{}, domain.Session{}, fmt.Errorf("%s: %w", op, err)
		}
		user, err = s.users.CreateUser(ctx, email, "", hash)
	}
	if err != nil {
		return domain.User{}, domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	session, err := s.startSession(ctx, user)
	if err != nil {
		return domain.User{}, domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return user, session, nil
}

func (s AuthService) Logout(ctx context.Context, token string) error {
	const op = "AuthService.Logout"

	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Authenticate resolves a bearer token into the session it belongs to.
func (s AuthService) Authenticate(
	ctx context.Context, token string,
) (domain.Session, error) {
	const op = "AuthService.Authenticate"

	session, err := s.sessions.Session(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.ErrUnauthorized
		}
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return session, nil
}

func (s AuthService) CurrentUser(
	ctx context.Context, session domain.Session,
) (domain.User, error) {
	const op = "AuthService.CurrentUser"

	user, err := s.users.UserByID(ctx, session.UserID)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

func (s AuthService) startSession(
	ctx context.Context, user domain.User,
) (domain.Session, error) {
	session := domain.Session{
		Token:  uuid.NewString(),
		UserID: user.ID,
		Email:  user.Email,
	}
	if err := s.sessions.StoreSession(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func hashPassword(password string) (string, error) {
	if password == "" {
		password = demoPassword
	}
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(password), bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
