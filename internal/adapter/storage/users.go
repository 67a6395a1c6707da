package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zarshop/storefront/internal/core/domain"
	"github.com/zarshop/storefront/internal/core/port"
)

var _ port.UserRepository = (*UsersRepository)(nil)

type UsersRepository struct {
	sqldb sqldb
}

func NewUsersRepository(sqldb sqldb) UsersRepository {
	return UsersRepository{sqldb}
}

func (r UsersRepository) CreateUser(
	ctx context.Context, email, name, passwordHash string,
) (domain.User, error) {
	const op = "UsersRepository.CreateUser"

	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO users (email, name, password_hash, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, email, name, password_hash, created_at;`

	row := r.sqldb.QueryRowContext(ctx, query, email, name, passwordHash)
	v, err := scanUser(row.Scan)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (r UsersRepository) UpdateUser(
	ctx context.Context, user domain.User,
) (domain.User, error) {
	const op = "UsersRepository.UpdateUser"

	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		UPDATE users SET name = $2, password_hash = $3
		WHERE id = $1
		RETURNING id, email, name, password_hash, created_at;`

	row := r.sqldb.QueryRowContext(
		ctx, query, user.ID, user.Name, user.PasswordHash,
	)
	v, err := scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (r UsersRepository) UserByEmail(
	ctx context.Context, email string,
) (domain.User, error) {
	const op = "UsersRepository.UserByEmail"
	return r.userBy(ctx, op, `email = $1`, email)
}

func (r UsersRepository) UserByID(
	ctx context.Context, userID int64,
) (domain.User, error) {
	const op = "UsersRepository.UserByID"
	return r.userBy(ctx, op, `id = $1`, userID)
}

func (r UsersRepository) userBy(
	ctx context.Context, op, cond string, arg any,
) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, email, name, password_hash, created_at
		FROM users WHERE ` + cond + `;`

	row := r.sqldb.QueryRowContext(ctx, query, arg)
	v, err := scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func scanUser(scan func(...any) error) (domain.User, error) {
	var v domain.User
	err := scan(&v.ID, &v.Email, &v.Name, &v.PasswordHash, &v.CreatedAt)
	if err != nil {
		return domain.User{}, err
	}
	return v, nil
}
