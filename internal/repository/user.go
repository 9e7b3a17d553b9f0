package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/rihla/customer-queries/internal/model"
	"github.com/rihla/customer-queries/pkg/db/transactor"
)

// UserRepository provides access to registered accounts
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	UpdatePasswordHash(ctx context.Context, id string, hash string) error
}

type postgresUserRepository struct {
	trx transactor.PgxTransactor
}

// NewPostgresUserRepository builds postgresql-backed UserRepository
func NewPostgresUserRepository(trx transactor.PgxTransactor) UserRepository {
	return &postgresUserRepository{trx: trx}
}

func (r *postgresUserRepository) Create(ctx context.Context, u *model.User) error {
	q := "INSERT INTO users(id, email, display_name, password_hash) VALUES($1, $2, $3, $4)"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, u.ID, u.Email, u.DisplayName, u.PasswordHash); err != nil {
		return err
	}
	return nil
}

func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	q := "SELECT id, email, display_name, password_hash FROM users WHERE email = $1"
	return r.scanRow(r.trx.Executor(ctx).QueryRow(ctx, q, email))
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	q := "SELECT id, email, display_name, password_hash FROM users WHERE id = $1"
	return r.scanRow(r.trx.Executor(ctx).QueryRow(ctx, q, id))
}

func (r *postgresUserRepository) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	q := "UPDATE users SET password_hash = $1 WHERE id = $2"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, hash, id); err != nil {
		return err
	}
	return nil
}

func (r *postgresUserRepository) scanRow(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
