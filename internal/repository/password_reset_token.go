package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/rihla/customer-queries/internal/model"
	"github.com/rihla/customer-queries/pkg/db/transactor"
)

// PasswordResetTokenRepository provides access to single-use password reset tokens
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, t *model.PasswordResetToken) error
	FindByID(ctx context.Context, id string) (*model.PasswordResetToken, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type postgresPasswordResetTokenRepository struct {
	trx transactor.PgxTransactor
}

// NewPostgresPasswordResetTokenRepository builds postgresql-backed PasswordResetTokenRepository
func NewPostgresPasswordResetTokenRepository(trx transactor.PgxTransactor) PasswordResetTokenRepository {
	return &postgresPasswordResetTokenRepository{trx: trx}
}

func (r *postgresPasswordResetTokenRepository) Create(ctx context.Context, t *model.PasswordResetToken) error {
	q := "INSERT INTO password_reset_tokens(id, user_id, expires_at) VALUES($1, $2, $3)"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, t.ID, t.UserID, t.ExpiresAt); err != nil {
		return err
	}
	return nil
}

func (r *postgresPasswordResetTokenRepository) FindByID(ctx context.Context, id string) (*model.PasswordResetToken, error) {
	q := "SELECT id, user_id, expires_at FROM password_reset_tokens WHERE id = $1"

	var t model.PasswordResetToken
	err := r.trx.Executor(ctx).QueryRow(ctx, q, id).Scan(&t.ID, &t.UserID, &t.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresPasswordResetTokenRepository) DeleteByID(ctx context.Context, id string) error {
	q := "DELETE FROM password_reset_tokens WHERE id = $1"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, id); err != nil {
		return err
	}
	return nil
}

func (r *postgresPasswordResetTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	q := "DELETE FROM password_reset_tokens WHERE user_id = $1"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, userID); err != nil {
		return err
	}
	return nil
}
