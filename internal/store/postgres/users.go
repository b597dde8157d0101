package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"fitlife/internal/models"
	"fitlife/internal/store"
)

type users struct {
	db *sqlx.DB
}

func (r *users) Create(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (id, name, email, password_hash, provider, role, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Provider, u.Role, u.CreatedAt)
	return err
}

func (r *users) ByEmail(ctx context.Context, email string) (*models.User, error) {
	u := &models.User{}
	err := r.db.GetContext(ctx, u, `SELECT * FROM users WHERE email=$1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
