package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/fieldops/internal/db"
	"github.com/alexanderramin/fieldops/internal/domain"
)

// SQLiteUserRepo implements UserRepo. The store holds a single signed-in user.
type SQLiteUserRepo struct {
	db db.DBTX
}

func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Get(ctx context.Context) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, avatar FROM users ORDER BY rowid LIMIT 1`)

	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Avatar)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

func (r *SQLiteUserRepo) Upsert(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, name, email, phone, avatar) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, email = excluded.email,
			phone = excluded.phone, avatar = excluded.avatar`
	if _, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Email, u.Phone, u.Avatar); err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}
	return nil
}
