package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/fieldops/internal/db"
	"github.com/alexanderramin/fieldops/internal/domain"
)

// SQLiteClientRepo implements ClientRepo.
type SQLiteClientRepo struct {
	db db.DBTX
}

func NewSQLiteClientRepo(conn db.DBTX) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: conn}
}

const clientColumns = `id, name, phone, email, address`

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (id, seq, name, phone, email, address)
		SELECT ?, COALESCE(MAX(seq), -1) + 1, ?, ?, ?, ? FROM clients`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Phone, c.Email, c.Address)
	if err != nil {
		return fmt.Errorf("inserting client %s: %w", c.ID, err)
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)

	var c domain.Client
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("client %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning client: %w", err)
	}
	return &c, nil
}

func (r *SQLiteClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address); err != nil {
			return nil, fmt.Errorf("scanning client row: %w", err)
		}
		clients = append(clients, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}
	return clients, nil
}
