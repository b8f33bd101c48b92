package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/fieldops/internal/db"
	"github.com/alexanderramin/fieldops/internal/domain"
)

// SQLiteEquipmentRepo implements EquipmentRepo.
type SQLiteEquipmentRepo struct {
	db db.DBTX
}

func NewSQLiteEquipmentRepo(conn db.DBTX) *SQLiteEquipmentRepo {
	return &SQLiteEquipmentRepo{db: conn}
}

const equipmentColumns = `e.id, e.name, e.type, e.serial, e.model, e.status, e.location,
	e.install_date, e.last_maintenance, e.next_maintenance`

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (id, seq, name, type, serial, model, status, location,
		install_date, last_maintenance, next_maintenance)
		SELECT ?, COALESCE(MAX(seq), -1) + 1, ?, ?, ?, ?, ?, ?, ?, ?, ? FROM equipment`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		e.Type,
		e.Serial,
		e.Model,
		string(e.Status),
		e.Location,
		e.InstallDate,
		e.LastMaintenance,
		e.NextMaintenance,
	)
	if err != nil {
		return fmt.Errorf("inserting equipment %s: %w", e.ID, err)
	}

	for i, a := range e.Attachments {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO equipment_attachments (id, equipment_id, seq, name, size, date, kind)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, e.ID, i, a.Name, a.Size, a.Date, string(a.Kind))
		if err != nil {
			return fmt.Errorf("inserting attachment %s: %w", a.ID, err)
		}
	}
	for i, s := range e.ServiceHistory {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO service_records (id, equipment_id, seq, title, technician, date, observations)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.ID, e.ID, i, s.Title, s.Technician, s.Date, s.Observations)
		if err != nil {
			return fmt.Errorf("inserting service record %s: %w", s.ID, err)
		}
	}
	return nil
}

func (r *SQLiteEquipmentRepo) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+equipmentColumns+` FROM equipment e WHERE e.id = ?`, id)
	e, err := scanEquipment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("equipment %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if err := loadEquipmentChildren(ctx, r.db, []*domain.Equipment{e}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEquipmentRepo) List(ctx context.Context) ([]*domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+equipmentColumns+` FROM equipment e ORDER BY e.seq`)
	if err != nil {
		return nil, fmt.Errorf("listing equipment: %w", err)
	}

	var items []*domain.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating equipment: %w", err)
	}
	// The in-memory store has one connection; the cursor must be released
	// before the child queries run.
	rows.Close()

	if err := loadEquipmentChildren(ctx, r.db, items); err != nil {
		return nil, err
	}
	return items, nil
}

func scanEquipment(s scanner) (*domain.Equipment, error) {
	var e domain.Equipment
	var status string
	err := s.Scan(
		&e.ID,
		&e.Name,
		&e.Type,
		&e.Serial,
		&e.Model,
		&status,
		&e.Location,
		&e.InstallDate,
		&e.LastMaintenance,
		&e.NextMaintenance,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning equipment: %w", err)
	}
	e.Status = domain.EquipmentStatus(status)
	return &e, nil
}

// loadEquipmentChildren fills Attachments and ServiceHistory for items in
// two queries.
func loadEquipmentChildren(ctx context.Context, conn db.DBTX, items []*domain.Equipment) error {
	if len(items) == 0 {
		return nil
	}
	byID := make(map[string][]*domain.Equipment, len(items))
	ids := make([]string, 0, len(items))
	for _, e := range items {
		if _, seen := byID[e.ID]; !seen {
			ids = append(ids, e.ID)
		}
		byID[e.ID] = append(byID[e.ID], e)
	}
	in := placeholders(len(ids))

	rows, err := conn.QueryContext(ctx,
		`SELECT equipment_id, id, name, size, date, kind FROM equipment_attachments
		WHERE equipment_id IN (`+in+`) ORDER BY equipment_id, seq`, idArgs(ids)...)
	if err != nil {
		return fmt.Errorf("loading attachments: %w", err)
	}
	for rows.Next() {
		var owner, kind string
		var a domain.Attachment
		if err := rows.Scan(&owner, &a.ID, &a.Name, &a.Size, &a.Date, &kind); err != nil {
			rows.Close()
			return fmt.Errorf("scanning attachment: %w", err)
		}
		a.Kind = domain.AttachmentKind(kind)
		for _, e := range byID[owner] {
			e.Attachments = append(e.Attachments, a)
		}
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return fmt.Errorf("iterating attachments: %w", err)
	}

	rows, err = conn.QueryContext(ctx,
		`SELECT equipment_id, id, title, technician, date, observations FROM service_records
		WHERE equipment_id IN (`+in+`) ORDER BY equipment_id, seq`, idArgs(ids)...)
	if err != nil {
		return fmt.Errorf("loading service records: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var owner string
		var s domain.ServiceRecord
		if err := rows.Scan(&owner, &s.ID, &s.Title, &s.Technician, &s.Date, &s.Observations); err != nil {
			return fmt.Errorf("scanning service record: %w", err)
		}
		for _, e := range byID[owner] {
			e.ServiceHistory = append(e.ServiceHistory, s)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating service records: %w", err)
	}
	return nil
}
