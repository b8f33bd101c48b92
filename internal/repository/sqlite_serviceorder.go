package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/fieldops/internal/db"
	"github.com/alexanderramin/fieldops/internal/domain"
)

// SQLiteServiceOrderRepo implements ServiceOrderRepo.
type SQLiteServiceOrderRepo struct {
	db db.DBTX
}

func NewSQLiteServiceOrderRepo(conn db.DBTX) *SQLiteServiceOrderRepo {
	return &SQLiteServiceOrderRepo{db: conn}
}

const serviceOrderSelect = `SELECT o.id, o.os_number, o.status, o.service_type, o.date, o.time,
	o.description, o.scheduled, c.id, c.name, c.phone, c.email, c.address
	FROM service_orders o JOIN clients c ON c.id = o.client_id`

// Create stores the order and links it to its client and equipment by id.
// The client and equipment rows must already exist.
func (r *SQLiteServiceOrderRepo) Create(ctx context.Context, o *domain.ServiceOrder) error {
	query := `INSERT INTO service_orders (id, seq, os_number, client_id, status, service_type,
		date, time, description, scheduled)
		SELECT ?, COALESCE(MAX(seq), -1) + 1, ?, ?, ?, ?, ?, ?, ?, ? FROM service_orders`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.OSNumber,
		o.Client.ID,
		string(o.Status),
		o.ServiceType,
		o.Date,
		o.Time,
		o.Description,
		o.Scheduled,
	)
	if err != nil {
		return fmt.Errorf("inserting service order %s: %w", o.ID, err)
	}

	for i, e := range o.Equipment {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO service_order_equipment (service_order_id, equipment_id, seq) VALUES (?, ?, ?)`,
			o.ID, e.ID, i)
		if err != nil {
			return fmt.Errorf("linking equipment %s to service order %s: %w", e.ID, o.ID, err)
		}
	}
	for i, h := range o.History {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO service_order_history (id, service_order_id, seq, action, date) VALUES (?, ?, ?, ?, ?)`,
			h.ID, o.ID, i, h.Action, h.Date)
		if err != nil {
			return fmt.Errorf("inserting history entry %s: %w", h.ID, err)
		}
	}
	return nil
}

func (r *SQLiteServiceOrderRepo) GetByID(ctx context.Context, id string) (*domain.ServiceOrder, error) {
	row := r.db.QueryRowContext(ctx, serviceOrderSelect+` WHERE o.id = ?`, id)
	o, err := scanServiceOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("service order %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if err := r.loadChildren(ctx, []*domain.ServiceOrder{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *SQLiteServiceOrderRepo) List(ctx context.Context) ([]*domain.ServiceOrder, error) {
	rows, err := r.db.QueryContext(ctx, serviceOrderSelect+` ORDER BY o.seq`)
	if err != nil {
		return nil, fmt.Errorf("listing service orders: %w", err)
	}

	var orders []*domain.ServiceOrder
	for rows.Next() {
		o, err := scanServiceOrder(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating service orders: %w", err)
	}
	rows.Close()

	if err := r.loadChildren(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func scanServiceOrder(s scanner) (*domain.ServiceOrder, error) {
	var o domain.ServiceOrder
	var status string
	err := s.Scan(
		&o.ID,
		&o.OSNumber,
		&status,
		&o.ServiceType,
		&o.Date,
		&o.Time,
		&o.Description,
		&o.Scheduled,
		&o.Client.ID,
		&o.Client.Name,
		&o.Client.Phone,
		&o.Client.Email,
		&o.Client.Address,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning service order: %w", err)
	}
	o.Status = domain.ServiceOrderStatus(status)
	return &o, nil
}

// loadChildren attaches equipment copies and history entries to orders.
func (r *SQLiteServiceOrderRepo) loadChildren(ctx context.Context, orders []*domain.ServiceOrder) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*domain.ServiceOrder, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}
	in := placeholders(len(ids))

	rows, err := r.db.QueryContext(ctx,
		`SELECT l.service_order_id, `+equipmentColumns+`
		FROM service_order_equipment l JOIN equipment e ON e.id = l.equipment_id
		WHERE l.service_order_id IN (`+in+`) ORDER BY l.service_order_id, l.seq`, idArgs(ids)...)
	if err != nil {
		return fmt.Errorf("loading service order equipment: %w", err)
	}
	type link struct {
		orderID   string
		equipment *domain.Equipment
	}
	var links []link
	for rows.Next() {
		var orderID string
		var e domain.Equipment
		var status string
		err := rows.Scan(&orderID, &e.ID, &e.Name, &e.Type, &e.Serial, &e.Model, &status,
			&e.Location, &e.InstallDate, &e.LastMaintenance, &e.NextMaintenance)
		if err != nil {
			rows.Close()
			return fmt.Errorf("scanning service order equipment: %w", err)
		}
		e.Status = domain.EquipmentStatus(status)
		links = append(links, link{orderID: orderID, equipment: &e})
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return fmt.Errorf("iterating service order equipment: %w", err)
	}

	copies := make([]*domain.Equipment, len(links))
	for i, l := range links {
		copies[i] = l.equipment
	}
	if err := loadEquipmentChildren(ctx, r.db, copies); err != nil {
		return err
	}
	for _, l := range links {
		o := byID[l.orderID]
		o.Equipment = append(o.Equipment, *l.equipment)
	}

	rows, err = r.db.QueryContext(ctx,
		`SELECT service_order_id, id, action, date FROM service_order_history
		WHERE service_order_id IN (`+in+`) ORDER BY service_order_id, seq`, idArgs(ids)...)
	if err != nil {
		return fmt.Errorf("loading service order history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var orderID string
		var h domain.HistoryEntry
		if err := rows.Scan(&orderID, &h.ID, &h.Action, &h.Date); err != nil {
			return fmt.Errorf("scanning history entry: %w", err)
		}
		byID[orderID].History = append(byID[orderID].History, h)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating service order history: %w", err)
	}
	return nil
}
