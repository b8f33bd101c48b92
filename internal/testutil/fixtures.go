package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/fieldops/internal/domain"
)

var testIDCounter atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, testIDCounter.Add(1))
}

// Service order options
type OrderOption func(*domain.ServiceOrder)

func WithStatus(s domain.ServiceOrderStatus) OrderOption {
	return func(o *domain.ServiceOrder) {
		o.Status = s
	}
}

func WithClient(name, address string) OrderOption {
	return func(o *domain.ServiceOrder) {
		o.Client.Name = name
		o.Client.Address = address
	}
}

func WithOSNumber(n string) OrderOption {
	return func(o *domain.ServiceOrder) {
		o.OSNumber = n
	}
}

func WithEquipment(items ...*domain.Equipment) OrderOption {
	return func(o *domain.ServiceOrder) {
		for _, e := range items {
			o.Equipment = append(o.Equipment, *e)
		}
	}
}

func NewTestOrder(opts ...OrderOption) *domain.ServiceOrder {
	o := &domain.ServiceOrder{
		ID:          nextID("so"),
		OSNumber:    nextID("2024"),
		Client:      domain.Client{ID: nextID("c"), Name: "Cliente Teste", Address: "Rua Teste, 1"},
		Status:      domain.StatusPending,
		ServiceType: "Manutenção Preventiva",
		Date:        "Hoje",
		Time:        "10:00h",
		Scheduled:   "24/07/2024",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Equipment options
type EquipmentOption func(*domain.Equipment)

func WithType(t string) EquipmentOption {
	return func(e *domain.Equipment) {
		e.Type = t
	}
}

func WithEquipmentStatus(s domain.EquipmentStatus) EquipmentOption {
	return func(e *domain.Equipment) {
		e.Status = s
	}
}

func WithSerial(s string) EquipmentOption {
	return func(e *domain.Equipment) {
		e.Serial = s
	}
}

func WithModel(m string) EquipmentOption {
	return func(e *domain.Equipment) {
		e.Model = m
	}
}

func NewTestEquipment(name string, opts ...EquipmentOption) *domain.Equipment {
	e := &domain.Equipment{
		ID:     nextID("e"),
		Name:   name,
		Type:   "Bomba",
		Serial: nextID("SN"),
		Model:  "M-1",
		Status: domain.EquipmentActive,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
