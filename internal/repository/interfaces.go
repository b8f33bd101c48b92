package repository

import (
	"context"

	"github.com/alexanderramin/fieldops/internal/domain"
)

type UserRepo interface {
	Get(ctx context.Context) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) error
}

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
}

// EquipmentRepo loads equipment together with its attachments and service
// history.
type EquipmentRepo interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]*domain.Equipment, error)
}

// ServiceOrderRepo loads orders with their resolved client, equipment copies
// and history entries.
type ServiceOrderRepo interface {
	Create(ctx context.Context, o *domain.ServiceOrder) error
	GetByID(ctx context.Context, id string) (*domain.ServiceOrder, error)
	List(ctx context.Context) ([]*domain.ServiceOrder, error)
}
