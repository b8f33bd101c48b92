package service

import (
	"context"

	"github.com/alexanderramin/fieldops/internal/domain"
)

type OrderService interface {
	List(ctx context.Context) ([]*domain.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceOrder, error)
}

type EquipmentService interface {
	List(ctx context.Context) ([]*domain.Equipment, error)
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.User, error)
}

// WorkOrderService runs the technician's write actions. They are simulated:
// input is validated and acknowledged, nothing is stored.
type WorkOrderService interface {
	Create(ctx context.Context, req NewServiceOrderRequest) (*ActionReceipt, error)
	Finalize(ctx context.Context, req FinalizeServiceOrderRequest) (*ActionReceipt, error)
}
