package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/repository"
)

type orderService struct {
	orders repository.ServiceOrderRepo
}

func NewOrderService(orders repository.ServiceOrderRepo) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) List(ctx context.Context) ([]*domain.ServiceOrder, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading service orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetByID(ctx context.Context, id string) (*domain.ServiceOrder, error) {
	return s.orders.GetByID(ctx, id)
}

type equipmentService struct {
	equipment repository.EquipmentRepo
}

func NewEquipmentService(equipment repository.EquipmentRepo) EquipmentService {
	return &equipmentService{equipment: equipment}
}

func (s *equipmentService) List(ctx context.Context) ([]*domain.Equipment, error) {
	items, err := s.equipment.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading equipment: %w", err)
	}
	return items, nil
}

func (s *equipmentService) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.equipment.GetByID(ctx, id)
}

type profileService struct {
	users repository.UserRepo
}

func NewProfileService(users repository.UserRepo) ProfileService {
	return &profileService{users: users}
}

func (s *profileService) Get(ctx context.Context) (*domain.User, error) {
	u, err := s.users.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return u, nil
}
