package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/repository"
	"github.com/google/uuid"
)

const (
	ActionCreateServiceOrder   = "create-service-order"
	ActionFinalizeServiceOrder = "finalize-service-order"
)

// NewServiceOrderRequest carries the fields of the new service order form.
type NewServiceOrderRequest struct {
	ClientName   string
	EquipmentID  string
	ServiceType  string
	Description  string
	ScheduleDate string
}

// FinalizeServiceOrderRequest carries the execution report of an order.
type FinalizeServiceOrderRequest struct {
	ServiceOrderID string
	Report         string
	Photos         []string
	Status         domain.ServiceOrderStatus
	Signature      string
}

// ActionReceipt acknowledges a simulated action.
type ActionReceipt struct {
	ID         string
	Action     string
	TargetID   string
	RecordedAt time.Time
}

type workOrderService struct {
	orders    repository.ServiceOrderRepo
	equipment repository.EquipmentRepo
	observer  ActionObserver
	now       func() time.Time
}

func NewWorkOrderService(
	orders repository.ServiceOrderRepo,
	equipment repository.EquipmentRepo,
	observers ...ActionObserver,
) WorkOrderService {
	return &workOrderService{
		orders:    orders,
		equipment: equipment,
		observer:  combineObservers(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *workOrderService) Create(ctx context.Context, req NewServiceOrderRequest) (receipt *ActionReceipt, err error) {
	startedAt := s.now()
	fields := map[string]any{
		"client":       req.ClientName,
		"equipment_id": req.EquipmentID,
	}
	defer func() {
		s.observe(ctx, ActionCreateServiceOrder, startedAt, receipt, fields, err)
	}()

	if err = validateNewServiceOrder(req); err != nil {
		return nil, err
	}
	if _, err = s.equipment.GetByID(ctx, req.EquipmentID); err != nil {
		return nil, fmt.Errorf("resolving equipment: %w", err)
	}

	receipt = s.receipt(ActionCreateServiceOrder, "")
	receipt.TargetID = receipt.ID
	return receipt, nil
}

func (s *workOrderService) Finalize(ctx context.Context, req FinalizeServiceOrderRequest) (receipt *ActionReceipt, err error) {
	startedAt := s.now()
	fields := map[string]any{
		"service_order_id": req.ServiceOrderID,
		"status":           string(req.Status),
		"photo_count":      len(req.Photos),
		"signed":           strings.TrimSpace(req.Signature) != "",
	}
	defer func() {
		s.observe(ctx, ActionFinalizeServiceOrder, startedAt, receipt, fields, err)
	}()

	if strings.TrimSpace(req.ServiceOrderID) == "" {
		err = fmt.Errorf("service order id is required: %w", ErrInvalidInput)
		return nil, err
	}
	if !domain.IsExecutionStatus(req.Status) {
		err = fmt.Errorf("status %q cannot be set on finalize: %w", req.Status, ErrInvalidInput)
		return nil, err
	}
	var order *domain.ServiceOrder
	if order, err = s.orders.GetByID(ctx, req.ServiceOrderID); err != nil {
		return nil, fmt.Errorf("resolving service order: %w", err)
	}
	fields["os_number"] = order.OSNumber

	receipt = s.receipt(ActionFinalizeServiceOrder, order.ID)
	return receipt, nil
}

func validateNewServiceOrder(req NewServiceOrderRequest) error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"client", req.ClientName},
		{"equipment", req.EquipmentID},
		{"service type", req.ServiceType},
		{"description", req.Description},
		{"schedule date", req.ScheduleDate},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s: %w", strings.Join(missing, ", "), ErrInvalidInput)
	}
	return nil
}

func (s *workOrderService) receipt(action, target string) *ActionReceipt {
	return &ActionReceipt{
		ID:         uuid.New().String(),
		Action:     action,
		TargetID:   target,
		RecordedAt: s.now(),
	}
}

func (s *workOrderService) observe(ctx context.Context, action string, startedAt time.Time, receipt *ActionReceipt, fields map[string]any, err error) {
	event := ActionEvent{
		Action:    action,
		StartedAt: startedAt,
		Duration:  s.now().Sub(startedAt),
		Err:       err,
		Fields:    fields,
	}
	if receipt != nil {
		event.ReceiptID = receipt.ID
	}
	s.observer.ObserveAction(ctx, event)
}
