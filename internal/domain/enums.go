package domain

import (
	"fmt"
	"strings"
)

// ServiceOrderStatus is the lifecycle state of a service order. The values are
// the Portuguese display strings exchanged with the rest of the business and
// must be kept verbatim.
type ServiceOrderStatus string

const (
	StatusPending       ServiceOrderStatus = "Pendente"
	StatusForQuote      ServiceOrderStatus = "Para Orçamento"
	StatusQuoteSent     ServiceOrderStatus = "Orçamento Enviado"
	StatusAwaitingParts ServiceOrderStatus = "Aguardando Peças"
	StatusStarted       ServiceOrderStatus = "Iniciada"
	StatusCompleted     ServiceOrderStatus = "Concluída"
	StatusForStart      ServiceOrderStatus = "Por Iniciar"
)

// ServiceOrderStatuses lists every status in declaration order.
var ServiceOrderStatuses = []ServiceOrderStatus{
	StatusPending,
	StatusForQuote,
	StatusQuoteSent,
	StatusAwaitingParts,
	StatusStarted,
	StatusCompleted,
	StatusForStart,
}

// Valid reports whether s is one of the known statuses.
func (s ServiceOrderStatus) Valid() bool {
	for _, v := range ServiceOrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ParseServiceOrderStatus matches s against the known statuses ignoring case
// and surrounding whitespace.
func ParseServiceOrderStatus(s string) (ServiceOrderStatus, error) {
	trimmed := strings.TrimSpace(s)
	for _, v := range ServiceOrderStatuses {
		if strings.EqualFold(string(v), trimmed) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown service order status %q", s)
}

// ExecutionStatuses are the statuses a technician may set when finalizing a
// service order, in the order they are offered.
var ExecutionStatuses = []ServiceOrderStatus{
	StatusCompleted,
	StatusAwaitingParts,
	StatusPending,
}

// IsExecutionStatus reports whether s may be chosen when finalizing an order.
func IsExecutionStatus(s ServiceOrderStatus) bool {
	for _, v := range ExecutionStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type EquipmentStatus string

const (
	EquipmentActive   EquipmentStatus = "Ativo"
	EquipmentInactive EquipmentStatus = "Inativo"
)

func (s EquipmentStatus) Valid() bool {
	return s == EquipmentActive || s == EquipmentInactive
}

type AttachmentKind string

const (
	AttachmentPDF AttachmentKind = "pdf"
	AttachmentDoc AttachmentKind = "doc"
)

func (k AttachmentKind) Valid() bool {
	return k == AttachmentPDF || k == AttachmentDoc
}
