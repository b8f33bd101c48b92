package domain

import (
	"regexp"
	"strings"
)

type ServiceOrder struct {
	ID          string
	OSNumber    string
	Client      Client
	Status      ServiceOrderStatus
	ServiceType string
	Date        string
	Time        string
	Description string
	Scheduled   string
	Equipment   []Equipment
	History     []HistoryEntry
}

type HistoryEntry struct {
	ID     string
	Action string
	Date   string
}

var scheduledWindowPattern = regexp.MustCompile(`\(([^)]+)\)`)

// TimeWindow returns the time range embedded in parentheses in Scheduled
// (e.g. "09:00 - 12:00"), falling back to Time when there is none.
func (o *ServiceOrder) TimeWindow() string {
	if strings.Contains(o.Scheduled, "(") {
		if m := scheduledWindowPattern.FindStringSubmatch(o.Scheduled); m != nil {
			return m[1]
		}
		return ""
	}
	return o.Time
}

// When joins the date and time for list cards, skipping empty parts.
func (o *ServiceOrder) When() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{o.Date, o.Time} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// ActionTarget says where the primary action of an order card leads.
type ActionTarget int

const (
	TargetNone ActionTarget = iota
	TargetDetail
	TargetExecute
)

// PrimaryAction is the call-to-action shown on a service order card.
type PrimaryAction struct {
	Label  string
	Target ActionTarget
}

// PrimaryAction returns the card action for the order's status. Quote and
// report actions have no target yet.
func (o *ServiceOrder) PrimaryAction() PrimaryAction {
	switch o.Status {
	case StatusForStart:
		return PrimaryAction{Label: "Iniciar Serviço", Target: TargetDetail}
	case StatusStarted:
		return PrimaryAction{Label: "Continuar", Target: TargetExecute}
	case StatusForQuote:
		return PrimaryAction{Label: "Gerar Orçamento", Target: TargetNone}
	case StatusQuoteSent:
		return PrimaryAction{Label: "Ver Orçamento", Target: TargetNone}
	case StatusCompleted:
		return PrimaryAction{Label: "Ver Relatório", Target: TargetNone}
	default:
		return PrimaryAction{Label: "Ver Detalhes", Target: TargetDetail}
	}
}

// ScheduledDay is the first word of Scheduled, normally the date.
func (o *ServiceOrder) ScheduledDay() string {
	if f := strings.Fields(o.Scheduled); len(f) > 0 {
		return f[0]
	}
	return ""
}
