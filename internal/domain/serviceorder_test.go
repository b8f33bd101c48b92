package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeWindow(t *testing.T) {
	cases := []struct {
		name      string
		scheduled string
		time      string
		want      string
	}{
		{"range in parentheses", "25/07/2024 de manhã (09:00 - 12:00)", "Aguardando aprovação", "09:00 - 12:00"},
		{"period only", "Período da manhã (09:00 - 12:00)", "", "09:00 - 12:00"},
		{"no parentheses uses time", "24/07/2024", "14:00h", "14:00h"},
		{"unclosed parenthesis renders empty", "amanhã (cedo", "10:00h", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := &ServiceOrder{Scheduled: tc.scheduled, Time: tc.time}
			assert.Equal(t, tc.want, o.TimeWindow())
		})
	}
}

func TestWhen_SkipsEmptyParts(t *testing.T) {
	assert.Equal(t, "Hoje, 14:00h", (&ServiceOrder{Date: "Hoje", Time: "14:00h"}).When())
	assert.Equal(t, "Aguardando aprovação", (&ServiceOrder{Time: "Aguardando aprovação"}).When())
	assert.Equal(t, "Peças pedidas em 20/07", (&ServiceOrder{Date: "Peças pedidas em 20/07"}).When())
	assert.Empty(t, (&ServiceOrder{}).When())
}

func TestScheduledDay(t *testing.T) {
	assert.Equal(t, "25/07/2024", (&ServiceOrder{Scheduled: "25/07/2024 de manhã (09:00 - 12:00)"}).ScheduledDay())
	assert.Equal(t, "24/07/2024", (&ServiceOrder{Scheduled: "24/07/2024"}).ScheduledDay())
	assert.Empty(t, (&ServiceOrder{}).ScheduledDay())
}

func TestPrimaryAction_PerStatus(t *testing.T) {
	cases := []struct {
		status ServiceOrderStatus
		label  string
		target ActionTarget
	}{
		{StatusForStart, "Iniciar Serviço", TargetDetail},
		{StatusStarted, "Continuar", TargetExecute},
		{StatusForQuote, "Gerar Orçamento", TargetNone},
		{StatusQuoteSent, "Ver Orçamento", TargetNone},
		{StatusAwaitingParts, "Ver Detalhes", TargetDetail},
		{StatusCompleted, "Ver Relatório", TargetNone},
		{StatusPending, "Ver Detalhes", TargetDetail},
	}
	for _, tc := range cases {
		o := &ServiceOrder{Status: tc.status}
		got := o.PrimaryAction()
		assert.Equal(t, tc.label, got.Label, "status=%s", tc.status)
		assert.Equal(t, tc.target, got.Target, "status=%s", tc.status)
	}
}

func TestParseServiceOrderStatus(t *testing.T) {
	s, err := ParseServiceOrderStatus("  por iniciar ")
	require.NoError(t, err)
	assert.Equal(t, StatusForStart, s)

	s, err = ParseServiceOrderStatus("CONCLUÍDA")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, s)

	_, err = ParseServiceOrderStatus("Cancelada")
	assert.Error(t, err)
}

func TestServiceOrderStatuses_AllValidAndDistinct(t *testing.T) {
	require.Len(t, ServiceOrderStatuses, 7)
	seen := make(map[ServiceOrderStatus]bool)
	for _, s := range ServiceOrderStatuses {
		assert.True(t, s.Valid())
		assert.False(t, seen[s], "duplicate status %s", s)
		seen[s] = true
	}
	assert.False(t, ServiceOrderStatus("Cancelada").Valid())
}

func TestIsExecutionStatus(t *testing.T) {
	assert.True(t, IsExecutionStatus(StatusCompleted))
	assert.True(t, IsExecutionStatus(StatusAwaitingParts))
	assert.True(t, IsExecutionStatus(StatusPending))
	assert.False(t, IsExecutionStatus(StatusStarted))
	assert.False(t, IsExecutionStatus(StatusForQuote))
}

func TestEquipmentFamily(t *testing.T) {
	cases := map[string]EquipmentFamily{
		"Ar Condicionado": FamilyAirConditioning,
		"Bomba":           FamilyPump,
		"Gerador":         FamilyGenerator,
		"Refrigeração":    FamilyOther,
	}
	for typ, want := range cases {
		e := &Equipment{Type: typ}
		assert.Equal(t, want, e.Family(), "type=%s", typ)
	}
}

func TestEquipmentLabel(t *testing.T) {
	e := &Equipment{Name: "Bomba Hidráulica P-50", Serial: "BH-98765"}
	assert.Equal(t, "Bomba Hidráulica P-50 (BH-98765)", e.Label())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, EquipmentActive.Valid())
	assert.True(t, EquipmentInactive.Valid())
	assert.False(t, EquipmentStatus("Quebrado").Valid())
	assert.True(t, AttachmentPDF.Valid())
	assert.True(t, AttachmentDoc.Valid())
	assert.False(t, AttachmentKind("xls").Valid())
}

