package formatter

import (
	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// OrderStatusStyle returns the colour of a service order status.
func OrderStatusStyle(status domain.ServiceOrderStatus) lipgloss.Style {
	switch status {
	case domain.StatusForStart:
		return StyleYellow
	case domain.StatusStarted:
		return StyleBlue
	case domain.StatusForQuote:
		return StyleRed
	case domain.StatusQuoteSent:
		return StyleOrange
	case domain.StatusAwaitingParts:
		return StylePurple
	case domain.StatusCompleted:
		return StyleGreen
	default:
		return StyleDim
	}
}

// OrderStatusPill returns a colored status indicator such as "● Por Iniciar".
func OrderStatusPill(status domain.ServiceOrderStatus) string {
	return OrderStatusStyle(status).Render("● " + string(status))
}

// EquipmentStatusPill returns a colored indicator for equipment status.
func EquipmentStatusPill(status domain.EquipmentStatus) string {
	if status == domain.EquipmentActive {
		return StyleGreen.Render("● " + string(status))
	}
	return StyleDim.Render("○ " + string(status))
}

// EquipmentGlyph is the icon for an equipment family. Unknown families share
// the air conditioning glyph.
func EquipmentGlyph(family domain.EquipmentFamily) string {
	switch family {
	case domain.FamilyPump:
		return StyleBlue.Render("◉")
	case domain.FamilyGenerator:
		return StyleYellow.Render("ϟ")
	default:
		return StyleBlue.Render("❄")
	}
}

// ActionButton renders a card call-to-action. Actions without a target are dimmed.
func ActionButton(action domain.PrimaryAction) string {
	label := "[ " + action.Label + " ]"
	if action.Target == domain.TargetNone {
		return StyleDim.Render(label)
	}
	return StyleGreen.Render(label)
}
