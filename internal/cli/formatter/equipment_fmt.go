package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldops/internal/domain"
)

// EquipmentSubtitle is the "Série: x | Modelo: y" line.
func EquipmentSubtitle(e *domain.Equipment) string {
	return fmt.Sprintf("Série: %s | Modelo: %s", e.Serial, e.Model)
}

// FormatEquipmentRow renders one row of the equipment list.
func FormatEquipmentRow(e *domain.Equipment, selected bool) string {
	cursor := "  "
	name := StyleFg.Render(e.Name)
	if selected {
		cursor = StyleGreen.Render("▸ ")
		name = StyleBold.Render(e.Name)
	}
	return fmt.Sprintf("%s%s %s\n    %s\n", cursor, EquipmentGlyph(e.Family()), name, Dim(EquipmentSubtitle(e)))
}

// FormatEquipmentTable renders the equipment list for the non-interactive CLI.
func FormatEquipmentTable(items []*domain.Equipment) string {
	if len(items) == 0 {
		return Dim("Nenhum equipamento encontrado.") + "\n"
	}
	headers := []string{"ID", "NOME", "TIPO", "SÉRIE", "MODELO", "STATUS"}
	rows := make([][]string, 0, len(items))
	for _, e := range items {
		rows = append(rows, []string{
			Dim(e.ID),
			EquipmentGlyph(e.Family()) + " " + e.Name,
			e.Type,
			e.Serial,
			e.Model,
			EquipmentStatusPill(e.Status),
		})
	}
	return RenderTable(headers, rows)
}

// FormatEquipmentDetail renders header, dates, attachments and service
// history of one equipment.
func FormatEquipmentDetail(e *domain.Equipment) string {
	var b strings.Builder

	b.WriteString(EquipmentGlyph(e.Family()) + " " + StyleHeader.Render(e.Name) + "  " + EquipmentStatusPill(e.Status) + "\n")
	b.WriteString(Dim(EquipmentSubtitle(e)) + "\n\n")

	b.WriteString("  " + Field("Localização", e.Location) + "\n")
	b.WriteString("  " + Field("Instalação", e.InstallDate) + "\n")
	b.WriteString("  " + Field("Última Manutenção", e.LastMaintenance) + "\n")
	b.WriteString("  " + Field("Próxima Manutenção", e.NextMaintenance) + "\n\n")

	b.WriteString(Header("Anexos") + "\n")
	if len(e.Attachments) == 0 {
		b.WriteString("  " + Dim("Nenhum anexo.") + "\n")
	}
	for _, a := range e.Attachments {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			StyleRed.Render(strings.ToUpper(string(a.Kind))),
			StyleFg.Render(a.Name),
			Dim(a.Size+" - "+a.Date)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Histórico de Serviços") + "\n")
	if len(e.ServiceHistory) == 0 {
		b.WriteString("  " + Dim("Sem registros.") + "\n")
	}
	for _, r := range e.ServiceHistory {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleBold.Render(r.Title), Dim(r.Date)))
		b.WriteString("    " + Field("Técnico", r.Technician) + "\n")
		b.WriteString("    " + Field("Observações", r.Observations) + "\n")
	}

	return b.String()
}
