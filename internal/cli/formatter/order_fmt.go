package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldops/internal/domain"
)

// OrderTitle is the "OS #number - client" card heading.
func OrderTitle(o *domain.ServiceOrder) string {
	return fmt.Sprintf("OS #%s - %s", o.OSNumber, o.Client.Name)
}

// FormatOrderCard renders one service order card of the order list.
func FormatOrderCard(o *domain.ServiceOrder, selected bool) string {
	cursor := "  "
	title := StyleFg.Render(OrderTitle(o))
	if selected {
		cursor = StyleGreen.Render("▸ ")
		title = StyleBold.Render(OrderTitle(o))
	}
	// Quotes pending get a marker in the gutter.
	gutter := "  "
	if o.Status == domain.StatusForQuote {
		gutter = StyleRed.Render("┃ ")
	}

	var b strings.Builder
	b.WriteString(cursor + title + "  " + OrderStatusPill(o.Status) + "\n")
	b.WriteString(gutter + "  " + Dim(o.Client.Address) + "\n")
	b.WriteString(gutter + "  " + StyleFg.Render(o.When()))
	if o.ServiceType != "" {
		b.WriteString(Dim("  ·  ") + StyleFg.Render(o.ServiceType))
	}
	b.WriteString("\n")
	b.WriteString(gutter + "  " + ActionButton(o.PrimaryAction()) + "\n")
	return b.String()
}

// FormatOrderTable renders the order list for the non-interactive CLI.
func FormatOrderTable(orders []*domain.ServiceOrder) string {
	if len(orders) == 0 {
		return Dim("Nenhuma ordem de serviço encontrada.") + "\n"
	}
	headers := []string{"ID", "OS", "CLIENTE", "STATUS", "QUANDO", "SERVIÇO"}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			Dim(o.ID),
			"#" + o.OSNumber,
			o.Client.Name,
			OrderStatusPill(o.Status),
			orDash(o.When()),
			Truncate(o.ServiceType, 40),
		})
	}
	return RenderTable(headers, rows)
}

// FormatOrderDetail renders every section of a service order.
func FormatOrderDetail(o *domain.ServiceOrder) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("OS #"+o.OSNumber) + "\n")
	b.WriteString(OrderStatusPill(o.Status) + "  " + StyleFg.Render(o.ServiceType) + "\n\n")

	b.WriteString(Header("Informações do Cliente") + "\n")
	b.WriteString("  " + Field("Cliente", o.Client.Name) + "\n")
	b.WriteString("  " + Field("Telefone", o.Client.Phone) + "\n")
	b.WriteString("  " + Field("Email", o.Client.Email) + "\n\n")

	b.WriteString(Header("Localização") + "\n")
	b.WriteString("  " + Field("Endereço", o.Client.Address) + "\n\n")

	b.WriteString(Header("Detalhes do Serviço") + "\n")
	b.WriteString("  " + Field("Descrição", o.Description) + "\n")
	b.WriteString("  " + Field("Agendado para", o.ScheduledDay()) + "\n")
	b.WriteString("  " + Field("Horário", o.TimeWindow()) + "\n\n")

	b.WriteString(Header("Equipamentos do Cliente") + "\n")
	if len(o.Equipment) == 0 {
		b.WriteString("  " + Dim("Nenhum equipamento vinculado.") + "\n")
	}
	for i := range o.Equipment {
		e := &o.Equipment[i]
		b.WriteString(fmt.Sprintf("  %d. %s %s  %s\n", i+1, EquipmentGlyph(e.Family()), StyleFg.Render(e.Name), Dim(e.Model)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Histórico") + "\n")
	if len(o.History) == 0 {
		b.WriteString("  " + Dim("Sem registros.") + "\n")
	}
	for _, h := range o.History {
		icon := StyleGreen.Render("✓")
		if strings.Contains(h.Action, "atribuído") {
			icon = StyleBlue.Render("☺")
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", icon, StyleFg.Render(h.Action), Dim(h.Date)))
	}

	return b.String()
}
