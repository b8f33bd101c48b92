package formatter

import (
	"strings"

	"github.com/alexanderramin/fieldops/internal/domain"
)

// FormatProfileCard renders the technician card shown at the top of the
// profile screen and by "fieldops profile".
func FormatProfileCard(u *domain.User) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(u.Name) + "\n")
	b.WriteString(Dim("ID: "+u.ID) + "\n\n")
	b.WriteString(Field("Nome Completo", u.Name) + "\n")
	b.WriteString(Field("Email", u.Email) + "\n")
	b.WriteString(Field("Telefone", u.Phone))
	return RenderBox("Perfil e Configurações", b.String())
}

// Toggle renders an on/off switch.
func Toggle(on bool) string {
	if on {
		return StyleGreen.Render("[●━] ligado")
	}
	return Dim("[━○] desligado")
}
