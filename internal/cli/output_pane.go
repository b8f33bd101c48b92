package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// outputPane shows command bar output in place of the screen until the
// next non-scroll key.
type outputPane struct {
	text string
	vp   viewport.Model
}

func newOutputPane() outputPane {
	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return outputPane{vp: vp}
}

// outputViewportKeyMap scrolls with arrow and page keys only, leaving letter
// keys to the screen and the global shortcuts.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

func (p *outputPane) visible() bool { return p.text != "" }

func (p *outputPane) show(text string, width, height int) {
	p.text = text
	p.vp.SetContent(text)
	p.resize(width, height)
	p.vp.GotoTop()
}

func (p *outputPane) clear() { p.text = "" }

func (p *outputPane) resize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height
}

// scrolls reports whether msg moves the pane rather than dismissing it.
func (p *outputPane) scrolls(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

func (p *outputPane) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

// overflowing reports whether the text is taller than the pane.
func (p *outputPane) overflowing() bool {
	return p.vp.Height > 0 && p.vp.TotalLineCount() > p.vp.Height
}

func (p *outputPane) view() string {
	if p.vp.Height == 0 {
		return p.text
	}
	return p.vp.View()
}

// hints are the status bar entries while the pane is up.
func (p *outputPane) hints() []string {
	if !p.overflowing() {
		return nil
	}
	pos := fmt.Sprintf("[%d%%]", int(p.vp.ScrollPercent()*100))
	switch {
	case p.vp.AtTop():
		pos = "[TOPO]"
	case p.vp.AtBottom():
		pos = "[FIM]"
	}
	return []string{pos, "↑↓ pgup/pgdn: rolar", "esc: fechar"}
}
