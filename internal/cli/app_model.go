package cli

import (
	"strings"

	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model. It owns the navigation stack, the
// view built for its top frame, at most one modal and the command bar.
type appModel struct {
	state    *SharedState
	stack    *nav.Stack
	router   viewRouter
	active   View
	modal    View
	cmdBar   commandBar
	output   outputPane
	quitting bool

	// notice is shown under the header until the next key.
	notice    string
	noticeErr bool
}

// newAppModel builds the TUI. The first frame is the stack root and later
// frames are pushed above it. With no frames the root is the configured
// start screen.
func newAppModel(app *App, frames ...nav.Frame) appModel {
	state := &SharedState{App: app, DarkMode: app.Config.DarkMode}
	if len(frames) == 0 {
		frames = []nav.Frame{nav.To(app.Config.StartScreen)}
	}
	stack := nav.NewStack(frames[0])
	for _, f := range frames[1:] {
		stack.Push(f)
	}

	m := appModel{
		state:  state,
		stack:  stack,
		router: viewRouter{state: state},
		cmdBar: newCommandBar(state),
		output: newOutputPane(),
	}
	m.active = m.router.resolve(stack.Current())
	return m
}

// focused is the view that receives keys: the modal when one is open.
func (m *appModel) focused() View {
	if m.modal != nil {
		return m.modal
	}
	return m.active
}

// show rebuilds the view for the top frame, dropping any modal, output and
// the previous view's local state.
func (m *appModel) show() tea.Cmd {
	m.cmdBar.Blur()
	m.output.clear()
	m.modal = nil
	m.active = m.router.resolve(m.stack.Current())
	return m.active.Init()
}

func (m appModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width, m.state.Height = msg.Width, msg.Height
		m.cmdBar.SetWidth(msg.Width)
		m.output.resize(msg.Width, m.outputHeight())
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.output.visible() {
			return m, m.output.update(msg)
		}
		return m, nil

	case navigateMsg:
		m.stack.Push(msg.frame)
		cmd := m.show()
		m.notice, m.noticeErr = msg.notice, false
		return m, cmd

	case backMsg:
		var cmd tea.Cmd
		if m.stack.Pop() {
			cmd = m.show()
		}
		m.notice, m.noticeErr = msg.notice, false
		return m, cmd

	case homeMsg:
		m.stack.PopToRoot()
		return m, m.show()

	case openModalMsg:
		m.cmdBar.Blur()
		m.output.clear()
		m.modal = msg.view
		return m, msg.view.Init()

	case modalClosedMsg:
		m.modal = nil
		return m, msg.then

	case noticeMsg:
		m.notice, m.noticeErr = msg.text, msg.isErr
		return m, nil

	case cmdOutputMsg:
		m.output.show(msg.output, m.state.Width, m.outputHeight())
		return m, nil

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Data loads, form internals and cursor blinks.
	var cmds []tea.Cmd
	if m.cmdBar.Focused() {
		cmds = append(cmds, m.cmdBar.UpdateNonKey(msg))
	}
	cmds = append(cmds, m.broadcast(msg))
	return m, tea.Batch(cmds...)
}

// outputHeight is 0 until the terminal size is known, which leaves the
// output unclipped.
func (m *appModel) outputHeight() int {
	if m.state.Height == 0 {
		return 0
	}
	return m.state.ContentHeight()
}

// broadcast delivers a non-key message to the modal and the screen view.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var modalCmd tea.Cmd
	if m.modal != nil {
		modalCmd = m.updateModal(msg)
	}
	return tea.Batch(modalCmd, m.updateActive(msg))
}

func (m *appModel) updateModal(msg tea.Msg) tea.Cmd {
	updated, cmd := m.modal.Update(msg)
	m.modal = updated.(View)
	return cmd
}

func (m *appModel) updateActive(msg tea.Msg) tea.Cmd {
	updated, cmd := m.active.Update(msg)
	m.active = updated.(View)
	return cmd
}

// handleKey routes a key, first match wins: ctrl+c, the focused command
// bar, the output pane, an open modal, a screen that captures typing, the
// global keys, and finally the screen.
func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	m.notice = ""

	if m.cmdBar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.output.clear()
		}
		return m, m.cmdBar.Update(msg)
	}

	if m.output.visible() {
		if m.output.scrolls(msg) {
			return m, m.output.update(msg)
		}
		m.output.clear()
		if msg.Type == tea.KeyEsc {
			return m, nil
		}
	}

	if m.modal != nil {
		return m, m.updateModal(msg)
	}
	if viewCapturesInput(m.active) {
		return m, m.updateActive(msg)
	}

	switch msg.String() {
	case ":":
		m.cmdBar.Focus()
		return m, nil
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.stack.Pop() {
			return m, m.show()
		}
		return m, nil
	}
	return m, m.updateActive(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.output.visible():
		body = m.output.view()
	case m.modal != nil:
		body = formatter.RenderBox(m.modal.Title(), m.modal.View())
	default:
		body = m.active.View()
	}

	screen := strings.Join([]string{
		m.renderHeader(),
		m.renderNotice(),
		body,
		m.renderStatusBar(),
		m.cmdBar.View(),
	}, "\n")

	// Fill the terminal so the alt-screen renderer leaves no stale lines.
	if n := strings.Count(screen, "\n") + 1; n < m.state.Height {
		screen += strings.Repeat("\n", m.state.Height-n)
	}
	return screen
}

// breadcrumbs names every frame on the stack, bottom to top, followed by the
// open modal.
func (m *appModel) breadcrumbs() []string {
	frames := m.stack.Frames()
	crumbs := make([]string, 0, len(frames)+1)
	for _, f := range frames[:len(frames)-1] {
		crumbs = append(crumbs, screenTitle(f.Screen))
	}
	crumbs = append(crumbs, m.active.Title())
	if m.modal != nil {
		crumbs = append(crumbs, m.modal.Title())
	}
	return crumbs
}

func (m *appModel) rule() string {
	return lipgloss.NewStyle().Foreground(formatter.ColorDim).
		Render(strings.Repeat("─", max(m.state.Width, 20)))
}

func (m *appModel) renderHeader() string {
	return formatter.StylePurple.Render("fieldops") + " " +
		formatter.Dim("› "+strings.Join(m.breadcrumbs(), " › ")) + "\n" + m.rule()
}

func (m *appModel) renderNotice() string {
	switch {
	case m.notice == "":
		return ""
	case m.noticeErr:
		return formatter.StyleRed.Render("  " + m.notice)
	default:
		return formatter.StyleGreen.Render("  " + m.notice)
	}
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if m.output.visible() {
		hints = m.output.hints()
	} else {
		for _, b := range m.focused().ShortHelp() {
			hints = append(hints, b.Help().Key+": "+b.Help().Desc)
		}
		if !m.cmdBar.Focused() && m.modal == nil && !viewCapturesInput(m.active) {
			if m.stack.Len() > 1 {
				hints = append(hints, "esc: voltar")
			}
			hints = append(hints, ": comando")
		}
	}
	for i, h := range hints {
		hints[i] = formatter.Dim(h)
	}
	return m.rule() + "\n" + strings.Join(hints, "  ")
}
