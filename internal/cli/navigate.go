package cli

import (
	"github.com/alexanderramin/fieldops/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request screen transitions.
// The appModel handles these in its Update method.

// navigateMsg pushes a frame onto the navigation stack.
type navigateMsg struct {
	frame  nav.Frame
	notice string
}

// backMsg pops the current frame, returning to the previous screen.
type backMsg struct {
	notice string
}

// homeMsg pops every frame above the root.
type homeMsg struct{}

// openModalMsg shows a view above the current screen without touching the
// navigation stack.
type openModalMsg struct {
	view View
}

// modalClosedMsg removes the modal and then runs then.
type modalClosedMsg struct {
	then tea.Cmd
}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the content area.
type cmdOutputMsg struct {
	output string
}

// noticeMsg shows a one-line message above the current screen until the
// next key press.
type noticeMsg struct {
	text  string
	isErr bool
}

// quitMsg signals the app to quit.
type quitMsg struct{}

// navigateTo returns a tea.Cmd that pushes a frame.
func navigateTo(f nav.Frame) tea.Cmd {
	return func() tea.Msg { return navigateMsg{frame: f} }
}

// goBack returns a tea.Cmd that pops the current frame.
func goBack() tea.Cmd {
	return func() tea.Msg { return backMsg{} }
}

// goHome returns a tea.Cmd that pops to the root frame.
func goHome() tea.Cmd {
	return func() tea.Msg { return homeMsg{} }
}

// openModal returns a tea.Cmd that shows v as a modal.
func openModal(v View) tea.Cmd {
	return func() tea.Msg { return openModalMsg{view: v} }
}

// closeModal returns a tea.Cmd that removes the modal and runs then.
func closeModal(then tea.Cmd) tea.Cmd {
	return func() tea.Msg { return modalClosedMsg{then: then} }
}

// notify returns a tea.Cmd that shows an informational notice.
func notify(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

// frameFor builds a frame for s, attaching id to the parameter s takes.
// Screens without parameters ignore id.
func frameFor(s nav.Screen, id string) nav.Frame {
	switch s {
	case nav.ServiceOrderDetail, nav.ExecuteServiceOrder:
		return nav.ToOrder(s, id)
	case nav.EquipmentDetail:
		return nav.ToEquipment(s, id)
	}
	return nav.To(s)
}
