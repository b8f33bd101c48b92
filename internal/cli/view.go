package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID tells views apart in tests and in the router.
type ViewID int

const (
	ViewLogin ViewID = iota
	ViewOrderList
	ViewOrderDetail
	ViewExecuteOrder
	ViewEquipmentList
	ViewEquipmentDetail
	ViewProfile
	ViewNewOrder
	ViewModalForm
)

// View is a screen or modal shown by appModel.
type View interface {
	tea.Model
	ID() ViewID
	// ShortHelp feeds the status bar.
	ShortHelp() []key.Binding
	// Title is the breadcrumb segment.
	Title() string
}

// CapturesInput is implemented by views with a focused text field. While it
// returns true the view gets every key, q, : and esc included.
type inputCapturer interface {
	CapturesInput() bool
}

func viewCapturesInput(v View) bool {
	c, ok := v.(inputCapturer)
	return ok && c.CapturesInput()
}
