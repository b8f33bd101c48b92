package cli

import (
	"testing"

	"github.com/alexanderramin/fieldops/internal/nav"
	"github.com/alexanderramin/fieldops/internal/teatest"
)

// TestDriver adds appModel inspection to teatest.Driver: the navigation
// stack, the modal, the notice line and the command bar.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver opens a 120x40 TUI on frames (the configured start screen
// when none) and drains Init, so the top screen has read the store.
func NewTestDriver(t *testing.T, app *App, frames ...nav.Frame) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(app, frames...), teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

// Command runs input through the command bar. Commands that only print
// leave the bar focused; it is blurred so later keys reach the screen.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
	if d.CmdBarFocused() {
		d.PressEsc()
	}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID is the ID of the view receiving keys: the modal when open.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	if v := m.focused(); v != nil {
		return v.ID()
	}
	return ViewID(-1)
}

// ScreenView returns the view of the top frame, ignoring any modal.
func (d *TestDriver) ScreenView() View { return d.appModel().active }

func (d *TestDriver) CurrentFrame() nav.Frame { return d.appModel().stack.Current() }

func (d *TestDriver) StackLen() int { return d.appModel().stack.Len() }

// StackScreens lists the stack bottom to top.
func (d *TestDriver) StackScreens() []nav.Screen {
	var screens []nav.Screen
	for _, f := range d.appModel().stack.Frames() {
		screens = append(screens, f.Screen)
	}
	return screens
}

func (d *TestDriver) ModalOpen() bool { return d.appModel().modal != nil }

func (d *TestDriver) Notice() string { return d.appModel().notice }

func (d *TestDriver) State() *SharedState { return d.appModel().state }

// IsQuitting covers both the model's own flag and a tea.Quit seen by the
// driver.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.cmdBar.Focused()
}

// LastOutput is the command output on screen, empty once dismissed.
func (d *TestDriver) LastOutput() string { return d.appModel().output.text }
