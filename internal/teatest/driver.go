// Package teatest drives bubbletea models synchronously in tests.
//
// The Driver stands in for tea.Program: it calls Update directly and runs
// every returned Cmd to completion before the next input, so a test reads
// the model state right after a key press with no goroutines or sleeps.
//
// Cmds that block on timers (cursor blink) are abandoned after cmdTimeout.
package teatest

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainSteps bounds the number of Cmds one input may trigger.
const MaxDrainSteps = 1000

// cmdTimeout separates store reads and message factories, which return at
// once, from cursor blink Cmds, which block for ~530ms.
const cmdTimeout = 50 * time.Millisecond

// cmdSliceElem is the element type of tea.BatchMsg and of the unexported
// message produced by tea.Sequence.
var cmdSliceElem = reflect.TypeFor[tea.Cmd]()

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// namedKeys maps the key names accepted by Press to their messages.
var namedKeys = map[string]tea.KeyMsg{
	"enter":     {Type: tea.KeyEnter},
	"esc":       {Type: tea.KeyEsc},
	"tab":       {Type: tea.KeyTab},
	"shift+tab": {Type: tea.KeyShiftTab},
	"backspace": {Type: tea.KeyBackspace},
	"space":     {Type: tea.KeySpace, Runes: []rune{' '}},
	"up":        {Type: tea.KeyUp},
	"down":      {Type: tea.KeyDown},
	"left":      {Type: tea.KeyLeft},
	"right":     {Type: tea.KeyRight},
	"pgup":      {Type: tea.KeyPgUp},
	"pgdown":    {Type: tea.KeyPgDown},
	"ctrl+c":    {Type: tea.KeyCtrlC},
}

// Driver feeds input to a tea.Model and runs its Cmds inline.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting records a tea.QuitMsg seen while draining. The runtime
	// normally consumes that message, so models rarely track it themselves.
	Quitting bool
}

// Option configures a Driver in New.
type Option func(*Driver)

// New wraps model. Call DrainInit afterwards to run the model's Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// DrainInit runs the model's Init Cmd and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init())
}

// Send delivers msg and drains the resulting Cmds. Input after a quit is
// dropped.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd)
}

// SendKey delivers a key message.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// Press sends each named key in turn ("enter", "esc", "shift+tab", ...).
// Unknown names fail the test.
func (d *Driver) Press(names ...string) {
	d.T.Helper()
	for _, name := range names {
		msg, ok := namedKeys[name]
		if !ok {
			d.T.Fatalf("teatest: unknown key %q", name)
		}
		d.SendKey(msg)
	}
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) PressEnter()     { d.T.Helper(); d.Press("enter") }
func (d *Driver) PressEsc()       { d.T.Helper(); d.Press("esc") }
func (d *Driver) PressCtrlC()     { d.T.Helper(); d.Press("ctrl+c") }
func (d *Driver) PressTab()       { d.T.Helper(); d.Press("tab") }
func (d *Driver) PressShiftTab()  { d.T.Helper(); d.Press("shift+tab") }
func (d *Driver) PressBackspace() { d.T.Helper(); d.Press("backspace") }
func (d *Driver) PressSpace()     { d.T.Helper(); d.Press("space") }
func (d *Driver) PressUp()        { d.T.Helper(); d.Press("up") }
func (d *Driver) PressDown()      { d.T.Helper(); d.Press("down") }

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// PlainView renders the model with ANSI escape sequences removed.
func (d *Driver) PlainView() string {
	return StripANSI(d.Model.View())
}

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// drain runs cmd and every Cmd produced while handling its messages, depth
// first, in the order tea.Batch and tea.Sequence list them.
func (d *Driver) drain(cmd tea.Cmd) {
	d.T.Helper()
	pending := []tea.Cmd{cmd}
	for steps := 0; len(pending) > 0; {
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if next == nil {
			continue
		}
		if steps++; steps > MaxDrainSteps {
			d.T.Logf("teatest: stopped after %d cmds", MaxDrainSteps)
			return
		}

		msg := runWithTimeout(next)
		if msg == nil || isCursorBlink(msg) {
			continue
		}
		if cmds, ok := asCmdSlice(msg); ok {
			for i := len(cmds) - 1; i >= 0; i-- {
				pending = append(pending, cmds[i])
			}
			continue
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			d.Quitting = true
			d.Model, _ = d.Model.Update(msg)
			continue
		}

		var follow tea.Cmd
		d.Model, follow = d.Model.Update(msg)
		pending = append(pending, follow)
	}
}

// asCmdSlice unpacks messages whose underlying type is []tea.Cmd.
func asCmdSlice(msg tea.Msg) ([]tea.Cmd, bool) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch, true
	}
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdSliceElem {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i], _ = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

// runWithTimeout returns the Cmd's message, or nil when it does not return
// within cmdTimeout.
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink messages of bubbles/cursor,
// which would otherwise chain into more timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
