package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	promptPlain  = "fieldops ❯ "
	historyLimit = 50
)

// commandBar is the text input below the status bar. It keeps the commands
// of the session for up/down recall and suggests command names, order and
// equipment ids, and screen names as the technician types.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history []string
	// cursor indexes history while recalling; len(history) is the blank line.
	cursor int

	ids      map[argKind][]string
	idsReady bool
}

func newCommandBar(state *SharedState) commandBar {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 200
	in.ShowSuggestions = true
	in.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	in.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	return commandBar{input: in, state: state}
}

func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool { return c.focused }

func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len([]rune(promptPlain)) - 1
}

// Update handles a key while the bar is focused. Enter runs the line.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		line := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if line == "" {
			return nil
		}
		c.remember(line)
		return c.executeCommand(line)
	case tea.KeyUp:
		c.recall(-1)
		return nil
	case tea.KeyDown:
		c.recall(+1)
		return nil
	case tea.KeyEsc:
		c.Blur()
		return nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.updateSuggestions()
	return cmd
}

// UpdateNonKey forwards cursor blinks and similar messages to the input.
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *commandBar) View() string {
	prompt := formatter.StylePurple.Render("fieldops") + " " + formatter.Dim("❯") + " "
	if !c.focused {
		return prompt + formatter.Dim("pressione : para digitar um comando")
	}
	return prompt + c.input.View()
}

// ── history ──────────────────────────────────────────────────────────────────

// remember appends line unless it repeats the previous entry. The oldest
// entries are dropped past historyLimit.
func (c *commandBar) remember(line string) {
	if n := len(c.history); n == 0 || c.history[n-1] != line {
		c.history = append(c.history, line)
	}
	if over := len(c.history) - historyLimit; over > 0 {
		c.history = c.history[over:]
	}
	c.cursor = len(c.history)
}

// recall moves through history by step. Moving past the newest entry
// clears the input.
func (c *commandBar) recall(step int) {
	next := min(max(c.cursor+step, 0), len(c.history))
	if step < 0 && next == c.cursor {
		return
	}
	c.cursor = next
	if c.cursor == len(c.history) {
		c.input.SetValue("")
		return
	}
	c.input.SetValue(c.history[c.cursor])
	c.input.CursorEnd()
}

// ── suggestions ──────────────────────────────────────────────────────────────

// updateSuggestions offers command names for the first word and, for
// commands that take one, values for the first argument. The textinput
// matches suggestions against the whole line, so argument suggestions
// carry the command in front.
func (c *commandBar) updateSuggestions() {
	line := c.input.Value()
	words := strings.Fields(line)
	open := strings.HasSuffix(line, " ")

	var sugs []string
	switch {
	case len(words) == 0:
	case len(words) == 1 && !open:
		sugs = filterSuggestions(commandNames(), words[0])
	case len(words) == 1 || (len(words) == 2 && !open):
		name := strings.ToLower(words[0])
		cmd, ok := lookupCommand(name)
		if !ok || cmd.arg == argNone {
			break
		}
		prefix := ""
		if len(words) == 2 {
			prefix = words[1]
		}
		for _, v := range filterSuggestions(c.argValues(cmd.arg), prefix) {
			sugs = append(sugs, name+" "+v)
		}
	}
	c.input.SetSuggestions(sugs)
}

// argValues returns the suggestion pool for kind. Order and equipment ids
// are read from the store on first use.
func (c *commandBar) argValues(kind argKind) []string {
	if kind == argScreen {
		names := make([]string, 0, len(nav.Screens))
		for _, s := range nav.Screens {
			names = append(names, s.String())
		}
		return names
	}
	if !c.idsReady {
		c.loadIDs()
	}
	return c.ids[kind]
}

func (c *commandBar) loadIDs() {
	c.idsReady = true
	c.ids = make(map[argKind][]string, 2)
	if c.state.App == nil {
		return
	}
	ctx := context.Background()
	if orders, err := c.state.App.Orders.List(ctx); err == nil {
		for _, o := range orders {
			c.ids[argOrder] = append(c.ids[argOrder], o.ID)
		}
	}
	if items, err := c.state.App.Equipment.List(ctx); err == nil {
		for _, e := range items {
			c.ids[argEquipment] = append(c.ids[argEquipment], e.ID)
		}
	}
}

// filterSuggestions returns the entries of pool that start with prefix,
// ignoring case.
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	p := strings.ToLower(prefix)
	var out []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), p) {
			out = append(out, s)
		}
	}
	return out
}
