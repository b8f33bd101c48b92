package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette is one colour theme. The dark palette is Gruvbox dark, the light
// one Gruvbox light.
type Palette struct {
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Orange lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
}

var DarkPalette = Palette{
	Green:  lipgloss.Color("#8ec07c"),
	Yellow: lipgloss.Color("#fabd2f"),
	Red:    lipgloss.Color("#fb4934"),
	Blue:   lipgloss.Color("#83a598"),
	Purple: lipgloss.Color("#d3869b"),
	Orange: lipgloss.Color("#fe8019"),
	Dim:    lipgloss.Color("#928374"),
	Fg:     lipgloss.Color("#ebdbb2"),
	Header: lipgloss.Color("#fe8019"),
}

var LightPalette = Palette{
	Green:  lipgloss.Color("#427b58"),
	Yellow: lipgloss.Color("#b57614"),
	Red:    lipgloss.Color("#9d0006"),
	Blue:   lipgloss.Color("#076678"),
	Purple: lipgloss.Color("#8f3f71"),
	Orange: lipgloss.Color("#af3a03"),
	Dim:    lipgloss.Color("#7c6f64"),
	Fg:     lipgloss.Color("#3c3836"),
	Header: lipgloss.Color("#af3a03"),
}

// Active colours. Set through ApplyTheme.
var (
	ColorGreen  lipgloss.Color
	ColorYellow lipgloss.Color
	ColorRed    lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorPurple lipgloss.Color
	ColorOrange lipgloss.Color
	ColorDim    lipgloss.Color
	ColorFg     lipgloss.Color
	ColorHeader lipgloss.Color
)

// Predefined lipgloss styles, rebuilt by ApplyTheme.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleOrange lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

var darkMode bool

func init() {
	ApplyTheme(true)
}

// ApplyTheme switches every colour and style to the dark or light palette.
// It affects the whole process.
func ApplyTheme(dark bool) {
	p := LightPalette
	if dark {
		p = DarkPalette
	}
	darkMode = dark

	ColorGreen = p.Green
	ColorYellow = p.Yellow
	ColorRed = p.Red
	ColorBlue = p.Blue
	ColorPurple = p.Purple
	ColorOrange = p.Orange
	ColorDim = p.Dim
	ColorFg = p.Fg
	ColorHeader = p.Header

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// DarkMode reports which palette is active.
func DarkMode() bool { return darkMode }

// Header renders a section header with the header style and an underline.
func Header(text string) string {
	line := strings.Repeat("─", lipgloss.Width(text))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(text), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
