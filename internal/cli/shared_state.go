package cli

// chromeLines counts the rows around the screen body: header and rule,
// notice, rule and hints, command bar.
const chromeLines = 6

// SharedState is the session state every view reads through one pointer.
type SharedState struct {
	App *App

	// DarkMode is the session theme. The profile screen toggles it.
	DarkMode bool

	Width  int
	Height int
}

// ContentHeight is the number of rows left for the screen body, at least 1.
func (s *SharedState) ContentHeight() int {
	return max(s.Height-chromeLines, 1)
}
