package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// StartTitle is the prompt shown on the start page
const StartTitle = "Proszę wybrać grupę"

// StartPanel lists one button per non-empty group
type StartPanel struct {
	groups []string
	cursor int
	keys   startKeyMap
}

// NewStartPanel creates the start page for the given group names
func NewStartPanel(groups []string) *StartPanel {
	return &StartPanel{
		groups: groups,
		keys:   newStartKeyMap(),
	}
}

// ID returns StartPage
func (p *StartPanel) ID() PageID { return StartPage }

// KeyMap returns the page's key bindings for the help footer
func (p *StartPanel) KeyMap() help.KeyMap { return p.keys }

// Groups returns the group names in display order
func (p *StartPanel) Groups() []string { return p.groups }

// Cursor returns the index of the focused group button
func (p *StartPanel) Cursor() int { return p.cursor }

// HandleKey maps a key press to a command
func (p *StartPanel) HandleKey(msg tea.KeyMsg) (Command, bool) {
	switch {
	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}

	case key.Matches(msg, p.keys.Down):
		if p.cursor < len(p.groups)-1 {
			p.cursor++
		}

	case key.Matches(msg, p.keys.Enter):
		if len(p.groups) > 0 {
			return Navigate(PageID(p.groups[p.cursor])), true
		}

	case key.Matches(msg, p.keys.Destination):
		return Command{Kind: CmdEditDestination}, true

	case key.Matches(msg, p.keys.Quit):
		return Command{Kind: CmdQuit}, true
	}

	return Command{}, false
}

// View renders the group buttons
func (p *StartPanel) View(state StateReader) string {
	var b strings.Builder

	b.WriteString(RenderTitle(StartTitle))
	b.WriteString("\n")

	if len(p.groups) == 0 {
		b.WriteString(RenderSubtitle("Brak grup z urządzeniami"))
		b.WriteString("\n")
		return b.String()
	}

	width := NavButtonMinWidth
	for _, name := range p.groups {
		if w := len([]rune(name)) + 4; w > width {
			width = w
		}
	}

	for i, name := range p.groups {
		b.WriteString(RenderButton(name, width, true, i == p.cursor))
		b.WriteString("\n\n")
	}

	return b.String()
}
