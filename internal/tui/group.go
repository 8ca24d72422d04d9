package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/vpilot/internal/config"
)

// Button labels
const (
	OnLabel   = "Włącz"
	OffLabel  = "Wyłącz"
	BackLabel = "Wróć do wyboru grupy"
)

// Button columns within a device row
const (
	columnOn  = 0
	columnOff = 1
)

// GroupPanel shows one row per device (label, on button, off button) and a
// back button below the rows.
type GroupPanel struct {
	name    string
	devices []config.Device

	// row == len(devices) means the back button has focus
	row    int
	column int

	keys groupKeyMap
}

// NewGroupPanel creates the page for a group
func NewGroupPanel(group config.Group) *GroupPanel {
	return &GroupPanel{
		name:    group.Name,
		devices: group.Devices,
		keys:    newGroupKeyMap(),
	}
}

// ID returns the group name
func (p *GroupPanel) ID() PageID { return PageID(p.name) }

// KeyMap returns the page's key bindings for the help footer
func (p *GroupPanel) KeyMap() help.KeyMap { return p.keys }

// Devices returns the devices in display order
func (p *GroupPanel) Devices() []config.Device { return p.devices }

// Focus returns the focused row and button column
func (p *GroupPanel) Focus() (row, column int) { return p.row, p.column }

func (p *GroupPanel) onBackButton() bool {
	return p.row == len(p.devices)
}

// HandleKey maps a key press to a command
func (p *GroupPanel) HandleKey(msg tea.KeyMsg) (Command, bool) {
	switch {
	case key.Matches(msg, p.keys.Up):
		if p.row > 0 {
			p.row--
		}

	case key.Matches(msg, p.keys.Down):
		if p.row < len(p.devices) {
			p.row++
		}

	case key.Matches(msg, p.keys.Left):
		p.column = columnOn

	case key.Matches(msg, p.keys.Right):
		p.column = columnOff

	case key.Matches(msg, p.keys.Press):
		if p.onBackButton() {
			return Navigate(StartPage), true
		}
		if p.column == columnOn {
			return TurnOn(p.devices[p.row].Key), true
		}
		return TurnOff(p.devices[p.row].Key), true

	case key.Matches(msg, p.keys.On):
		if !p.onBackButton() {
			return TurnOn(p.devices[p.row].Key), true
		}

	case key.Matches(msg, p.keys.Off):
		if !p.onBackButton() {
			return TurnOff(p.devices[p.row].Key), true
		}

	case key.Matches(msg, p.keys.Back):
		return Navigate(StartPage), true

	case key.Matches(msg, p.keys.Quit):
		return Command{Kind: CmdQuit}, true
	}

	return Command{}, false
}

// View renders the device rows and the back button
func (p *GroupPanel) View(state StateReader) string {
	var b strings.Builder

	b.WriteString(RenderTitle(p.name))
	b.WriteString("\n")

	for i, device := range p.devices {
		controls := state.Controls(device.Key)
		focused := i == p.row

		row := lipgloss.JoinHorizontal(
			lipgloss.Top,
			RenderIndicator(state.IsOn(device.Key)),
			" ",
			LabelStyle.Render(truncate(device.Label, LabelWidth-1)),
			RenderButton(OnLabel, ButtonWidth, controls.OnEnabled, focused && p.column == columnOn),
			" ",
			RenderButton(OffLabel, ButtonWidth+1, controls.OffEnabled, focused && p.column == columnOff),
		)

		b.WriteString(row)
		b.WriteString("\n\n")
	}

	b.WriteString(RenderButton(BackLabel, 0, true, p.onBackButton()))
	b.WriteString("\n")

	return b.String()
}

// truncate shortens s to at most width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
