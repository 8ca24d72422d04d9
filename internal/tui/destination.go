package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/vpilot/internal/transport"
)

// Destination editor fields
const (
	fieldHost = iota
	fieldPort
)

// editorResult tells AppModel what the editor wants after a key press
type editorResult int

const (
	editorPending editorResult = iota
	editorApply
	editorCancel
)

// DestinationEditor edits the broadcast host and port
type DestinationEditor struct {
	HostInput textinput.Model
	PortInput textinput.Model
	Field     int
	Err       string
	Keys      destinationKeyMap
}

// NewDestinationEditor creates an editor prefilled with dest
func NewDestinationEditor(dest transport.Destination) DestinationEditor {
	hostInput := textinput.New()
	hostInput.Placeholder = transport.DefaultHost
	hostInput.CharLimit = 253
	hostInput.Width = 40
	hostInput.SetValue(dest.Host)
	hostInput.Focus()

	portInput := textinput.New()
	portInput.Placeholder = strconv.Itoa(transport.DefaultPort)
	portInput.CharLimit = 5
	portInput.Width = 10
	portInput.SetValue(strconv.Itoa(dest.Port))

	return DestinationEditor{
		HostInput: hostInput,
		PortInput: portInput,
		Field:     fieldHost,
		Keys:      newDestinationKeyMap(),
	}
}

// Init starts the cursor blink
func (e DestinationEditor) Init() tea.Cmd {
	return textinput.Blink
}

// Values returns the trimmed host and the parsed port
func (e DestinationEditor) Values() (string, int, error) {
	host := strings.TrimSpace(e.HostInput.Value())
	if host == "" {
		return "", 0, fmt.Errorf("host must not be empty")
	}

	port, err := strconv.Atoi(strings.TrimSpace(e.PortInput.Value()))
	if err != nil {
		return "", 0, fmt.Errorf("port must be a number")
	}

	return host, port, nil
}

// Update handles input for the editor
func (e DestinationEditor) Update(msg tea.Msg) (DestinationEditor, tea.Cmd, editorResult) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, e.Keys.Cancel):
			return e, nil, editorCancel

		case key.Matches(keyMsg, e.Keys.Confirm):
			if _, _, err := e.Values(); err != nil {
				e.Err = err.Error()
				return e, nil, editorPending
			}
			return e, nil, editorApply

		case key.Matches(keyMsg, e.Keys.Next):
			return e.toggleField(), nil, editorPending
		}
	}

	var cmd tea.Cmd
	if e.Field == fieldHost {
		e.HostInput, cmd = e.HostInput.Update(msg)
	} else {
		e.PortInput, cmd = e.PortInput.Update(msg)
	}

	return e, cmd, editorPending
}

func (e DestinationEditor) toggleField() DestinationEditor {
	if e.Field == fieldHost {
		e.Field = fieldPort
		e.HostInput.Blur()
		e.PortInput.Focus()
	} else {
		e.Field = fieldHost
		e.PortInput.Blur()
		e.HostInput.Focus()
	}
	return e
}

// View renders the editor
func (e DestinationEditor) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Adres docelowy"))
	b.WriteString("\n")

	b.WriteString(e.fieldLabel("Host", fieldHost))
	b.WriteString(e.HostInput.View())
	b.WriteString("\n\n")

	b.WriteString(e.fieldLabel("Port", fieldPort))
	b.WriteString(e.PortInput.View())
	b.WriteString("\n\n")

	if e.Err != "" {
		b.WriteString(RenderNotice(e.Err, true))
		b.WriteString("\n")
	}

	return b.String()
}

func (e DestinationEditor) fieldLabel(text string, field int) string {
	label := fmt.Sprintf("%-6s", text)
	if e.Field == field {
		return FocusedInputStyle.Render("→ " + label)
	}
	return BlurredInputStyle.Render("  " + label)
}
