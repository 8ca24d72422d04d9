package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/vpilot/internal/config"
	"github.com/muurk/vpilot/internal/logging"
	"github.com/muurk/vpilot/internal/remote"
	"github.com/muurk/vpilot/internal/transport"
)

// sendTimeout bounds a single broadcast
const sendTimeout = 2 * time.Second

// DestinationSetter reads and changes where commands are broadcast.
// *transport.Broadcaster implements it.
type DestinationSetter interface {
	Destination() transport.Destination
	SetDestination(host string, port int) error
}

// AppModel is the top-level model. It owns the router and dispatches every
// command the pages produce.
type AppModel struct {
	Controller   *remote.Controller
	Destinations DestinationSetter
	Router       *Router

	// Destination editor state
	Editing bool
	Editor  DestinationEditor

	// Last action feedback
	Notice        string
	NoticeIsError bool

	// UI state
	Width  int
	Height int
	Help   help.Model
}

// NewAppModel builds every page from cfg and raises the start page
func NewAppModel(cfg *config.Config, controller *remote.Controller, destinations DestinationSetter) AppModel {
	return AppModel{
		Controller:   controller,
		Destinations: destinations,
		Router:       NewRouter(cfg),
		Help:         help.New(),
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.Editing {
			return m.updateEditor(msg)
		}

		command, ok := m.Router.Current().HandleKey(msg)
		if !ok {
			return m, nil
		}
		return m.dispatch(command)
	}

	if m.Editing {
		return m.updateEditor(msg)
	}
	return m, nil
}

// dispatch carries out a command produced by a page
func (m AppModel) dispatch(command Command) (tea.Model, tea.Cmd) {
	logging.Debug("Dispatching command", zap.Stringer("command", command))
	m.clearNotice()

	switch command.Kind {
	case CmdTurnOn:
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if _, err := m.Controller.TurnOn(ctx, command.Key); err != nil {
			m.setError(err)
		}

	case CmdTurnOff:
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if _, err := m.Controller.TurnOff(ctx, command.Key); err != nil {
			m.setError(err)
		}

	case CmdNavigate:
		if err := m.Router.Show(command.Page); err != nil {
			m.setError(err)
		}

	case CmdEditDestination:
		m.Editor = NewDestinationEditor(m.Destinations.Destination())
		m.Editing = true
		return m, m.Editor.Init()

	case CmdQuit:
		return m, tea.Quit
	}

	return m, nil
}

// updateEditor routes input to the destination editor and applies its result
func (m AppModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	editor, cmd, result := m.Editor.Update(msg)
	m.Editor = editor

	switch result {
	case editorCancel:
		m.Editing = false
		return m, nil

	case editorApply:
		host, port, err := m.Editor.Values()
		if err == nil {
			err = m.Destinations.SetDestination(host, port)
		}
		if err != nil {
			m.Editor.Err = err.Error()
			return m, nil
		}
		m.Editing = false
		m.setNotice(fmt.Sprintf("Adres docelowy: %s", m.Destinations.Destination()))
		return m, nil
	}

	return m, cmd
}

func (m *AppModel) setNotice(text string) {
	m.Notice = text
	m.NoticeIsError = false
}

func (m *AppModel) setError(err error) {
	text := err.Error()

	var sendErr *transport.SendError
	if errors.As(err, &sendErr) {
		text = fmt.Sprintf("Nie wysłano: %s (%s)", sendErr.Kind, sendErr.Destination)
		if hint := sendErr.Hint(); hint != "" {
			text += " - " + hint
		}
	}

	logging.Warn("Action failed", zap.Error(err))
	m.Notice = text
	m.NoticeIsError = true
}

func (m *AppModel) clearNotice() {
	m.Notice = ""
	m.NoticeIsError = false
}

// View renders the raised page (or the destination editor) in the frame
func (m AppModel) View() string {
	var content, helpText string

	if m.Editing {
		content = m.Editor.View()
		helpText = m.Help.View(m.Editor.Keys)
	} else {
		page := m.Router.Current()
		content = page.View(m.Controller)
		helpText = m.Help.View(page.KeyMap())
		if m.Notice != "" {
			content += "\n" + RenderNotice(m.Notice, m.NoticeIsError)
		}
	}

	header := BuildHeaderContent(m.Destinations.Destination().String(), m.Controller.OnCount())
	return RenderApplicationContainer(header, content, helpText, m.Width, m.Height)
}
