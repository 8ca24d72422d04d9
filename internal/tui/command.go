package tui

import "fmt"

// CommandKind identifies what a panel asks the application to do
type CommandKind int

const (
	CmdTurnOn CommandKind = iota + 1
	CmdTurnOff
	CmdNavigate
	CmdEditDestination
	CmdQuit
)

// String returns the kind name
func (k CommandKind) String() string {
	switch k {
	case CmdTurnOn:
		return "TurnOn"
	case CmdTurnOff:
		return "TurnOff"
	case CmdNavigate:
		return "Navigate"
	case CmdEditDestination:
		return "EditDestination"
	case CmdQuit:
		return "Quit"
	default:
		return fmt.Sprintf("CommandKind(%d)", k)
	}
}

// Command is a user action produced by a panel. Panels only build commands;
// AppModel.dispatch carries them out.
type Command struct {
	Kind CommandKind
	Key  string // device key for TurnOn/TurnOff
	Page PageID // target for Navigate
}

// TurnOn asks for device key to be switched on
func TurnOn(key string) Command {
	return Command{Kind: CmdTurnOn, Key: key}
}

// TurnOff asks for device key to be switched off
func TurnOff(key string) Command {
	return Command{Kind: CmdTurnOff, Key: key}
}

// Navigate asks for page to be raised
func Navigate(page PageID) Command {
	return Command{Kind: CmdNavigate, Page: page}
}

// String returns a debug representation of the command
func (c Command) String() string {
	switch c.Kind {
	case CmdTurnOn, CmdTurnOff:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Key)
	case CmdNavigate:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Page)
	default:
		return c.Kind.String()
	}
}
