package protocol

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Action is the verb of a device command.
type Action string

const (
	// ActionOn switches a device on.
	ActionOn Action = "on"
	// ActionOff switches a device off.
	ActionOff Action = "off"
)

// MaxDatagramSize bounds what a receiver reads per datagram.
const MaxDatagramSize = 1024

var (
	// ErrEmptyCommand is returned when a datagram carries no payload.
	ErrEmptyCommand = errors.New("empty command")
	// ErrUnknownAction is returned for verbs other than "on" and "off".
	ErrUnknownAction = errors.New("unknown action")
	// ErrMissingKey is returned when the device key is absent.
	ErrMissingKey = errors.New("missing device key")
	// ErrInvalidEncoding is returned for payloads that are not valid UTF-8.
	ErrInvalidEncoding = errors.New("payload is not valid UTF-8")
)

// Command is a single device command as carried on the wire.
type Command struct {
	Action Action
	Key    string
}

// On returns the command that switches key on.
func On(key string) Command {
	return Command{Action: ActionOn, Key: key}
}

// Off returns the command that switches key off.
func Off(key string) Command {
	return Command{Action: ActionOff, Key: key}
}

// Valid reports whether the action is known.
func (a Action) Valid() bool {
	return a == ActionOn || a == ActionOff
}

// ParseAction converts a verb into an Action.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(s))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}

// String returns the wire form: the action, one space, the key.
func (c Command) String() string {
	return string(c.Action) + " " + c.Key
}

// Encode returns the UTF-8 payload of the command.
// There is no length prefix, checksum or terminator.
func (c Command) Encode() []byte {
	return []byte(c.String())
}

// Parse decodes a datagram payload. The action and key are separated by the
// first space, so keys may themselves contain spaces. A single trailing
// newline is tolerated for payloads typed by hand (e.g. via netcat).
func Parse(data []byte) (Command, error) {
	if !utf8.Valid(data) {
		return Command{}, ErrInvalidEncoding
	}

	s := strings.TrimSuffix(string(data), "\n")
	s = strings.TrimSuffix(s, "\r")
	if s == "" {
		return Command{}, ErrEmptyCommand
	}

	verb, key, found := strings.Cut(s, " ")
	action := Action(verb)
	if !action.Valid() {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownAction, verb)
	}
	if !found || key == "" {
		return Command{}, fmt.Errorf("%w: %q", ErrMissingKey, s)
	}

	return Command{Action: action, Key: key}, nil
}
