package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/muurk/vpilot/internal/config"
	"github.com/muurk/vpilot/internal/logging"
	"github.com/muurk/vpilot/internal/protocol"
)

// ErrUnknownDevice is returned for a key that is not in the configuration
var ErrUnknownDevice = errors.New("unknown device")

// Sender delivers a command payload. *transport.Broadcaster implements it.
type Sender interface {
	Send(ctx context.Context, content string) error
}

// Controls is the enabled state of a device's two buttons.
// Exactly one of the two is enabled at any time.
type Controls struct {
	OnEnabled  bool
	OffEnabled bool
}

// Controller owns the device state store and turns state changes into
// commands. It is not safe for concurrent use; the panel calls it from its
// single update loop.
type Controller struct {
	states map[string]bool
	sender Sender
}

// NewController seeds every device in cfg to off.
func NewController(cfg *config.Config, sender Sender) *Controller {
	states := make(map[string]bool, cfg.DeviceCount())
	for _, key := range cfg.DeviceKeys() {
		states[key] = false
	}

	return &Controller{
		states: states,
		sender: sender,
	}
}

// TurnOn switches key on and sends "on <key>". It is a no-op returning
// sent=false when the device is already on.
func (c *Controller) TurnOn(ctx context.Context, key string) (bool, error) {
	return c.set(ctx, key, true)
}

// TurnOff switches key off and sends "off <key>". It is a no-op returning
// sent=false when the device is already off.
func (c *Controller) TurnOff(ctx context.Context, key string) (bool, error) {
	return c.set(ctx, key, false)
}

func (c *Controller) set(ctx context.Context, key string, on bool) (bool, error) {
	current, ok := c.states[key]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownDevice, key)
	}
	if current == on {
		return false, nil
	}

	cmd := protocol.Off(key)
	if on {
		cmd = protocol.On(key)
	}

	c.states[key] = on
	if err := c.sender.Send(ctx, cmd.String()); err != nil {
		// Keep state matching what was last broadcast
		c.states[key] = current
		return false, fmt.Errorf("failed to send %q: %w", cmd.String(), err)
	}

	logging.LogStateChange(key, on)
	return true, nil
}

// IsOn reports the current state of key. Unknown keys report false.
func (c *Controller) IsOn(key string) bool {
	return c.states[key]
}

// Controls returns which of key's buttons are enabled: the on button while
// the device is off, the off button while it is on.
func (c *Controller) Controls(key string) Controls {
	on := c.states[key]
	return Controls{
		OnEnabled:  !on,
		OffEnabled: on,
	}
}

// States returns a copy of the state store.
func (c *Controller) States() map[string]bool {
	states := make(map[string]bool, len(c.states))
	for k, v := range c.states {
		states[k] = v
	}
	return states
}

// OnCount returns how many devices are currently on.
func (c *Controller) OnCount() int {
	n := 0
	for _, on := range c.states {
		if on {
			n++
		}
	}
	return n
}
