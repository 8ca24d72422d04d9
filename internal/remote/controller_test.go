package remote

import (
	"context"
	"errors"
	"testing"

	"github.com/muurk/vpilot/internal/config"
)

// recordingSender records every payload and optionally fails
type recordingSender struct {
	sent []string
	err  error
}

func (s *recordingSender) Send(ctx context.Context, content string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, content)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{Groups: []config.Group{
		{Name: "Kuchnia", Devices: []config.Device{
			{Key: "lamp1", Label: "Lampka"},
			{Key: "lamp2", Label: "Lampa"},
		}},
		{Name: "Wentylatory"},
		{Name: "Salon", Devices: []config.Device{
			{Key: "tv", Label: "Telewizor"},
		}},
	}}
}

func TestNewController_AllOff(t *testing.T) {
	c := NewController(testConfig(), &recordingSender{})

	states := c.States()
	if len(states) != 3 {
		t.Fatalf("len(States()) = %d, want 3", len(states))
	}
	for key, on := range states {
		if on {
			t.Errorf("device %q starts on, want off", key)
		}
		controls := c.Controls(key)
		if !controls.OnEnabled || controls.OffEnabled {
			t.Errorf("Controls(%q) = %+v, want on enabled and off disabled", key, controls)
		}
	}
}

func TestTurnOn_Idempotent(t *testing.T) {
	sender := &recordingSender{}
	c := NewController(testConfig(), sender)
	ctx := context.Background()

	sent, err := c.TurnOn(ctx, "lamp1")
	if err != nil || !sent {
		t.Fatalf("first TurnOn() = %v, %v; want true, nil", sent, err)
	}

	sent, err = c.TurnOn(ctx, "lamp1")
	if err != nil || sent {
		t.Fatalf("second TurnOn() = %v, %v; want false, nil", sent, err)
	}

	if len(sender.sent) != 1 || sender.sent[0] != "on lamp1" {
		t.Errorf("sent = %q, want exactly [\"on lamp1\"]", sender.sent)
	}
}

func TestTurnOff_WhenAlreadyOff(t *testing.T) {
	sender := &recordingSender{}
	c := NewController(testConfig(), sender)

	sent, err := c.TurnOff(context.Background(), "lamp1")
	if err != nil || sent {
		t.Fatalf("TurnOff() = %v, %v; want false, nil", sent, err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent = %q, want nothing", sender.sent)
	}
}

func TestTurnOnThenOff_Order(t *testing.T) {
	sender := &recordingSender{}
	c := NewController(testConfig(), sender)
	ctx := context.Background()

	if _, err := c.TurnOn(ctx, "lamp1"); err != nil {
		t.Fatalf("TurnOn() error = %v", err)
	}
	if _, err := c.TurnOff(ctx, "lamp1"); err != nil {
		t.Fatalf("TurnOff() error = %v", err)
	}

	want := []string{"on lamp1", "off lamp1"}
	if len(sender.sent) != len(want) {
		t.Fatalf("sent = %q, want %q", sender.sent, want)
	}
	for i := range want {
		if sender.sent[i] != want[i] {
			t.Errorf("sent[%d] = %q, want %q", i, sender.sent[i], want[i])
		}
	}
}

func TestControls_Complementary(t *testing.T) {
	c := NewController(testConfig(), &recordingSender{})
	ctx := context.Background()

	if _, err := c.TurnOn(ctx, "tv"); err != nil {
		t.Fatalf("TurnOn() error = %v", err)
	}
	if got := c.Controls("tv"); got.OnEnabled || !got.OffEnabled {
		t.Errorf("after TurnOn, Controls = %+v, want on disabled and off enabled", got)
	}
	if !c.IsOn("tv") {
		t.Error("IsOn(tv) = false after TurnOn")
	}

	if _, err := c.TurnOff(ctx, "tv"); err != nil {
		t.Fatalf("TurnOff() error = %v", err)
	}
	if got := c.Controls("tv"); !got.OnEnabled || got.OffEnabled {
		t.Errorf("after TurnOff, Controls = %+v, want on enabled and off disabled", got)
	}
}

func TestDevicesAreIndependent(t *testing.T) {
	c := NewController(testConfig(), &recordingSender{})

	if _, err := c.TurnOn(context.Background(), "lamp1"); err != nil {
		t.Fatalf("TurnOn() error = %v", err)
	}

	if c.IsOn("lamp2") || c.IsOn("tv") {
		t.Error("turning on lamp1 must not affect other devices")
	}
	if c.OnCount() != 1 {
		t.Errorf("OnCount() = %d, want 1", c.OnCount())
	}
}

func TestUnknownDevice(t *testing.T) {
	sender := &recordingSender{}
	c := NewController(testConfig(), sender)

	_, err := c.TurnOn(context.Background(), "ghost")
	if !errors.Is(err, ErrUnknownDevice) {
		t.Errorf("TurnOn(ghost) error = %v, want ErrUnknownDevice", err)
	}
	if _, ok := c.States()["ghost"]; ok {
		t.Error("unknown key was added to the state store")
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent = %q, want nothing", sender.sent)
	}
}

func TestSendFailure_RollsBack(t *testing.T) {
	sendErr := errors.New("network is unreachable")
	sender := &recordingSender{err: sendErr}
	c := NewController(testConfig(), sender)

	sent, err := c.TurnOn(context.Background(), "lamp1")
	if sent {
		t.Error("TurnOn() reported sent on failure")
	}
	if !errors.Is(err, sendErr) {
		t.Errorf("TurnOn() error = %v, want wrapped send error", err)
	}

	if c.IsOn("lamp1") {
		t.Error("state should be rolled back after a failed send")
	}
	if got := c.Controls("lamp1"); !got.OnEnabled || got.OffEnabled {
		t.Errorf("Controls after failure = %+v, want unchanged", got)
	}

	// The next attempt goes through once the network is back
	sender.err = nil
	if sent, err := c.TurnOn(context.Background(), "lamp1"); err != nil || !sent {
		t.Errorf("retry TurnOn() = %v, %v; want true, nil", sent, err)
	}
}

func TestStates_ReturnsCopy(t *testing.T) {
	c := NewController(testConfig(), &recordingSender{})

	states := c.States()
	states["lamp1"] = true

	if c.IsOn("lamp1") {
		t.Error("mutating States() result must not change the store")
	}
}
