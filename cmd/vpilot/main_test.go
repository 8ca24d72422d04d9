package main

import (
	"bytes"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/muurk/vpilot/internal/config"
	"github.com/muurk/vpilot/internal/protocol"
	"github.com/muurk/vpilot/internal/transport"
	"github.com/muurk/vpilot/internal/urls"
)

func TestRequireConfigArg(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		ok      bool
	}{
		{"missing", nil, errMissingConfig, false},
		{"empty string", []string{""}, errMissingConfig, false},
		{"one path", []string{"devices.yaml"}, nil, true},
		{"too many", []string{"a.yaml", "b.yaml"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireConfigArg(rootCmd, tt.args)
			if tt.ok {
				if err != nil {
					t.Errorf("requireConfigArg() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("requireConfigArg() should fail")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("requireConfigArg() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMissingConfigMessage(t *testing.T) {
	want := "Proszę podać ścieżkę do pliku konfiguracyjnego YAML"
	if errMissingConfig.Error() != want {
		t.Errorf("errMissingConfig = %q, want %q", errMissingConfig, want)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devices.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestRunCheck(t *testing.T) {
	path := writeConfig(t, `Kuchnia:
  lamp1: Lampka
  lamp2: Lampa
Wentylatory: {}
Salon:
  tv: Telewizor
`)

	var out bytes.Buffer
	checkCmd.SetOut(&out)
	defer checkCmd.SetOut(nil)

	if err := runCheck(checkCmd, []string{path}); err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"Kuchnia", "lamp1", "Lampka", "Wentylatory (pusta)", "tv", "3 group(s), 3 device(s)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "Kuchnia") > strings.Index(got, "Salon") {
		t.Error("groups printed out of order")
	}
}

func TestRunCheck_EmptyConfig(t *testing.T) {
	path := writeConfig(t, "")

	err := runCheck(checkCmd, []string{path})
	if !errors.Is(err, config.ErrEmptyConfig) {
		t.Errorf("runCheck() error = %v, want ErrEmptyConfig", err)
	}
}

func TestFormatDatagram(t *testing.T) {
	from := &net.UDPAddr{IP: net.IPv4(192, 168, 1, 10), Port: 40000}
	at := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		payload string
		want    []string
	}{
		{"on", "on lamp1", []string{"15:04:05.000", "192.168.1.10:40000", "on", "lamp1"}},
		{"key with space", "off lampa stojąca", []string{"off", "lampa stojąca"}},
		{"garbage", "blink lamp1", []string{"?", `"blink lamp1"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDatagram(transport.Datagram{From: from, Payload: []byte(tt.payload), ReceivedAt: at})
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("formatDatagram() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestSendFailure(t *testing.T) {
	dest := transport.DefaultDestination()
	command := protocol.On("lamp1")

	sendErr := transport.ClassifySendError("resolve", dest, &net.DNSError{Err: "no such host", Name: "nope"})
	out := sendFailure(command, dest, sendErr).SetWidth(100).Render()

	for _, want := range []string{"Nie wysłano", "on lamp1", "255.255.255.255:2018", sendErr.Hint(), urls.Troubleshooting} {
		if !strings.Contains(out, want) {
			t.Errorf("failure box missing %q:\n%s", want, out)
		}
	}

	plain := sendFailure(command, dest, errors.New("boom")).SetWidth(100)
	if len(plain.Troubleshooting) != 0 {
		t.Errorf("unclassified error got tips %v", plain.Troubleshooting)
	}
	if plain.Success {
		t.Error("failure box should not be a success")
	}
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing config", errMissingConfig, errMissingConfig.Error() + "\n"},
		{"empty config", config.ErrEmptyConfig, "Zły format pliku YAML!\n"},
		{"other", errors.New("boom"), "Error: boom\n"},
		{"already reported", &reportedError{err: errors.New("boom")}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			printError(&out, tt.err)
			if out.String() != tt.want {
				t.Errorf("printError() wrote %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestBuildPanel(t *testing.T) {
	path := writeConfig(t, "Kuchnia:\n  lamp1: Lampka\nWentylatory: {}\nSalon:\n  tv: Telewizor\n")

	model, err := buildPanel(path)
	if err != nil {
		t.Fatalf("buildPanel() error = %v", err)
	}

	// Start page + Kuchnia + Salon
	if model.Router.Len() != 3 {
		t.Errorf("Router.Len() = %d, want 3", model.Router.Len())
	}
	if model.Controller.IsOn("lamp1") || model.Controller.IsOn("tv") {
		t.Error("devices should start off")
	}
	if got := model.Destinations.Destination(); got != transport.DefaultDestination() {
		t.Errorf("Destination() = %s, want default", got)
	}
}

func TestBuildPanel_EmptyConfigBuildsNothing(t *testing.T) {
	for _, content := range []string{"", "~\n", "{}\n"} {
		path := writeConfig(t, content)

		model, err := buildPanel(path)
		if !errors.Is(err, config.ErrEmptyConfig) {
			t.Errorf("buildPanel(%q) error = %v, want ErrEmptyConfig", content, err)
		}
		if model.Router != nil || model.Controller != nil {
			t.Errorf("buildPanel(%q) built a panel", content)
		}
	}
}

func TestBuildPanel_MissingFile(t *testing.T) {
	_, err := buildPanel(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("buildPanel() error = %v, want os.ErrNotExist", err)
	}
}
