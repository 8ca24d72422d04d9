package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse_ExampleConfig(t *testing.T) {
	data := []byte(`
Kuchnia:
  lamp1: "Lampka kuchenna"
  lamp2: "Lampa nad stołem"
Wentylatory: {}
Salon:
  tv: Telewizor
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(cfg.Groups) != 3 {
		t.Fatalf("len(Groups) = %d, want 3", len(cfg.Groups))
	}

	wantOrder := []string{"Kuchnia", "Wentylatory", "Salon"}
	for i, name := range wantOrder {
		if cfg.Groups[i].Name != name {
			t.Errorf("Groups[%d].Name = %q, want %q", i, cfg.Groups[i].Name, name)
		}
	}

	kitchen := cfg.Group("Kuchnia")
	if kitchen == nil {
		t.Fatal("Group(Kuchnia) returned nil")
	}
	if len(kitchen.Devices) != 2 {
		t.Fatalf("len(Kuchnia.Devices) = %d, want 2", len(kitchen.Devices))
	}
	if kitchen.Devices[0] != (Device{Key: "lamp1", Label: "Lampka kuchenna"}) {
		t.Errorf("Devices[0] = %+v", kitchen.Devices[0])
	}
	if kitchen.Devices[1] != (Device{Key: "lamp2", Label: "Lampa nad stołem"}) {
		t.Errorf("Devices[1] = %+v", kitchen.Devices[1])
	}

	if !cfg.Group("Wentylatory").Empty() {
		t.Error("Wentylatory should be empty")
	}
}

func TestParse_EmptyGroupsExcludedFromNavigation(t *testing.T) {
	data := []byte(`
Kuchnia:
  lamp1: Lampka
Wentylatory:
Garaz: {}
Strych: ""
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(cfg.Groups) != 4 {
		t.Fatalf("len(Groups) = %d, want 4 (empty groups are kept)", len(cfg.Groups))
	}

	nav := cfg.NavigableGroups()
	if len(nav) != 1 || nav[0].Name != "Kuchnia" {
		t.Errorf("NavigableGroups() = %+v, want only Kuchnia", nav)
	}

	// Iterating every group, empty ones included, must be safe
	count := 0
	for _, g := range cfg.Groups {
		count += len(g.Devices)
	}
	if count != 1 {
		t.Errorf("device count = %d, want 1", count)
	}
}

func TestParse_EmptyConfig(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"whitespace only", "   \n\n"},
		{"comment only", "# nothing here\n"},
		{"null document", "~\n"},
		{"empty mapping", "{}\n"},
		{"empty sequence", "[]\n"},
		{"false", "false\n"},
		{"zero", "0\n"},
		{"empty string", "\"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))
			if !errors.Is(err, ErrEmptyConfig) {
				t.Fatalf("Parse() error = %v, want ErrEmptyConfig", err)
			}
			if cfg != nil {
				t.Error("Parse() should not return a config on error")
			}
		})
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"top level sequence", "- a\n- b\n"},
		{"top level scalar", "hello\n"},
		{"group is a sequence", "Kuchnia:\n  - lamp1\n"},
		{"group is a scalar", "Kuchnia: lamp1\n"},
		{"label is a mapping", "Kuchnia:\n  lamp1:\n    name: x\n"},
		{"empty device key", "Kuchnia:\n  \"\": Lampka\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("Parse() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse([]byte("Kuchnia: [unterminated\n"))
	if err == nil {
		t.Fatal("Parse() should fail on malformed YAML")
	}
	if errors.Is(err, ErrEmptyConfig) || errors.Is(err, ErrInvalidFormat) {
		t.Errorf("syntax errors should not be classified as format errors: %v", err)
	}
}

func TestParse_DuplicateKeys(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantFirst  string
		wantSecond string
	}{
		{
			name:       "across groups",
			data:       "Kuchnia:\n  lamp1: A\nSalon:\n  lamp1: B\n",
			wantFirst:  "Kuchnia",
			wantSecond: "Salon",
		},
		{
			name:       "within one group",
			data:       "Kuchnia:\n  lamp1: A\n  lamp1: B\n",
			wantFirst:  "Kuchnia",
			wantSecond: "Kuchnia",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))

			var dupErr *DuplicateKeyError
			if !errors.As(err, &dupErr) {
				t.Fatalf("Parse() error = %v, want *DuplicateKeyError", err)
			}
			if dupErr.Key != "lamp1" {
				t.Errorf("Key = %q, want lamp1", dupErr.Key)
			}
			if dupErr.FirstGroup != tt.wantFirst || dupErr.SecondGroup != tt.wantSecond {
				t.Errorf("groups = %q/%q, want %q/%q",
					dupErr.FirstGroup, dupErr.SecondGroup, tt.wantFirst, tt.wantSecond)
			}
		})
	}
}

func TestParse_DuplicateGroups(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantFirst int
		wantLine  int
	}{
		{
			name:      "both with devices",
			data:      "Kuchnia:\n  a: A\nKuchnia:\n  b: B\n",
			wantFirst: 1,
			wantLine:  3,
		},
		{
			name:      "second one empty",
			data:      "Kuchnia:\n  a: A\nSalon:\n  tv: TV\nKuchnia: {}\n",
			wantFirst: 1,
			wantLine:  5,
		},
		{
			name:      "same device keys in both",
			data:      "Kuchnia:\n  a: A\nKuchnia:\n  a: A\n",
			wantFirst: 1,
			wantLine:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))
			if cfg != nil {
				t.Errorf("Parse() returned a config with %d group(s)", len(cfg.Groups))
			}

			var dupErr *DuplicateGroupError
			if !errors.As(err, &dupErr) {
				t.Fatalf("Parse() error = %v, want *DuplicateGroupError", err)
			}
			if dupErr.Name != "Kuchnia" {
				t.Errorf("Name = %q, want Kuchnia", dupErr.Name)
			}
			if dupErr.FirstLine != tt.wantFirst || dupErr.Line != tt.wantLine {
				t.Errorf("lines = %d/%d, want %d/%d", dupErr.FirstLine, dupErr.Line, tt.wantFirst, tt.wantLine)
			}
		})
	}
}

func TestParse_LabelFallsBackToKey(t *testing.T) {
	cfg, err := Parse([]byte("Kuchnia:\n  lamp1:\n  lamp2: \"\"\n  3: Trzecia\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	devices := cfg.Group("Kuchnia").Devices
	if devices[0].Label != "lamp1" {
		t.Errorf("null label = %q, want key", devices[0].Label)
	}
	if devices[1].Label != "lamp2" {
		t.Errorf("empty label = %q, want key", devices[1].Label)
	}
	if devices[2].Key != "3" || devices[2].Label != "Trzecia" {
		t.Errorf("numeric key device = %+v", devices[2])
	}
}

func TestParse_Aliases(t *testing.T) {
	data := []byte(`
Kuchnia:
  lamp1: &label Lampka
Salon:
  lamp2: *label
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := cfg.Group("Salon").Devices[0].Label; got != "Lampka" {
		t.Errorf("aliased label = %q, want Lampka", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pilot.yaml")

	if err := os.WriteFile(path, []byte("Kuchnia:\n  lamp1: Lampka\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.HasDevice("lamp1") {
		t.Error("HasDevice(lamp1) = false, want true")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, should wrap os.ErrNotExist", err)
	}
}

func TestConfigHelpers(t *testing.T) {
	cfg := &Config{Groups: []Group{
		{Name: "A", Devices: []Device{{Key: "a1", Label: "A1"}, {Key: "a2", Label: "A2"}}},
		{Name: "Empty"},
		{Name: "B", Devices: []Device{{Key: "b1", Label: "B1"}}},
	}}

	keys := cfg.DeviceKeys()
	want := []string{"a1", "a2", "b1"}
	if len(keys) != len(want) {
		t.Fatalf("DeviceKeys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("DeviceKeys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	if cfg.DeviceCount() != 3 {
		t.Errorf("DeviceCount() = %d, want 3", cfg.DeviceCount())
	}
	if cfg.Group("missing") != nil {
		t.Error("Group(missing) should be nil")
	}
	if cfg.HasDevice("zz") {
		t.Error("HasDevice(zz) should be false")
	}
}
