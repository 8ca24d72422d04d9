// Vpilot is a virtual remote control for devices listening on the local
// network.
//
// It reads a YAML file describing groups of devices, shows a full-screen
// panel with on/off buttons for every device, and broadcasts a plain text
// command ("on <key>" or "off <key>") over UDP for every state change.
//
// Usage:
//
//	vpilot <config.yaml> [flags]
//
// See 'vpilot --help' for the supplementary commands.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muurk/vpilot/internal/config"
	"github.com/muurk/vpilot/internal/logging"
	"github.com/muurk/vpilot/internal/remote"
	"github.com/muurk/vpilot/internal/transport"
	"github.com/muurk/vpilot/internal/tui"
	"github.com/muurk/vpilot/internal/urls"
	"github.com/muurk/vpilot/internal/version"
)

// errMissingConfig is printed verbatim when no configuration path is given
var errMissingConfig = errors.New("Proszę podać ścieżkę do pliku konfiguracyjnego YAML")

// Global flags
var (
	destHost string
	destPort int
	logLevel string
	logFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportedError wraps an error whose details a command already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// printError prints user-facing messages as they are and everything else
// with an "Error:" prefix
func printError(w io.Writer, err error) {
	var reported *reportedError
	switch {
	case errors.As(err, &reported):
		// Already shown
	case errors.Is(err, errMissingConfig):
		fmt.Fprintln(w, errMissingConfig)
	case errors.Is(err, config.ErrEmptyConfig):
		fmt.Fprintln(w, config.ErrEmptyConfig)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vpilot <config.yaml>",
	Short: "Virtual remote control panel",
	Long: `A virtual remote control for devices on the local network.

Reads a YAML file of groups and devices, shows a control panel with
on/off buttons for every device and broadcasts "on <key>" / "off <key>"
over UDP whenever a device changes state.

Example configuration:

  Kuchnia:
    lamp1: Lampka
    lamp2: Lampa
  Salon:
    tv: Telewizor

Configuration format: ` + urls.ConfigurationFormat,
	Example: `  # Open the panel
  vpilot devices.yaml

  # Send to a subnet broadcast address instead of the limited broadcast
  vpilot devices.yaml --host 192.168.1.255

  # Log every datagram to a file
  vpilot devices.yaml --log-level debug --log-file vpilot.log`,
	Version:       version.Version,
	Args:          requireConfigArg,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPanel,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&destHost, "host", transport.DefaultHost, "Destination host or broadcast address")
	rootCmd.PersistentFlags().IntVar(&destPort, "port", transport.DefaultPort, "Destination UDP port")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logging is off when empty")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logging.DefaultOutput, "Log output path (stderr, stdout or a file)")

	rootCmd.AddCommand(versionCmd)
}

// requireConfigArg accepts exactly one positional argument, the config path
func requireConfigArg(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return errMissingConfig
	}
	if len(args) > 1 {
		return fmt.Errorf("expected one configuration file, got %d arguments", len(args))
	}
	return nil
}

// initLogging applies the logging flags; call Sync when done
func initLogging() error {
	if err := logging.Initialize(logLevel, logFile); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

// newBroadcaster creates a broadcaster for the --host/--port destination
func newBroadcaster() (*transport.Broadcaster, error) {
	b := transport.NewBroadcaster()
	if err := b.SetDestination(destHost, destPort); err != nil {
		return nil, err
	}
	return b, nil
}

func runPanel(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}
	defer logging.Sync()

	model, err := buildPanel(args[0])
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the control panel needs an interactive terminal (use 'vpilot send' from scripts)")
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("panel error: %w", err)
	}

	return nil
}

// buildPanel loads the configuration at path and builds the panel model.
// Nothing is built when the configuration cannot be loaded.
func buildPanel(path string) (tui.AppModel, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return tui.AppModel{}, err
	}

	broadcaster, err := newBroadcaster()
	if err != nil {
		return tui.AppModel{}, err
	}

	controller := remote.NewController(cfg, broadcaster)
	return tui.NewAppModel(cfg, controller, broadcaster), nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vpilot %s\n", version.Full())
	},
}
