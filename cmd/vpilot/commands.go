package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/vpilot/internal/config"
	"github.com/muurk/vpilot/internal/logging"
	"github.com/muurk/vpilot/internal/protocol"
	"github.com/muurk/vpilot/internal/transport"
	"github.com/muurk/vpilot/internal/ui"
	"github.com/muurk/vpilot/internal/urls"
)

// Subcommand flags
var (
	sendConfig  string
	sendTimeout time.Duration
	listenAddr  string
)

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(listenCmd)
}

// checkCmd validates a configuration file without opening the panel
var checkCmd = &cobra.Command{
	Use:   "check <config.yaml>",
	Short: "Validate a configuration file and list its devices",
	Long: `Load a configuration file and print its groups and devices in the order
the panel shows them. Groups without devices are listed but marked as
empty; the panel does not show them.`,
	Example: `  vpilot check devices.yaml`,
	Args:    requireConfigArg,
	RunE:    runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, group := range cfg.Groups {
		if group.Empty() {
			fmt.Fprintf(out, "%s (pusta)\n", group.Name)
			continue
		}
		fmt.Fprintf(out, "%s\n", group.Name)
		for _, device := range group.Devices {
			fmt.Fprintf(out, "  %-20s %s\n", device.Key, device.Label)
		}
	}

	fmt.Fprintf(out, "\n%d group(s), %d device(s)\n", len(cfg.Groups), cfg.DeviceCount())
	return nil
}

// sendCmd broadcasts a single command
var sendCmd = &cobra.Command{
	Use:   "send <on|off> <key>",
	Short: "Broadcast a single on/off command",
	Long: `Broadcast one command to the destination without opening the panel.

The command is sent once with no state tracking: sending "on" twice sends
two datagrams. With --config the key must name a device in that file.`,
	Example: `  vpilot send on lamp1
  vpilot send off lamp1 --config devices.yaml
  vpilot send on tv --host 192.168.1.255 --port 2018`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendConfig, "config", "", "Configuration file to validate the key against")
	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", 2*time.Second, "Send timeout")
}

func runSend(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}
	defer logging.Sync()

	action, err := protocol.ParseAction(args[0])
	if err != nil {
		return err
	}
	// Keys may contain spaces
	key := strings.Join(args[1:], " ")

	if sendConfig != "" {
		cfg, err := config.Load(sendConfig)
		if err != nil {
			return err
		}
		if !cfg.HasDevice(key) {
			return fmt.Errorf("device %q is not defined in %s", key, sendConfig)
		}
	}

	broadcaster, err := newBroadcaster()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), sendTimeout)
	defer cancel()

	command := protocol.Command{Action: action, Key: key}
	if err := broadcaster.Send(ctx, command.String()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), sendFailure(command, broadcaster.Destination(), err))
		return &reportedError{err: err}
	}

	result := ui.NewSuccessResult("Wysłano polecenie",
		ui.Field{Key: "Polecenie", Value: command.String()},
		ui.Field{Key: "Adres", Value: broadcaster.Destination().String()},
		ui.Field{Key: "Bajty", Value: strconv.Itoa(len(command.Encode()))},
	)
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// listenCmd prints commands received on a UDP port
var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Print commands received on a UDP port",
	Long: `Listen for broadcast commands and print each one as it arrives.

Useful for checking that datagrams from the panel reach a machine on the
network. Press Ctrl+C to stop.`,
	Example: `  vpilot listen
  vpilot listen --listen :9999`,
	Args: cobra.NoArgs,
	RunE: runListen,
}

func init() {
	listenCmd.Flags().StringVar(&listenAddr, "listen", fmt.Sprintf(":%d", transport.DefaultPort), "Address to listen on")
}

func runListen(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}
	defer logging.Sync()

	listener, err := transport.Listen(listenAddr)
	if err != nil {
		return err
	}
	defer listener.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.NewHeader("Nasłuch", "vpilot listen",
		ui.Field{Key: "Adres", Value: listener.Addr().String()},
		ui.Field{Key: "Zatrzymanie", Value: "Ctrl+C"},
	))

	return listener.Serve(ctx, func(d transport.Datagram) {
		fmt.Fprintln(out, formatDatagram(d))
	})
}

// formatDatagram renders a received datagram as one line
func formatDatagram(d transport.Datagram) string {
	stamp := d.ReceivedAt.Format("15:04:05.000")

	command, err := protocol.Parse(d.Payload)
	if err != nil {
		return fmt.Sprintf("%s %-21s ? %q (%v)", stamp, d.From, d.Payload, err)
	}
	return fmt.Sprintf("%s %-21s %-3s %s", stamp, d.From, command.Action, command.Key)
}

// sendFailure builds the failure box for a command that was not sent.
// Classified send errors add their hint and the troubleshooting link.
func sendFailure(command protocol.Command, dest transport.Destination, err error) *ui.Result {
	var tips []string

	var sendErr *transport.SendError
	if errors.As(err, &sendErr) {
		if hint := sendErr.Hint(); hint != "" {
			tips = append(tips, hint)
		}
		tips = append(tips, urls.Troubleshooting)
	}

	return ui.NewFailureResult("Nie wysłano", err, tips...).
		AddDetail("Polecenie", command.String()).
		AddDetail("Adres", dest.String())
}
