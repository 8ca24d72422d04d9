package transport

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/vpilot/internal/logging"
)

const (
	// DefaultHost is the limited broadcast address
	DefaultHost = "255.255.255.255"

	// DefaultPort is the UDP port receivers listen on
	DefaultPort = 2018

	// network is IPv4 only; IPv6 has no broadcast
	network = "udp4"
)

// Destination is where command datagrams are sent.
type Destination struct {
	Host string
	Port int
}

// DefaultDestination returns 255.255.255.255:2018.
func DefaultDestination() Destination {
	return Destination{Host: DefaultHost, Port: DefaultPort}
}

// String returns host:port
func (d Destination) String() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

// Validate checks that the destination can be used for sending.
func (d Destination) Validate() error {
	if d.Host == "" {
		return fmt.Errorf("%w: host must not be empty", ErrInvalidDestination)
	}
	if d.Port < 1 || d.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range (1-65535)", ErrInvalidDestination, d.Port)
	}
	return nil
}

// Broadcaster sends fire-and-forget command datagrams.
//
// Each Send opens its own broadcast-enabled socket, writes one datagram to
// the destination current at that moment, and closes the socket. Nothing is
// read back.
type Broadcaster struct {
	mu   sync.RWMutex
	dest Destination
}

// NewBroadcaster creates a Broadcaster aimed at the default destination.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{dest: DefaultDestination()}
}

// Destination returns the current destination.
func (b *Broadcaster) Destination() Destination {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dest
}

// SetDestination changes where subsequent sends go. Sends already issued
// are unaffected.
func (b *Broadcaster) SetDestination(host string, port int) error {
	dest := Destination{Host: host, Port: port}
	if err := dest.Validate(); err != nil {
		return err
	}

	b.mu.Lock()
	b.dest = dest
	b.mu.Unlock()

	logging.Info("Destination changed", zap.String("destination", dest.String()))
	return nil
}

// Send transmits the UTF-8 bytes of content as a single datagram.
// It returns once the datagram has been handed to the kernel.
func (b *Broadcaster) Send(ctx context.Context, content string) error {
	dest := b.Destination()

	addr, err := resolve(ctx, dest)
	if err != nil {
		sendErr := ClassifySendError("resolve", dest, err)
		logging.LogSendFailure(dest.String(), content, sendErr)
		return sendErr
	}

	lc := net.ListenConfig{Control: enableBroadcast}
	conn, err := lc.ListenPacket(ctx, network, ":0")
	if err != nil {
		sendErr := ClassifySendError("socket", dest, err)
		logging.LogSendFailure(dest.String(), content, sendErr)
		return sendErr
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}

	n, err := conn.WriteTo([]byte(content), addr)
	if err != nil {
		sendErr := ClassifySendError("write", dest, err)
		logging.LogSendFailure(dest.String(), content, sendErr)
		return sendErr
	}

	logging.LogCommand(dest.String(), content, n)
	return nil
}

// resolve turns a destination into a UDP address, looking up host names
// through the context-aware resolver.
func resolve(ctx context.Context, dest Destination) (*net.UDPAddr, error) {
	if err := dest.Validate(); err != nil {
		return nil, err
	}

	if ip := net.ParseIP(dest.Host); ip != nil {
		if ip.To4() == nil {
			return nil, fmt.Errorf("%w: %s is not an IPv4 address", ErrInvalidDestination, dest.Host)
		}
		return &net.UDPAddr{IP: ip, Port: dest.Port}, nil
	}

	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", dest.Host)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, &net.DNSError{Err: "no IPv4 address", Name: dest.Host, IsNotFound: true}
	}

	return &net.UDPAddr{IP: ips[0], Port: dest.Port}, nil
}
