package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/vpilot/internal/logging"
	"github.com/muurk/vpilot/internal/protocol"
)

// Datagram is a single received payload
type Datagram struct {
	From       net.Addr
	Payload    []byte
	ReceivedAt time.Time
}

// Listener receives command datagrams. It stands in for a receiver when
// checking that broadcasts reach a machine; the panel itself never reads
// from the network.
type Listener struct {
	conn net.PacketConn
}

// Listen binds a UDP socket on addr (e.g. ":2018" or "127.0.0.1:0")
func Listen(addr string) (*Listener, error) {
	conn, err := net.ListenPacket(network, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return &Listener{conn: conn}, nil
}

// Addr returns the bound local address
func (l *Listener) Addr() net.Addr {
	return l.conn.LocalAddr()
}

// Serve reads datagrams and calls handle for each one until ctx is
// cancelled or the listener is closed. Read errors other than closure are
// logged and skipped.
func (l *Listener) Serve(ctx context.Context, handle func(Datagram)) error {
	done := make(chan struct{})
	defer close(done)

	// Closing the socket unblocks ReadFrom below
	go func() {
		select {
		case <-ctx.Done():
			l.conn.Close()
		case <-done:
		}
	}()

	buf := make([]byte, protocol.MaxDatagramSize)
	for {
		n, from, err := l.conn.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			logging.Warn("UDP read failed", zap.Error(err))
			continue
		}

		payload := make([]byte, n)
		copy(payload, buf[:n])

		logging.LogDatagram(from.String(), payload)
		handle(Datagram{From: from, Payload: payload, ReceivedAt: time.Now()})
	}
}

// Close releases the socket
func (l *Listener) Close() error {
	return l.conn.Close()
}
