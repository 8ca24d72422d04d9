// Package transport sends vpilot commands as UDP broadcasts.
//
// Commands are fire-and-forget: Broadcaster.Send opens a broadcast-enabled
// IPv4 socket, writes one datagram to the current destination and closes the
// socket. There is no acknowledgement, retry or ordering guarantee beyond
// the order in which Send is called.
//
// The default destination is the limited broadcast address on port 2018:
//
//	b := transport.NewBroadcaster()
//	if err := b.Send(ctx, "on lamp1"); err != nil {
//	    var sendErr *transport.SendError
//	    if errors.As(err, &sendErr) {
//	        fmt.Println(sendErr.Kind, sendErr.Hint())
//	    }
//	}
//
// SetDestination changes where later sends go. A send that has already
// started keeps the destination it read when it began.
//
// Listener is the receiving side, used by the listen command to watch
// traffic on a port.
package transport
