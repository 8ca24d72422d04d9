//go:build windows

package transport

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// enableBroadcast sets SO_BROADCAST so the socket may send to broadcast
// addresses.
func enableBroadcast(network, address string, c syscall.RawConn) error {
	var opErr error
	err := c.Control(func(fd uintptr) {
		opErr = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_BROADCAST, 1)
	})
	if err != nil {
		return err
	}
	return opErr
}
