//go:build !unix && !windows

package transport

import "syscall"

func enableBroadcast(network, address string, c syscall.RawConn) error {
	return nil
}
