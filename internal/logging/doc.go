// Package logging provides structured logging for vpilot.
//
// This package wraps a package-level zap logger with convenience functions
// and a few domain-specific helpers for command traffic.
//
// # Silent by Default
//
// The panel draws on the terminal, so logging is disabled unless a level is
// requested explicitly:
//
//	if err := logging.Initialize("debug", "/tmp/vpilot.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Specialized Logging
//
//	logging.LogCommand("255.255.255.255:2018", "on lamp1", 8)
//	logging.LogSendFailure(dest, payload, err)
//	logging.LogDatagram(remoteAddr, data)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned. The underlying zap logger handles synchronization.
package logging
