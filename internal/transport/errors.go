package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

// ErrInvalidDestination is returned for an empty host, an out-of-range port
// or a non-IPv4 address.
var ErrInvalidDestination = errors.New("invalid destination")

// ErrorKind represents the category of a send failure
type ErrorKind int

const (
	// ErrKindResolve indicates the destination host could not be resolved
	ErrKindResolve ErrorKind = iota
	// ErrKindPermission indicates the OS refused the broadcast (EACCES/EPERM)
	ErrKindPermission
	// ErrKindUnreachable indicates no route to the destination network or host
	ErrKindUnreachable
	// ErrKindTimeout indicates the send did not complete before the deadline
	ErrKindTimeout
	// ErrKindInvalidDestination indicates a malformed destination
	ErrKindInvalidDestination
	// ErrKindUnknown indicates an unexpected error
	ErrKindUnknown
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrKindResolve:
		return "Resolve Error"
	case ErrKindPermission:
		return "Permission Denied"
	case ErrKindUnreachable:
		return "Network Unreachable"
	case ErrKindTimeout:
		return "Timeout"
	case ErrKindInvalidDestination:
		return "Invalid Destination"
	case ErrKindUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// SendError represents a failure to hand a datagram to the network
type SendError struct {
	Kind        ErrorKind   // Category of error
	Op          string      // Stage that failed: resolve, socket or write
	Destination Destination // Where the datagram was going
	Err         error       // Underlying error
}

// Error implements the error interface
func (e *SendError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.Kind, e.Op, e.Destination, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SendError) Unwrap() error {
	return e.Err
}

// Hint returns a short suggestion for the user, or "" if there is none
func (e *SendError) Hint() string {
	switch e.Kind {
	case ErrKindPermission:
		return "the system refused the broadcast; check firewall rules"
	case ErrKindUnreachable:
		return "check that a network interface is up"
	case ErrKindResolve:
		return "check the destination host name"
	case ErrKindInvalidDestination:
		return "change the destination"
	default:
		return ""
	}
}

// ClassifySendError wraps err in a SendError with a kind derived from it
func ClassifySendError(op string, dest Destination, err error) *SendError {
	if err == nil {
		return nil
	}

	return &SendError{
		Kind:        classify(err),
		Op:          op,
		Destination: dest,
		Err:         err,
	}
}

func classify(err error) ErrorKind {
	var dnsErr *net.DNSError
	var addrErr *net.AddrError

	switch {
	case errors.As(err, &dnsErr):
		return ErrKindResolve
	case errors.Is(err, ErrInvalidDestination), errors.As(err, &addrErr):
		return ErrKindInvalidDestination
	case errors.Is(err, context.DeadlineExceeded), os.IsTimeout(err):
		return ErrKindTimeout
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return ErrKindPermission
	case errors.Is(err, syscall.ENETUNREACH), errors.Is(err, syscall.EHOSTUNREACH):
		return ErrKindUnreachable
	default:
		return ErrKindUnknown
	}
}
