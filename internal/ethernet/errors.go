package ethernet

import (
	"errors"
	"fmt"
)

var (
	// ErrNilListener is returned when a nil listener is added or removed.
	ErrNilListener = errors.New("listener must not be nil")

	// ErrRemoteUnavailable matches every RemoteError.
	ErrRemoteUnavailable = errors.New("configuration source unavailable")

	// ErrManagerClosed is returned after Close.
	ErrManagerClosed = errors.New("manager closed")

	// ErrUnknownInterface is returned by ParseInterface.
	ErrUnknownInterface = errors.New("unknown interface")
)

// RemoteError wraps a failed call to the configuration source.
type RemoteError struct {
	Interface Interface
	Call      string
	Err       error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Interface, e.Call, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}
