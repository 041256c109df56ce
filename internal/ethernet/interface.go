// Package ethernet is the client side of the dual-port ethernet
// configuration service: it composes interface snapshots and relays
// availability changes to local listeners.
package ethernet

import "fmt"

// Interface identifies one of the two physical ports.
type Interface int

const (
	Primary Interface = iota
	PluggedIn
)

func (i Interface) String() string {
	switch i {
	case Primary:
		return "primary"
	case PluggedIn:
		return "plugged-in"
	default:
		return fmt.Sprintf("Interface(%d)", int(i))
	}
}

// ParseInterface maps "primary" / "plugged-in" to an Interface.
func ParseInterface(s string) (Interface, error) {
	switch s {
	case "primary":
		return Primary, nil
	case "plugged-in", "pluggedin":
		return PluggedIn, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInterface, s)
}

// Interfaces lists both ports in order.
var Interfaces = []Interface{Primary, PluggedIn}
