// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"errors"
	"net"

	"github.com/vishvananda/netlink"
)

// ErrLinkNotFound is returned by NetworkManager.GetLinkByName when the
// kernel has no link with that name.
var ErrLinkNotFound = errors.New("link not found")

// NetworkManager is a port for network interface operations.
// This interface abstracts netlink operations used to observe links.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)

	// ListRoutes returns IPv4 routes attached to the link
	ListRoutes(link netlink.Link) ([]netlink.Route, error)

	// SetLinkUp brings the interface up
	SetLinkUp(link netlink.Link) error

	// SetLinkDown brings the interface down
	SetLinkDown(link netlink.Link) error

	// SubscribeLinkUpdates streams link updates to ch until done is closed
	SubscribeLinkUpdates(ch chan<- netlink.LinkUpdate, done <-chan struct{}) error
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile atomically replaces a file with data
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool

	// EnsureDir creates a directory and its parents
	EnsureDir(dir string, perm int) error
}

// ResolverConfigReader reads the host's DNS resolver configuration.
type ResolverConfigReader interface {
	// Nameservers returns the configured DNS servers in order
	Nameservers() ([]string, error)
}

// GatewayDiscoverer finds the host's default gateway.
type GatewayDiscoverer interface {
	DiscoverGateway() (net.IP, error)
}
