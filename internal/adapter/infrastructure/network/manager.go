// Package network provides network management adapter implementation.
package network

import (
	"errors"
	"fmt"
	"net"

	"golang-ethmgr/internal/port"

	"github.com/vishvananda/netlink"
)

// ManagerAdapter is an adapter that implements the NetworkManager port using vishvananda/netlink library.
// It also resolves interface configuration for snapshots.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the NetworkManager and InterfaceConfigResolver ports
var (
	_ port.NetworkManager          = (*ManagerAdapter)(nil)
	_ port.InterfaceConfigResolver = (*ManagerAdapter)(nil)
)

// NewManagerAdapter creates a new network manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// GetLinkByName returns a network link by interface name.
func (n *ManagerAdapter) GetLinkByName(interfaceName string) (netlink.Link, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		var notFound netlink.LinkNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, port.ErrLinkNotFound)
		}
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, err)
	}
	return link, nil
}

// ListAddresses returns IPv4 addresses configured on the link.
func (n *ManagerAdapter) ListAddresses(link netlink.Link) ([]netlink.Addr, error) {
	addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addrs, nil
}

// ListRoutes returns IPv4 routes through the link.
func (n *ManagerAdapter) ListRoutes(link netlink.Link) ([]netlink.Route, error) {
	routes, err := netlink.RouteList(link, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// SetLinkUp brings the interface up.
func (n *ManagerAdapter) SetLinkUp(link netlink.Link) error {
	if err := netlink.LinkSetUp(link); err != nil {
		return fmt.Errorf("failed to set link up: %w", err)
	}
	return nil
}

// SetLinkDown brings the interface down.
func (n *ManagerAdapter) SetLinkDown(link netlink.Link) error {
	if err := netlink.LinkSetDown(link); err != nil {
		return fmt.Errorf("failed to set link down: %w", err)
	}
	return nil
}

// SubscribeLinkUpdates streams link updates until done is closed.
func (n *ManagerAdapter) SubscribeLinkUpdates(ch chan<- netlink.LinkUpdate, done <-chan struct{}) error {
	if err := netlink.LinkSubscribe(ch, done); err != nil {
		return fmt.Errorf("failed to subscribe to link updates: %w", err)
	}
	return nil
}

// GetInterfaceConfig returns the hardware address and admin state of the named link.
func (n *ManagerAdapter) GetInterfaceConfig(name string) (*port.InterfaceConfig, error) {
	if name == "" {
		return nil, errors.New("interface name is empty")
	}
	link, err := n.GetLinkByName(name)
	if err != nil {
		return nil, err
	}
	return InterfaceConfigFromLink(link), nil
}

// InterfaceConfigFromLink converts netlink attributes to an InterfaceConfig.
func InterfaceConfigFromLink(link netlink.Link) *port.InterfaceConfig {
	attrs := link.Attrs()
	config := &port.InterfaceConfig{
		Name: attrs.Name,
		Up:   IsLinkAvailable(link),
	}
	if len(attrs.HardwareAddr) > 0 {
		config.HardwareAddress = attrs.HardwareAddr.String()
	}
	return config
}

// IsLinkAvailable reports whether the link is administratively up and has
// an operational carrier.
func IsLinkAvailable(link netlink.Link) bool {
	attrs := link.Attrs()
	if attrs.Flags&net.FlagUp == 0 {
		return false
	}
	return attrs.OperState == netlink.OperUp || attrs.OperState == netlink.OperUnknown
}
