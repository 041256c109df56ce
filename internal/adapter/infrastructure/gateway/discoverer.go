// Package gateway discovers the host default gateway using jackpal/gateway.
package gateway

import (
	"fmt"
	"net"

	"golang-ethmgr/internal/port"

	"github.com/jackpal/gateway"
)

// DiscovererAdapter implements the GatewayDiscoverer port.
type DiscovererAdapter struct{}

// Ensure DiscovererAdapter implements the GatewayDiscoverer port
var _ port.GatewayDiscoverer = (*DiscovererAdapter)(nil)

func NewDiscovererAdapter() *DiscovererAdapter {
	return &DiscovererAdapter{}
}

// DiscoverGateway returns the gateway of the host's default route.
func (d *DiscovererAdapter) DiscoverGateway() (net.IP, error) {
	ip, err := gateway.DiscoverGateway()
	if err != nil {
		return nil, fmt.Errorf("failed to discover default gateway: %w", err)
	}
	return ip, nil
}
