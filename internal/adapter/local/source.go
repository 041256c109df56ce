// Package local implements the configuration source in-process, reading
// link state from netlink and persisting configuration through the record
// store. It serves hosts that have no separate privileged service.
package local

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"sync"

	"golang-ethmgr/internal/adapter/infrastructure/network"
	"golang-ethmgr/internal/adapter/store"
	"golang-ethmgr/internal/pkg/logging"
	"golang-ethmgr/internal/port"
	"golang-ethmgr/internal/types"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
)

// Records persists interface records keyed by interface name.
type Records interface {
	Load(iface string) (*types.InterfaceState, error)
	Save(state *types.InterfaceState) error
}

// Settings binds one ethernet port to a kernel interface.
type Settings struct {
	Name string
	// Defaults is returned by GetConfiguration until a configuration has
	// been stored for the interface.
	Defaults types.IPConfiguration
}

// Dependencies are the infrastructure ports used by a Source. Resolver and
// Gateway are optional.
type Dependencies struct {
	Network  port.NetworkManager
	Records  Records
	Resolver port.ResolverConfigReader
	Gateway  port.GatewayDiscoverer
}

// Source implements port.ConfigurationSource for a primary and a
// plugged-in interface.
type Source struct {
	deps      Dependencies
	primary   *link
	pluggedIn *link
	mu        sync.Mutex
	closed    bool
}

// Ensure Source implements the ConfigurationSource port
var _ port.ConfigurationSource = (*Source)(nil)

// NewSource creates a source for the two configured interfaces.
func NewSource(deps Dependencies, primary, pluggedIn Settings) (*Source, error) {
	if deps.Network == nil {
		return nil, errors.New("network manager is required")
	}
	if deps.Records == nil {
		return nil, errors.New("record store is required")
	}
	if primary.Name == "" || pluggedIn.Name == "" {
		return nil, errors.New("both interface names are required")
	}
	if primary.Name == pluggedIn.Name {
		return nil, fmt.Errorf("primary and plugged-in interface are both %s", primary.Name)
	}
	s := &Source{deps: deps}
	s.primary = newLink(s, primary)
	s.pluggedIn = newLink(s, pluggedIn)
	return s, nil
}

// Close stops all link watchers.
func (s *Source) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.primary.stopWatching()
	s.pluggedIn.stopWatching()
}

// link holds the per-interface state of the source.
type link struct {
	source   *Source
	name     string
	defaults types.IPConfiguration
	logger   *logrus.Entry

	mu        sync.Mutex
	listeners []port.AvailabilityListener
	watch     *watcher
}

func newLink(s *Source, settings Settings) *link {
	return &link{
		source:   s,
		name:     settings.Name,
		defaults: settings.Defaults.Clone(),
		logger:   logging.WithComponentAndInterface("local", settings.Name),
	}
}

func (l *link) netlinkLink() (netlink.Link, error) {
	return l.source.deps.Network.GetLinkByName(l.name)
}

func (l *link) configuration() (*types.IPConfiguration, error) {
	state, err := l.source.deps.Records.Load(l.name)
	if errors.Is(err, store.ErrNotFound) {
		config := l.defaults.Clone()
		return &config, nil
	}
	if err != nil {
		return nil, err
	}
	config := configurationFromState(state)
	return &config, nil
}

func (l *link) setConfiguration(config *types.IPConfiguration) error {
	if config == nil {
		return errors.New("configuration is nil")
	}

	status := types.StatusEnabled
	hwAddress := ""
	if previous, err := l.source.deps.Records.Load(l.name); err == nil {
		status = previous.Status()
		hwAddress = previous.HardwareAddress()
	} else if !errors.Is(err, store.ErrNotFound) {
		l.logger.WithError(err).Warn("Replacing unreadable record")
	}
	if nl, err := l.netlinkLink(); err == nil && len(nl.Attrs().HardwareAddr) > 0 {
		hwAddress = nl.Attrs().HardwareAddr.String()
	}

	if config.HTTPProxy != nil {
		// Records keep only proxy host and port, and a record without an
		// exclusion list reads back without a proxy.
		l.logger.WithField("proxy", config.HTTPProxy.String()).Warn("Proxy is not kept in the interface record")
	}
	state := stateFromConfiguration(l.name, hwAddress, status, *config)
	if err := l.source.deps.Records.Save(state); err != nil {
		return fmt.Errorf("failed to store configuration for %s: %w", l.name, err)
	}
	l.logger.WithField("config", config.String()).Info("Stored interface configuration")
	return nil
}

func (l *link) isAvailable() (bool, error) {
	nl, err := l.netlinkLink()
	if err != nil {
		if isLinkNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return network.IsLinkAvailable(nl), nil
}

func (l *link) linkProperties() (*types.LinkProperties, error) {
	nl, err := l.netlinkLink()
	if err != nil {
		return nil, err
	}
	lp := types.NewLinkProperties(l.name)

	addrs, err := l.source.deps.Network.ListAddresses(nl)
	if err != nil {
		return nil, err
	}
	for _, addr := range addrs {
		if prefix, ok := prefixFromIPNet(addr.IPNet); ok {
			lp.AddLinkAddress(prefix)
		}
	}

	routes, err := l.source.deps.Network.ListRoutes(nl)
	if err != nil {
		return nil, err
	}
	hasDefault := false
	for _, route := range routes {
		info, ok := routeInfo(route)
		if !ok {
			continue
		}
		if info.IsDefaultRoute() {
			hasDefault = true
		}
		lp.AddRoute(info)
	}
	if !hasDefault && len(lp.LinkAddresses) > 0 {
		l.addDiscoveredGateway(lp)
	}

	l.addNameservers(lp)
	return lp, nil
}

// addDiscoveredGateway adds the host default gateway when it lies on one of
// the link's subnets.
func (l *link) addDiscoveredGateway(lp *types.LinkProperties) {
	if l.source.deps.Gateway == nil {
		return
	}
	ip, err := l.source.deps.Gateway.DiscoverGateway()
	if err != nil {
		l.logger.WithError(err).Debug("No default gateway discovered")
		return
	}
	gw, ok := addrFromIP(ip)
	if !ok {
		return
	}
	for _, prefix := range lp.LinkAddresses {
		if prefix.Masked().Contains(gw) {
			lp.AddRoute(types.NewGatewayRoute(gw))
			return
		}
	}
}

func (l *link) addNameservers(lp *types.LinkProperties) {
	if l.source.deps.Resolver == nil {
		return
	}
	servers, err := l.source.deps.Resolver.Nameservers()
	if err != nil {
		l.logger.WithError(err).Warn("Failed to read nameservers")
		return
	}
	for _, server := range servers {
		addr, err := netip.ParseAddr(server)
		if err != nil {
			l.logger.WithField("nameserver", server).Debug("Skipping unparseable nameserver")
			continue
		}
		lp.AddDNSServer(addr.Unmap())
	}
}

func (l *link) networkInfo() (*types.NetworkInfo, error) {
	info := types.NewNetworkInfo()
	nl, err := l.netlinkLink()
	if err != nil {
		if isLinkNotFound(err) {
			info.DetailedState = types.StateDisconnected
			info.Reason = "interface not present"
			return &info, nil
		}
		return nil, err
	}

	attrs := nl.Attrs()
	info.ExtraInfo = attrs.HardwareAddr.String()
	info.Available = network.IsLinkAvailable(nl)
	switch {
	case attrs.Flags&net.FlagUp == 0:
		info.DetailedState = types.StateDisconnected
		info.Reason = "administratively down"
	case !info.Available:
		info.DetailedState = types.StateDisconnected
		info.Reason = "no carrier"
	default:
		addrs, err := l.source.deps.Network.ListAddresses(nl)
		if err != nil {
			return nil, err
		}
		if len(addrs) == 0 {
			info.DetailedState = types.StateObtainingIP
		} else {
			info.DetailedState = types.StateConnected
		}
	}
	return &info, nil
}

func (l *link) setUp() error {
	nl, err := l.netlinkLink()
	if err != nil {
		return err
	}
	if err := l.source.deps.Network.SetLinkUp(nl); err != nil {
		return err
	}
	l.logger.Info("Link set up")
	return nil
}

func (l *link) setDown() error {
	nl, err := l.netlinkLink()
	if err != nil {
		return err
	}
	if err := l.source.deps.Network.SetLinkDown(nl); err != nil {
		return err
	}
	l.logger.Info("Link set down")
	return nil
}

func isLinkNotFound(err error) bool {
	return errors.Is(err, port.ErrLinkNotFound)
}

func addrFromIP(ip net.IP) (netip.Addr, bool) {
	addr, ok := netip.AddrFromSlice(ip)
	if !ok {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func prefixFromIPNet(ipNet *net.IPNet) (netip.Prefix, bool) {
	if ipNet == nil {
		return netip.Prefix{}, false
	}
	addr, ok := addrFromIP(ipNet.IP)
	if !ok {
		return netip.Prefix{}, false
	}
	ones, bits := ipNet.Mask.Size()
	if bits == 0 {
		return netip.Prefix{}, false
	}
	return netip.PrefixFrom(addr, ones), true
}

// routeInfo converts a kernel route. Routes without a gateway are on-link
// and carry nothing a record could persist.
func routeInfo(route netlink.Route) (types.RouteInfo, bool) {
	gw, ok := addrFromIP(route.Gw)
	if !ok {
		return types.RouteInfo{}, false
	}
	var dst netip.Prefix
	if route.Dst != nil {
		if dst, ok = prefixFromIPNet(route.Dst); !ok {
			return types.RouteInfo{}, false
		}
	}
	return types.NewRouteInfo(dst, gw), true
}
