package types

import (
	"fmt"
	"net/netip"
	"strings"

	"golang-ethmgr/internal/pkg/logging"

	"github.com/sirupsen/logrus"
)

// InterfaceState is a snapshot of one ethernet interface: its configuration
// and its reported network status.
type InterfaceState struct {
	status         InterfaceStatus
	ipConfig       IPConfiguration
	linkProperties *LinkProperties
	networkInfo    NetworkInfo
	hwAddress      string
}

// NewInterfaceState returns a disabled DHCP interface with empty link properties.
func NewInterfaceState() *InterfaceState {
	return &InterfaceState{
		status:         StatusDisabled,
		ipConfig:       NewIPConfiguration(),
		linkProperties: &LinkProperties{},
		networkInfo:    NewNetworkInfo(),
	}
}

// NewNamedInterfaceState returns a default state bound to iface and hwAddress.
func NewNamedInterfaceState(iface, hwAddress string) *InterfaceState {
	s := NewInterfaceState()
	s.linkProperties.InterfaceName = iface
	s.hwAddress = hwAddress
	return s
}

// Clone returns a deep copy of s.
func (s *InterfaceState) Clone() *InterfaceState {
	return &InterfaceState{
		status:         s.status,
		ipConfig:       s.ipConfig.Clone(),
		linkProperties: s.linkProperties.Clone(),
		networkInfo:    s.networkInfo,
		hwAddress:      s.hwAddress,
	}
}

func (s *InterfaceState) logger() *logrus.Entry {
	return logging.WithComponentAndInterface("types", s.Name())
}

func (s *InterfaceState) Status() InterfaceStatus         { return s.status }
func (s *InterfaceState) SetStatus(status InterfaceStatus) { s.status = status }
func (s *InterfaceState) Enable()                          { s.status = StatusEnabled }
func (s *InterfaceState) Disable()                         { s.status = StatusDisabled }
func (s *InterfaceState) IsEnabled() bool                  { return s.status == StatusEnabled }

func (s *InterfaceState) HardwareAddress() string        { return s.hwAddress }
func (s *InterfaceState) SetHardwareAddress(addr string) { s.hwAddress = addr }

func (s *InterfaceState) IPAssignment() IPAssignment { return s.ipConfig.IPAssignment }
func (s *InterfaceState) SetIPAssignment(a IPAssignment) {
	s.ipConfig.IPAssignment = a
}
func (s *InterfaceState) IsStaticIPAssignment() bool {
	return s.ipConfig.IPAssignment == AssignmentStatic
}

func (s *InterfaceState) ProxySettings() ProxySettings { return s.ipConfig.ProxySettings }
func (s *InterfaceState) SetProxySettings(p ProxySettings) {
	s.ipConfig.ProxySettings = p
}

// IPConfiguration returns a copy of the interface's IP configuration.
func (s *InterfaceState) IPConfiguration() IPConfiguration { return s.ipConfig.Clone() }

// SetIPConfiguration replaces the IP configuration.
func (s *InterfaceState) SetIPConfiguration(c IPConfiguration) { s.ipConfig = c.Clone() }

// LinkProperties returns the interface's link properties. The result is
// owned by s; callers that keep it beyond the snapshot should Clone it.
func (s *InterfaceState) LinkProperties() *LinkProperties { return s.linkProperties }

// SetLinkProperties replaces the link properties. A nil value resets them.
func (s *InterfaceState) SetLinkProperties(lp *LinkProperties) {
	if lp == nil {
		lp = &LinkProperties{}
	}
	s.linkProperties = lp
}

// NetworkInfo returns a copy of the reported network status.
func (s *InterfaceState) NetworkInfo() NetworkInfo { return s.networkInfo }

func (s *InterfaceState) SetNetworkInfo(ni NetworkInfo) { s.networkInfo = ni }

func (s *InterfaceState) SetDetailedState(state DetailedState, reason, extraInfo string) {
	s.networkInfo.DetailedState = state
	s.networkInfo.Reason = reason
	s.networkInfo.ExtraInfo = extraInfo
}

func (s *InterfaceState) DetailedState() DetailedState { return s.networkInfo.DetailedState }

func (s *InterfaceState) SetIsAvailable(available bool) { s.networkInfo.Available = available }

// Name returns the interface name.
func (s *InterfaceState) Name() string {
	if s.linkProperties == nil {
		return "none"
	}
	return s.linkProperties.InterfaceName
}

func (s *InterfaceState) SetName(name string) { s.linkProperties.InterfaceName = name }

func (s *InterfaceState) AddLinkAddress(addr netip.Prefix) { s.linkProperties.AddLinkAddress(addr) }

func (s *InterfaceState) HTTPProxy() *ProxyInfo { return s.linkProperties.HTTPProxy }

func (s *InterfaceState) SetHTTPProxy(p *ProxyInfo) { s.linkProperties.HTTPProxy = p }

// LinkAddress returns the first link address. More than one address is a
// consistency error; it is logged and the first address wins.
func (s *InterfaceState) LinkAddress() (netip.Prefix, bool) {
	addrs := s.linkProperties.LinkAddresses
	if len(addrs) == 0 {
		return netip.Prefix{}, false
	}
	if len(addrs) > 1 {
		s.logger().WithField("count", len(addrs)).Error("Consistency error: multiple link addresses")
	}
	return addrs[0], true
}

// DefaultGateway returns the gateway of the first default route. A second
// default route is a consistency error; it is logged and the first wins.
func (s *InterfaceState) DefaultGateway() (netip.Addr, bool) {
	var gw netip.Addr
	found := false
	for _, route := range s.linkProperties.Routes {
		if !route.IsDefaultRoute() {
			continue
		}
		if found {
			s.logger().WithField("gateway", gw.String()).Error("Consistency error: multiple default routes")
			break
		}
		gw = route.Gateway
		found = true
	}
	return gw, found && gw.IsValid()
}

// DNS1 returns the primary DNS server.
func (s *InterfaceState) DNS1() (netip.Addr, bool) {
	if len(s.linkProperties.DNSServers) > 0 {
		return s.linkProperties.DNSServers[0], true
	}
	return netip.Addr{}, false
}

// DNS2 returns the secondary DNS server.
func (s *InterfaceState) DNS2() (netip.Addr, bool) {
	if len(s.linkProperties.DNSServers) > 1 {
		return s.linkProperties.DNSServers[1], true
	}
	return netip.Addr{}, false
}

// SetDNS replaces the DNS servers. Invalid addresses are skipped.
func (s *InterfaceState) SetDNS(dns1, dns2 netip.Addr) {
	var servers []netip.Addr
	if dns1.IsValid() {
		servers = append(servers, dns1)
	}
	if dns2.IsValid() {
		servers = append(servers, dns2)
	}
	s.linkProperties.SetDNSServers(servers)
}

// Equal reports whether two states carry the same status, assignment,
// proxy settings, link properties, network info and hardware address.
func (s *InterfaceState) Equal(other *InterfaceState) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.status == other.status &&
		s.ipConfig.IPAssignment == other.ipConfig.IPAssignment &&
		s.ipConfig.ProxySettings == other.ipConfig.ProxySettings &&
		s.linkProperties.Equal(other.linkProperties) &&
		s.networkInfo == other.networkInfo &&
		s.hwAddress == other.hwAddress
}

// Compare orders states by hardware address.
func (s *InterfaceState) Compare(other *InterfaceState) int {
	return strings.Compare(s.hwAddress, other.hwAddress)
}

func (s *InterfaceState) String() string {
	lp := "<none>"
	if s.linkProperties != nil {
		lp = s.linkProperties.String()
	}
	return fmt.Sprintf(" Device name: %s, Interface Status: %s, MAC Address: %s, IP assignment: %s, Proxy Settings: %s, Link properties: %s, Network info: %s",
		s.Name(), s.status, s.hwAddress, s.ipConfig.IPAssignment, s.ipConfig.ProxySettings, lp, s.networkInfo)
}
