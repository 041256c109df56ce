package types

import (
	"fmt"
	"net/netip"
	"slices"
	"strings"
)

// RouteInfo is a single routing entry. A zero Destination means the route
// is a gateway-only default route.
type RouteInfo struct {
	Destination netip.Prefix `json:"destination,omitempty"`
	Gateway     netip.Addr   `json:"gateway,omitempty"`
}

// NewRouteInfo returns a route to dst through gw. A zero-length dst is
// stored as the zero prefix, so every default route has one form.
func NewRouteInfo(dst netip.Prefix, gw netip.Addr) RouteInfo {
	return RouteInfo{Destination: dst, Gateway: gw}.normalized()
}

// NewGatewayRoute returns a default route through gw.
func NewGatewayRoute(gw netip.Addr) RouteInfo {
	return NewRouteInfo(netip.Prefix{}, gw)
}

func (r RouteInfo) normalized() RouteInfo {
	if r.IsDefaultRoute() {
		r.Destination = netip.Prefix{}
	}
	return r
}

// Equal reports whether both routes go to the same destination through the
// same gateway. All default routes share one destination.
func (r RouteInfo) Equal(other RouteInfo) bool {
	return r.normalized() == other.normalized()
}

// IsDefaultRoute reports whether the route has no specific destination.
func (r RouteInfo) IsDefaultRoute() bool {
	return !r.Destination.IsValid() || r.Destination.Bits() == 0
}

func (r RouteInfo) String() string {
	dst := "default"
	if !r.IsDefaultRoute() {
		dst = r.Destination.String()
	}
	if r.Gateway.IsValid() {
		return dst + " via " + r.Gateway.String()
	}
	return dst
}

// ProxyInfo is a static HTTP proxy.
type ProxyInfo struct {
	Host          string `json:"host"`
	Port          int    `json:"port"`
	ExclusionList string `json:"exclusion_list,omitempty"`
}

func (p ProxyInfo) String() string {
	return fmt.Sprintf("%s:%d xl=%s", p.Host, p.Port, p.ExclusionList)
}

// LinkProperties carries the addressing state of one interface.
type LinkProperties struct {
	InterfaceName string         `json:"interface_name"`
	LinkAddresses []netip.Prefix `json:"link_addresses,omitempty"`
	DNSServers    []netip.Addr   `json:"dns_servers,omitempty"`
	Routes        []RouteInfo    `json:"routes,omitempty"`
	HTTPProxy     *ProxyInfo     `json:"http_proxy,omitempty"`
}

// NewLinkProperties returns empty link properties for iface.
func NewLinkProperties(iface string) *LinkProperties {
	return &LinkProperties{InterfaceName: iface}
}

// AddLinkAddress appends addr unless an identical address is already present.
// It reports whether the address was added.
func (lp *LinkProperties) AddLinkAddress(addr netip.Prefix) bool {
	if slices.Contains(lp.LinkAddresses, addr) {
		return false
	}
	lp.LinkAddresses = append(lp.LinkAddresses, addr)
	return true
}

// AddDNSServer appends dns, keeping order. Duplicates are dropped.
func (lp *LinkProperties) AddDNSServer(dns netip.Addr) bool {
	if slices.Contains(lp.DNSServers, dns) {
		return false
	}
	lp.DNSServers = append(lp.DNSServers, dns)
	return true
}

// SetDNSServers replaces the DNS server list.
func (lp *LinkProperties) SetDNSServers(servers []netip.Addr) {
	lp.DNSServers = nil
	for _, s := range servers {
		lp.AddDNSServer(s)
	}
}

// AddRoute appends route unless it is already present.
func (lp *LinkProperties) AddRoute(route RouteInfo) bool {
	route = route.normalized()
	if slices.ContainsFunc(lp.Routes, route.Equal) {
		return false
	}
	lp.Routes = append(lp.Routes, route)
	return true
}

// Clone returns a deep copy of lp. Clone of nil is nil.
func (lp *LinkProperties) Clone() *LinkProperties {
	if lp == nil {
		return nil
	}
	out := &LinkProperties{
		InterfaceName: lp.InterfaceName,
		LinkAddresses: slices.Clone(lp.LinkAddresses),
		DNSServers:    slices.Clone(lp.DNSServers),
		Routes:        slices.Clone(lp.Routes),
	}
	if lp.HTTPProxy != nil {
		proxy := *lp.HTTPProxy
		out.HTTPProxy = &proxy
	}
	return out
}

// Equal compares two link properties. List order is significant.
func (lp *LinkProperties) Equal(other *LinkProperties) bool {
	if lp == nil || other == nil {
		return lp == other
	}
	if lp.InterfaceName != other.InterfaceName {
		return false
	}
	if !slices.Equal(lp.LinkAddresses, other.LinkAddresses) ||
		!slices.Equal(lp.DNSServers, other.DNSServers) ||
		!slices.EqualFunc(lp.Routes, other.Routes, RouteInfo.Equal) {
		return false
	}
	if lp.HTTPProxy == nil || other.HTTPProxy == nil {
		return lp.HTTPProxy == other.HTTPProxy
	}
	return *lp.HTTPProxy == *other.HTTPProxy
}

func (lp *LinkProperties) String() string {
	var b strings.Builder
	b.WriteString("{InterfaceName: ")
	b.WriteString(lp.InterfaceName)
	b.WriteString(" LinkAddresses: [")
	for i, a := range lp.LinkAddresses {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(a.String())
	}
	b.WriteString("] DnsAddresses: [")
	for i, d := range lp.DNSServers {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(d.String())
	}
	b.WriteString("] Routes: [")
	for i, r := range lp.Routes {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(r.String())
	}
	b.WriteString("]")
	if lp.HTTPProxy != nil {
		b.WriteString(" HttpProxy: ")
		b.WriteString(lp.HTTPProxy.String())
	}
	b.WriteString("}")
	return b.String()
}

// NetworkInfo is the runtime connection telemetry reported for a link.
// It is a plain value: copies never alias.
type NetworkInfo struct {
	TypeName      string        `json:"type_name"`
	DetailedState DetailedState `json:"detailed_state"`
	Reason        string        `json:"reason,omitempty"`
	ExtraInfo     string        `json:"extra_info,omitempty"`
	Available     bool          `json:"available"`
}

// NewNetworkInfo returns the idle ethernet placeholder.
func NewNetworkInfo() NetworkInfo {
	return NetworkInfo{
		TypeName:      "Ethernet",
		DetailedState: StateIdle,
	}
}

func (n NetworkInfo) String() string {
	return fmt.Sprintf("[type: %s, state: %s, reason: %s, extra: %s, available: %t]",
		n.TypeName, n.DetailedState, orNone(n.Reason), orNone(n.ExtraInfo), n.Available)
}

func orNone(s string) string {
	if s == "" {
		return "(unspecified)"
	}
	return s
}

// StaticIPConfig holds the addressing applied when assignment is static.
type StaticIPConfig struct {
	Address    netip.Prefix `json:"address,omitempty"`
	Gateway    netip.Addr   `json:"gateway,omitempty"`
	DNSServers []netip.Addr `json:"dns_servers,omitempty"`
}

// IPConfiguration is the configuration exchanged with a configuration source.
type IPConfiguration struct {
	IPAssignment  IPAssignment    `json:"ip_assignment"`
	ProxySettings ProxySettings   `json:"proxy_settings"`
	StaticIP      *StaticIPConfig `json:"static_ip,omitempty"`
	HTTPProxy     *ProxyInfo      `json:"http_proxy,omitempty"`
}

// NewIPConfiguration returns the default configuration: DHCP, proxy unassigned.
func NewIPConfiguration() IPConfiguration {
	return IPConfiguration{
		IPAssignment:  AssignmentDHCP,
		ProxySettings: ProxyUnassigned,
	}
}

// Clone returns a deep copy of c.
func (c IPConfiguration) Clone() IPConfiguration {
	out := c
	if c.StaticIP != nil {
		static := *c.StaticIP
		static.DNSServers = slices.Clone(c.StaticIP.DNSServers)
		out.StaticIP = &static
	}
	if c.HTTPProxy != nil {
		proxy := *c.HTTPProxy
		out.HTTPProxy = &proxy
	}
	return out
}

func (c IPConfiguration) String() string {
	s := fmt.Sprintf("IP assignment: %s, Proxy settings: %s", c.IPAssignment, c.ProxySettings)
	if c.StaticIP != nil {
		s += fmt.Sprintf(", Static: %s gw %s dns %v", c.StaticIP.Address, c.StaticIP.Gateway, c.StaticIP.DNSServers)
	}
	if c.HTTPProxy != nil {
		s += ", Proxy: " + c.HTTPProxy.String()
	}
	return s
}
