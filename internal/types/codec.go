package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/netip"
)

// placeholderInterfaceName is used until a record supplies interface_name.
const placeholderInterfaceName = "foobar"

// lookupIP resolves host names that are not IP literals.
var lookupIP = net.LookupIP

// AddressResolutionError is returned when a persisted address cannot be
// resolved. The whole record is rejected.
type AddressResolutionError struct {
	Field string
	Value string
	Err   error
}

func (e *AddressResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *AddressResolutionError) Unwrap() error { return e.Err }

// record is the persisted layout. Field order is the write order; pointer
// fields are optional keys and double as the staging area while reading.
type record struct {
	InterfaceStatus *int    `json:"interface_status,omitempty"`
	IPAssignment    *int    `json:"ip_assignment,omitempty"`
	ProxySettings   *int    `json:"proxy_settings,omitempty"`
	InterfaceName   *string `json:"interface_name,omitempty"`
	HWAddress       *string `json:"hw_address,omitempty"`
	ProxyHost       *string `json:"proxy_host,omitempty"`
	ProxyPort       *int    `json:"proxy_port,omitempty"`
	ProxyExclusion  *string `json:"proxy_exclusion,omitempty"`
	IPAddress       *string `json:"ip_address,omitempty"`
	Netmask         *int    `json:"netmask,omitempty"`
	DNS1            *string `json:"dns1,omitempty"`
	DNS2            *string `json:"dns2,omitempty"`
	DefaultRoute    *string `json:"default_route,omitempty"`
}

// DecodeInterfaceState parses a persisted record.
func DecodeInterfaceState(data []byte) (*InterfaceState, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse interface record: %w", err)
	}
	return rec.toState()
}

// ReadInterfaceState reads one persisted record from r.
func ReadInterfaceState(r io.Reader) (*InterfaceState, error) {
	var rec record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to parse interface record: %w", err)
	}
	return rec.toState()
}

// UnmarshalJSON replaces s with the state described by a persisted record.
// s is left untouched when the record is rejected.
func (s *InterfaceState) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeInterfaceState(data)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

func (rec *record) toState() (*InterfaceState, error) {
	s := NewInterfaceState()
	s.linkProperties.InterfaceName = placeholderInterfaceName

	if rec.InterfaceStatus != nil {
		status, err := InterfaceStatusFromOrdinal(*rec.InterfaceStatus)
		if err != nil {
			return nil, err
		}
		s.status = status
	}
	if rec.IPAssignment != nil {
		assignment, err := IPAssignmentFromOrdinal(*rec.IPAssignment)
		if err != nil {
			return nil, err
		}
		s.ipConfig.IPAssignment = assignment
	}
	if rec.ProxySettings != nil {
		proxy, err := ProxySettingsFromOrdinal(*rec.ProxySettings)
		if err != nil {
			return nil, err
		}
		s.ipConfig.ProxySettings = proxy
	}
	if rec.InterfaceName != nil {
		s.linkProperties.InterfaceName = *rec.InterfaceName
	}
	if rec.HWAddress != nil {
		s.hwAddress = *rec.HWAddress
	}

	if rec.ProxyHost != nil && rec.ProxyPort != nil && *rec.ProxyPort > 0 && rec.ProxyExclusion != nil {
		s.linkProperties.HTTPProxy = &ProxyInfo{
			Host:          *rec.ProxyHost,
			Port:          *rec.ProxyPort,
			ExclusionList: *rec.ProxyExclusion,
		}
	}
	// A negative netmask is how writers mark the address as unset.
	if rec.IPAddress != nil && rec.Netmask != nil && *rec.Netmask >= 0 {
		addr, err := resolveAddress("ip_address", *rec.IPAddress)
		if err != nil {
			return nil, err
		}
		prefix, err := addr.Prefix(*rec.Netmask)
		if err != nil {
			return nil, &AddressResolutionError{Field: "netmask", Value: fmt.Sprint(*rec.Netmask), Err: err}
		}
		s.linkProperties.AddLinkAddress(netip.PrefixFrom(addr, prefix.Bits()))
	}
	if rec.DNS1 != nil {
		dns, err := resolveAddress("dns1", *rec.DNS1)
		if err != nil {
			return nil, err
		}
		s.linkProperties.AddDNSServer(dns)
	}
	if rec.DNS2 != nil {
		dns, err := resolveAddress("dns2", *rec.DNS2)
		if err != nil {
			return nil, err
		}
		s.linkProperties.AddDNSServer(dns)
	}
	if rec.DefaultRoute != nil {
		gw, err := resolveAddress("default_route", *rec.DefaultRoute)
		if err != nil {
			return nil, err
		}
		s.linkProperties.AddRoute(NewGatewayRoute(gw))
	}
	return s, nil
}

func resolveAddress(field, value string) (netip.Addr, error) {
	if addr, err := netip.ParseAddr(value); err == nil {
		return addr, nil
	}
	ips, err := lookupIP(value)
	if err != nil {
		return netip.Addr{}, &AddressResolutionError{Field: field, Value: value, Err: err}
	}
	if len(ips) == 0 {
		return netip.Addr{}, &AddressResolutionError{Field: field, Value: value, Err: errors.New("no addresses found")}
	}
	addr, ok := netip.AddrFromSlice(ips[0])
	if !ok {
		return netip.Addr{}, &AddressResolutionError{Field: field, Value: value, Err: errors.New("malformed address")}
	}
	return addr.Unmap(), nil
}

// MarshalJSON writes the persisted record. Network info is runtime
// telemetry and is never written. Static addressing is only written for
// non-DHCP interfaces.
func (s *InterfaceState) MarshalJSON() ([]byte, error) {
	status := int(s.status)
	assignment := int(s.ipConfig.IPAssignment)
	proxySettings := int(s.ipConfig.ProxySettings)
	name := s.Name()
	hw := s.hwAddress
	rec := record{
		InterfaceStatus: &status,
		IPAssignment:    &assignment,
		ProxySettings:   &proxySettings,
		InterfaceName:   &name,
		HWAddress:       &hw,
	}
	log := s.logger()

	if proxy := s.linkProperties.HTTPProxy; proxy != nil {
		log.Debug("Persisting proxy properties")
		host, port := proxy.Host, proxy.Port
		rec.ProxyHost = &host
		rec.ProxyPort = &port
	} else {
		log.Debug("Not persisting proxy properties")
	}

	if s.ipConfig.IPAssignment != AssignmentDHCP {
		addrs := s.linkProperties.LinkAddresses
		if len(addrs) > 1 {
			log.WithField("count", len(addrs)).Warn("Found multiple link addresses, only persisting first")
		}
		if len(addrs) > 0 {
			ip := addrs[0].Addr().String()
			bits := addrs[0].Bits()
			rec.IPAddress = &ip
			rec.Netmask = &bits
		}

		if dns, ok := s.DNS1(); ok {
			v := dns.String()
			rec.DNS1 = &v
		}
		if dns, ok := s.DNS2(); ok {
			v := dns.String()
			rec.DNS2 = &v
		}

		routes := s.linkProperties.Routes
		if len(routes) > 1 {
			log.WithField("count", len(routes)).Warn("Found multiple routes, only persisting first")
		}
		gw, ok := s.DefaultGateway()
		if !ok && len(routes) > 0 && routes[0].Gateway.IsValid() {
			gw, ok = routes[0].Gateway, true
		}
		if ok {
			v := gw.String()
			rec.DefaultRoute = &v
		}
	}

	return json.Marshal(rec)
}

// WriteTo writes the persisted record to w.
func (s *InterfaceState) WriteTo(w io.Writer) (int64, error) {
	data, err := s.MarshalJSON()
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	buf.Write(data)
	buf.WriteByte('\n')
	return buf.WriteTo(w)
}
