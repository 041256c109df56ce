//go:build unit

package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"net"
	"net/netip"
	"strings"
	"testing"

	"golang-ethmgr/internal/pkg/logging"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticState() *InterfaceState {
	s := NewNamedInterfaceState("eth0", "aa:bb:cc:dd:ee:ff")
	s.Enable()
	s.SetIPAssignment(AssignmentStatic)
	s.SetProxySettings(ProxyNone)
	s.AddLinkAddress(netip.MustParsePrefix("192.168.1.5/24"))
	s.SetDNS(netip.MustParseAddr("8.8.8.8"), netip.MustParseAddr("8.8.4.4"))
	s.LinkProperties().AddRoute(NewGatewayRoute(netip.MustParseAddr("192.168.1.1")))
	return s
}

func keysOf(t *testing.T, data []byte) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestInterfaceState_RoundTrip(t *testing.T) {
	original := staticState()
	original.SetDetailedState(StateConnected, "link up", "")

	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := DecodeInterfaceState(data)
	require.NoError(t, err)

	// Network info is not persisted and comes back as the placeholder.
	assert.Equal(t, NewNetworkInfo(), decoded.NetworkInfo())
	assert.False(t, decoded.Equal(original))

	original.SetNetworkInfo(NewNetworkInfo())
	assert.True(t, decoded.Equal(original), "decoded %s", decoded)
	assert.Equal(t, "eth0", decoded.Name())
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", decoded.HardwareAddress())
	assert.Equal(t, StatusEnabled, decoded.Status())
	assert.Equal(t, AssignmentStatic, decoded.IPAssignment())
	assert.Equal(t, ProxyNone, decoded.ProxySettings())
}

func TestInterfaceState_MarshalJSON_KeyOrder(t *testing.T) {
	data, err := json.Marshal(staticState())
	require.NoError(t, err)

	assert.Equal(t,
		`{"interface_status":1,"ip_assignment":0,"proxy_settings":0,"interface_name":"eth0","hw_address":"aa:bb:cc:dd:ee:ff",`+
			`"ip_address":"192.168.1.5","netmask":24,"dns1":"8.8.8.8","dns2":"8.8.4.4","default_route":"192.168.1.1"}`,
		string(data))
}

func TestInterfaceState_DHCPSuppressesStaticFields(t *testing.T) {
	input := `{"interface_status":1,"ip_assignment":1,"proxy_settings":2,"interface_name":"eth0",` +
		`"ip_address":"10.0.0.2","netmask":8,"dns1":"1.1.1.1","dns2":"1.0.0.1","default_route":"10.0.0.1","hw_address":"00:11:22:33:44:55"}`

	decoded, err := DecodeInterfaceState([]byte(input))
	require.NoError(t, err)

	// Static fields are read back into memory...
	require.Len(t, decoded.LinkProperties().LinkAddresses, 1)
	require.Len(t, decoded.LinkProperties().DNSServers, 2)

	data, err := json.Marshal(decoded)
	require.NoError(t, err)
	keys := keysOf(t, data)

	// ...but never written for a DHCP interface.
	for _, key := range []string{"ip_address", "netmask", "dns1", "dns2", "default_route"} {
		assert.NotContains(t, keys, key)
	}
	assert.Equal(t, "eth0", keys["interface_name"])
	assert.Equal(t, "00:11:22:33:44:55", keys["hw_address"])
}

func TestInterfaceState_SingleDNSServer(t *testing.T) {
	s := NewNamedInterfaceState("eth1", "")
	s.SetIPAssignment(AssignmentStatic)
	s.SetDNS(netip.MustParseAddr("9.9.9.9"), netip.Addr{})

	data, err := json.Marshal(s)
	require.NoError(t, err)
	keys := keysOf(t, data)
	assert.Equal(t, "9.9.9.9", keys["dns1"])
	assert.NotContains(t, keys, "dns2")

	decoded, err := DecodeInterfaceState(data)
	require.NoError(t, err)
	dns1, ok := decoded.DNS1()
	require.True(t, ok)
	assert.Equal(t, "9.9.9.9", dns1.String())
	_, ok = decoded.DNS2()
	assert.False(t, ok)
}

func TestInterfaceState_DNSTruncation(t *testing.T) {
	s := NewNamedInterfaceState("eth0", "")
	s.SetIPAssignment(AssignmentStatic)
	s.LinkProperties().SetDNSServers([]netip.Addr{
		netip.MustParseAddr("1.1.1.1"),
		netip.MustParseAddr("1.0.0.1"),
		netip.MustParseAddr("8.8.8.8"),
	})

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Len(t, s.LinkProperties().DNSServers, 3)

	decoded, err := DecodeInterfaceState(data)
	require.NoError(t, err)
	assert.Equal(t, []netip.Addr{netip.MustParseAddr("1.1.1.1"), netip.MustParseAddr("1.0.0.1")}, decoded.LinkProperties().DNSServers)
}

func TestInterfaceState_MultipleDefaultRoutes(t *testing.T) {
	hook := test.NewLocal(logging.GetLogger())
	defer hook.Reset()

	s := NewNamedInterfaceState("eth0", "")
	s.SetIPAssignment(AssignmentStatic)
	s.LinkProperties().AddRoute(RouteInfo{
		Destination: netip.MustParsePrefix("10.0.0.0/8"),
		Gateway:     netip.MustParseAddr("192.168.1.254"),
	})
	s.LinkProperties().AddRoute(NewGatewayRoute(netip.MustParseAddr("192.168.1.1")))
	s.LinkProperties().AddRoute(NewGatewayRoute(netip.MustParseAddr("192.168.1.2")))

	var data []byte
	var err error
	assert.NotPanics(t, func() { data, err = json.Marshal(s) })
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.1", keysOf(t, data)["default_route"])

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, "Consistency error: multiple default routes")
	assert.Contains(t, messages, "Found multiple routes, only persisting first")
}

func TestInterfaceState_ExplicitDefaultRoute(t *testing.T) {
	hook := test.NewLocal(logging.GetLogger())
	defer hook.Reset()

	gw := netip.MustParseAddr("192.168.1.1")
	s := NewNamedInterfaceState("eth0", "aa:bb:cc:dd:ee:ff")
	s.SetIPAssignment(AssignmentStatic)
	s.AddLinkAddress(netip.MustParsePrefix("192.168.1.5/24"))
	require.True(t, s.LinkProperties().AddRoute(RouteInfo{
		Destination: netip.MustParsePrefix("0.0.0.0/0"),
		Gateway:     gw,
	}))
	assert.False(t, s.LinkProperties().AddRoute(NewGatewayRoute(gw)))
	assert.Len(t, s.LinkProperties().Routes, 1)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	decoded, err := DecodeInterfaceState(data)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(s), "decoded %s", decoded)

	got, ok := decoded.DefaultGateway()
	require.True(t, ok)
	assert.Equal(t, gw, got)
	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, logrus.ErrorLevel, entry.Level, entry.Message)
	}
}

func TestInterfaceState_MultipleLinkAddresses(t *testing.T) {
	hook := test.NewLocal(logging.GetLogger())
	defer hook.Reset()

	s := NewNamedInterfaceState("eth0", "")
	s.SetIPAssignment(AssignmentStatic)
	s.AddLinkAddress(netip.MustParsePrefix("10.1.1.1/16"))
	s.AddLinkAddress(netip.MustParsePrefix("10.2.2.2/16"))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	keys := keysOf(t, data)
	assert.Equal(t, "10.1.1.1", keys["ip_address"])
	assert.EqualValues(t, 16, keys["netmask"])

	addr, ok := s.LinkAddress()
	require.True(t, ok)
	assert.Equal(t, "10.1.1.1/16", addr.String())
	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.ErrorLevel, last.Level)
	assert.Equal(t, "Consistency error: multiple link addresses", last.Message)
}

func TestDecodeInterfaceState(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		s, err := DecodeInterfaceState([]byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, "foobar", s.Name())
		assert.Equal(t, StatusDisabled, s.Status())
		assert.Equal(t, AssignmentDHCP, s.IPAssignment())
		assert.Equal(t, ProxyUnassigned, s.ProxySettings())
		assert.Equal(t, "", s.HardwareAddress())
	})

	t.Run("UnknownKeysIgnored", func(t *testing.T) {
		s, err := DecodeInterfaceState([]byte(`{"interface_name":"eth0","future_key":{"a":1}}`))
		require.NoError(t, err)
		assert.Equal(t, "eth0", s.Name())
	})

	t.Run("ProxyRequiresAllFields", func(t *testing.T) {
		s, err := DecodeInterfaceState([]byte(`{"proxy_host":"proxy","proxy_port":3128}`))
		require.NoError(t, err)
		assert.Nil(t, s.HTTPProxy())

		s, err = DecodeInterfaceState([]byte(`{"proxy_host":"proxy","proxy_port":0,"proxy_exclusion":""}`))
		require.NoError(t, err)
		assert.Nil(t, s.HTTPProxy())

		s, err = DecodeInterfaceState([]byte(`{"proxy_host":"proxy","proxy_port":3128,"proxy_exclusion":"localhost"}`))
		require.NoError(t, err)
		require.NotNil(t, s.HTTPProxy())
		assert.Equal(t, ProxyInfo{Host: "proxy", Port: 3128, ExclusionList: "localhost"}, *s.HTTPProxy())
	})

	t.Run("ProxyPersistsHostAndPortOnly", func(t *testing.T) {
		s := NewNamedInterfaceState("eth0", "")
		s.SetHTTPProxy(&ProxyInfo{Host: "proxy", Port: 3128, ExclusionList: "localhost"})
		data, err := json.Marshal(s)
		require.NoError(t, err)
		keys := keysOf(t, data)
		assert.Equal(t, "proxy", keys["proxy_host"])
		assert.EqualValues(t, 3128, keys["proxy_port"])
		assert.NotContains(t, keys, "proxy_exclusion")
	})

	t.Run("AddressRequiresNetmask", func(t *testing.T) {
		s, err := DecodeInterfaceState([]byte(`{"ip_address":"10.0.0.2"}`))
		require.NoError(t, err)
		assert.Empty(t, s.LinkProperties().LinkAddresses)
	})

	t.Run("DefaultRouteIsGatewayOnly", func(t *testing.T) {
		s, err := DecodeInterfaceState([]byte(`{"default_route":"10.0.0.1"}`))
		require.NoError(t, err)
		require.Len(t, s.LinkProperties().Routes, 1)
		route := s.LinkProperties().Routes[0]
		assert.True(t, route.IsDefaultRoute())
		assert.False(t, route.Destination.IsValid())
		assert.Equal(t, "10.0.0.1", route.Gateway.String())
	})

	t.Run("HostNameResolved", func(t *testing.T) {
		restore := lookupIP
		defer func() { lookupIP = restore }()
		lookupIP = func(host string) ([]net.IP, error) {
			assert.Equal(t, "dns.example", host)
			return []net.IP{net.ParseIP("192.0.2.53"), net.ParseIP("192.0.2.54")}, nil
		}

		s, err := DecodeInterfaceState([]byte(`{"dns1":"dns.example"}`))
		require.NoError(t, err)
		dns1, ok := s.DNS1()
		require.True(t, ok)
		assert.Equal(t, "192.0.2.53", dns1.String())
	})

	t.Run("UnresolvableAddressFails", func(t *testing.T) {
		restore := lookupIP
		defer func() { lookupIP = restore }()
		lookupIP = func(string) ([]net.IP, error) { return nil, errors.New("no such host") }

		s, err := DecodeInterfaceState([]byte(`{"interface_name":"eth0","dns1":"8.8.8.8","default_route":"gw.invalid"}`))
		assert.Nil(t, s)
		require.Error(t, err)
		var resolveErr *AddressResolutionError
		require.ErrorAs(t, err, &resolveErr)
		assert.Equal(t, "default_route", resolveErr.Field)
		assert.Equal(t, "gw.invalid", resolveErr.Value)
	})

	t.Run("InvalidOrdinal", func(t *testing.T) {
		_, err := DecodeInterfaceState([]byte(`{"ip_assignment":7}`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid ip assignment ordinal")
	})

	t.Run("NegativeNetmaskMeansNoAddress", func(t *testing.T) {
		s, err := DecodeInterfaceState([]byte(`{"ip_address":"10.0.0.2","netmask":-1,"dns1":"1.1.1.1"}`))
		require.NoError(t, err)
		assert.Empty(t, s.LinkProperties().LinkAddresses)
		dns1, ok := s.DNS1()
		require.True(t, ok)
		assert.Equal(t, "1.1.1.1", dns1.String())
	})

	t.Run("InvalidNetmask", func(t *testing.T) {
		_, err := DecodeInterfaceState([]byte(`{"ip_address":"10.0.0.2","netmask":40}`))
		var resolveErr *AddressResolutionError
		require.ErrorAs(t, err, &resolveErr)
		assert.Equal(t, "netmask", resolveErr.Field)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := DecodeInterfaceState([]byte(`{"interface_status":"one"}`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse interface record")
	})
}

func TestInterfaceState_UnmarshalJSONLeavesStateOnError(t *testing.T) {
	restore := lookupIP
	defer func() { lookupIP = restore }()
	lookupIP = func(string) ([]net.IP, error) { return nil, errors.New("no such host") }

	s := staticState()
	err := json.Unmarshal([]byte(`{"interface_name":"eth9","ip_address":"bad address","netmask":24}`), s)
	require.Error(t, err)
	assert.Equal(t, "eth0", s.Name())
	assert.Len(t, s.LinkProperties().LinkAddresses, 1)
}

func TestInterfaceState_WriteToAndRead(t *testing.T) {
	var buf bytes.Buffer
	_, err := staticState().WriteTo(&buf)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))

	decoded, err := ReadInterfaceState(&buf)
	require.NoError(t, err)
	assert.Equal(t, "eth0", decoded.Name())
	gw, ok := decoded.DefaultGateway()
	require.True(t, ok)
	assert.Equal(t, "192.168.1.1", gw.String())
}
