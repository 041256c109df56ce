//go:build unit

package types

import (
	"net/netip"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterfaceState(t *testing.T) {
	s := NewInterfaceState()
	assert.Equal(t, StatusDisabled, s.Status())
	assert.Equal(t, AssignmentDHCP, s.IPAssignment())
	assert.Equal(t, ProxyUnassigned, s.ProxySettings())
	assert.Equal(t, "", s.HardwareAddress())
	assert.Equal(t, NewNetworkInfo(), s.NetworkInfo())
	assert.Empty(t, s.LinkProperties().LinkAddresses)
	assert.False(t, s.IsEnabled())
	assert.False(t, s.IsStaticIPAssignment())
}

func TestInterfaceState_Equal(t *testing.T) {
	a := staticState()
	b := staticState()
	assert.True(t, a.Equal(b))

	t.Run("Status", func(t *testing.T) {
		c := b.Clone()
		c.Disable()
		assert.False(t, a.Equal(c))
	})

	t.Run("NetworkInfo", func(t *testing.T) {
		c := b.Clone()
		c.SetIsAvailable(true)
		assert.False(t, a.Equal(c))
	})

	t.Run("DNSOrder", func(t *testing.T) {
		c := b.Clone()
		c.SetDNS(netip.MustParseAddr("8.8.4.4"), netip.MustParseAddr("8.8.8.8"))
		assert.False(t, a.Equal(c))
	})

	t.Run("HardwareAddress", func(t *testing.T) {
		c := b.Clone()
		c.SetHardwareAddress("00:00:00:00:00:01")
		assert.False(t, a.Equal(c))
	})

	t.Run("StaticDetailsIgnored", func(t *testing.T) {
		c := b.Clone()
		cfg := c.IPConfiguration()
		cfg.StaticIP = &StaticIPConfig{Address: netip.MustParsePrefix("10.0.0.1/8")}
		c.SetIPConfiguration(cfg)
		assert.True(t, a.Equal(c))
	})
}

func TestInterfaceState_Compare(t *testing.T) {
	states := []*InterfaceState{
		NewNamedInterfaceState("eth1", "bb:00:00:00:00:00"),
		NewNamedInterfaceState("eth0", "aa:00:00:00:00:00"),
		NewNamedInterfaceState("eth2", "ab:00:00:00:00:00"),
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Compare(states[j]) < 0 })
	assert.Equal(t, "eth0", states[0].Name())
	assert.Equal(t, "eth2", states[1].Name())
	assert.Equal(t, "eth1", states[2].Name())
	assert.Equal(t, 0, states[0].Compare(states[0]))
}

func TestInterfaceState_NetworkInfoIsCopied(t *testing.T) {
	s := NewInterfaceState()
	info := s.NetworkInfo()
	info.DetailedState = StateFailed
	info.Available = true

	assert.Equal(t, StateIdle, s.DetailedState())
	assert.False(t, s.NetworkInfo().Available)
}

func TestInterfaceState_Clone(t *testing.T) {
	a := staticState()
	b := a.Clone()
	b.LinkProperties().AddDNSServer(netip.MustParseAddr("9.9.9.9"))
	b.SetName("eth7")

	assert.Len(t, a.LinkProperties().DNSServers, 2)
	assert.Equal(t, "eth0", a.Name())
}

func TestInterfaceState_DefaultGateway(t *testing.T) {
	s := NewInterfaceState()
	_, ok := s.DefaultGateway()
	assert.False(t, ok)

	s.LinkProperties().AddRoute(RouteInfo{
		Destination: netip.MustParsePrefix("172.16.0.0/12"),
		Gateway:     netip.MustParseAddr("10.0.0.254"),
	})
	_, ok = s.DefaultGateway()
	assert.False(t, ok)

	s.LinkProperties().AddRoute(RouteInfo{
		Destination: netip.MustParsePrefix("0.0.0.0/0"),
		Gateway:     netip.MustParseAddr("10.0.0.1"),
	})
	gw, ok := s.DefaultGateway()
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", gw.String())
}

func TestLinkProperties(t *testing.T) {
	lp := NewLinkProperties("eth0")
	assert.True(t, lp.AddDNSServer(netip.MustParseAddr("1.1.1.1")))
	assert.False(t, lp.AddDNSServer(netip.MustParseAddr("1.1.1.1")))
	assert.True(t, lp.AddLinkAddress(netip.MustParsePrefix("10.0.0.2/24")))
	assert.False(t, lp.AddLinkAddress(netip.MustParsePrefix("10.0.0.2/24")))
	assert.True(t, lp.AddRoute(NewGatewayRoute(netip.MustParseAddr("10.0.0.1"))))
	assert.False(t, lp.AddRoute(NewGatewayRoute(netip.MustParseAddr("10.0.0.1"))))

	clone := lp.Clone()
	assert.True(t, lp.Equal(clone))
	clone.HTTPProxy = &ProxyInfo{Host: "p", Port: 1}
	assert.False(t, lp.Equal(clone))

	var nilLP *LinkProperties
	assert.Nil(t, nilLP.Clone())
	assert.True(t, nilLP.Equal(nil))
	assert.False(t, lp.Equal(nil))
	assert.Contains(t, lp.String(), "10.0.0.2/24")
}

func TestEnumOrdinals(t *testing.T) {
	assert.Equal(t, 0, int(AssignmentStatic))
	assert.Equal(t, 1, int(AssignmentDHCP))
	assert.Equal(t, 2, int(AssignmentUnassigned))
	assert.Equal(t, 0, int(ProxyNone))
	assert.Equal(t, 3, int(ProxyPAC))
	assert.Equal(t, "ENABLED", StatusEnabled.String())
	assert.Equal(t, "PAC", ProxyPAC.String())
	assert.Equal(t, "IPAssignment(9)", IPAssignment(9).String())

	_, err := ProxySettingsFromOrdinal(4)
	assert.Error(t, err)
	_, err = InterfaceStatusFromOrdinal(-1)
	assert.Error(t, err)
}
