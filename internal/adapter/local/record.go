package local

import (
	"slices"

	"golang-ethmgr/internal/types"
)

// configurationFromState rebuilds the configuration held in a persisted
// record. Static addressing is only present for static assignments.
func configurationFromState(state *types.InterfaceState) types.IPConfiguration {
	config := state.IPConfiguration()
	config.StaticIP = nil
	if proxy := state.HTTPProxy(); proxy != nil {
		p := *proxy
		config.HTTPProxy = &p
	}
	if !state.IsStaticIPAssignment() {
		return config
	}

	static := &types.StaticIPConfig{}
	if addr, ok := state.LinkAddress(); ok {
		static.Address = addr
	}
	if gw, ok := state.DefaultGateway(); ok {
		static.Gateway = gw
	}
	if lp := state.LinkProperties(); lp != nil {
		static.DNSServers = slices.Clone(lp.DNSServers)
	}
	config.StaticIP = static
	return config
}

// stateFromConfiguration builds the record persisted for config.
func stateFromConfiguration(name, hwAddress string, status types.InterfaceStatus, config types.IPConfiguration) *types.InterfaceState {
	state := types.NewNamedInterfaceState(name, hwAddress)
	state.SetStatus(status)
	state.SetIPConfiguration(config)
	if config.HTTPProxy != nil {
		proxy := *config.HTTPProxy
		state.SetHTTPProxy(&proxy)
	}
	if static := config.StaticIP; static != nil {
		if static.Address.IsValid() {
			state.AddLinkAddress(static.Address)
		}
		if static.Gateway.IsValid() {
			state.LinkProperties().AddRoute(types.NewGatewayRoute(static.Gateway))
		}
		state.LinkProperties().SetDNSServers(slices.Clone(static.DNSServers))
	}
	return state
}
