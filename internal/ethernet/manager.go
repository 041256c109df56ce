package ethernet

import (
	"sync"

	"golang-ethmgr/internal/pkg/logging"
	"golang-ethmgr/internal/pkg/metrics"
	"golang-ethmgr/internal/port"
	"golang-ethmgr/internal/types"
)

// Manager is the client of a ConfigurationSource for both ethernet ports.
// It is safe for concurrent use.
type Manager struct {
	source     port.ConfigurationSource
	resolver   port.InterfaceConfigResolver
	dispatcher *dispatcher
	channels   [2]*channel
	closeOnce  sync.Once
}

// NewManager creates a manager for source. resolver supplies hardware
// addresses for snapshots and may be nil.
func NewManager(source port.ConfigurationSource, resolver port.InterfaceConfigResolver) *Manager {
	m := &Manager{
		source:   source,
		resolver: resolver,
	}
	m.dispatcher = newDispatcher(m.deliver)
	m.channels[Primary] = &channel{
		iface:           Primary,
		calls:           primaryCalls(source),
		relay:           &relay{iface: Primary, dispatcher: m.dispatcher},
		strictSubscribe: true,
	}
	m.channels[PluggedIn] = &channel{
		iface: PluggedIn,
		calls: pluggedInCalls(source),
		relay: &relay{iface: PluggedIn, dispatcher: m.dispatcher},
	}
	return m
}

func (m *Manager) channel(iface Interface) *channel {
	if iface < 0 || int(iface) >= len(m.channels) {
		panic("ethernet: invalid interface " + iface.String())
	}
	return m.channels[iface]
}

func (m *Manager) deliver(ev availabilityEvent) {
	m.channel(ev.iface).deliver(ev.available)
}

// Close stops event delivery after the queued events have been delivered.
// Listeners stay subscribed with the source; events arriving afterwards
// are dropped.
//
// Close waits for the delivery goroutine, so a listener must not call it
// from OnAvailabilityChanged. A listener that shuts the manager down does
// so from its own goroutine (go m.Close()).
func (m *Manager) Close() {
	m.closeOnce.Do(m.dispatcher.close)
}

// ListenerCount returns the number of registrations for iface.
func (m *Manager) ListenerCount(iface Interface) int {
	return m.channel(iface).registry.len()
}

// Configuration returns the IP configuration of iface.
func (m *Manager) Configuration(iface Interface) (*types.IPConfiguration, error) {
	return m.channel(iface).getConfiguration()
}

// SetConfigurationFor applies cfg to iface.
func (m *Manager) SetConfigurationFor(iface Interface, cfg *types.IPConfiguration) error {
	return m.channel(iface).setConfiguration(cfg)
}

// Available reports whether the source considers iface available.
func (m *Manager) Available(iface Interface) (bool, error) {
	return m.channel(iface).isAvailable()
}

// AddListenerFor registers l for availability changes of iface.
func (m *Manager) AddListenerFor(iface Interface, l port.AvailabilityListener) error {
	return m.channel(iface).addListener(l)
}

// RemoveListenerFor removes the first registration of l for iface.
func (m *Manager) RemoveListenerFor(iface Interface, l port.AvailabilityListener) error {
	return m.channel(iface).removeListener(l)
}

// LinkProperties returns the source's link properties for iface, or nil
// when they cannot be fetched.
func (m *Manager) LinkProperties(iface Interface) *types.LinkProperties {
	return m.channel(iface).linkProperties()
}

// NetworkInfo returns the source's network info for iface, or nil when it
// cannot be fetched.
func (m *Manager) NetworkInfo(iface Interface) *types.NetworkInfo {
	return m.channel(iface).networkInfo()
}

// Connect asks the source to bring iface up. Failures are logged.
func (m *Manager) Connect(iface Interface) { m.channel(iface).connect() }

// Disconnect asks the source to tear iface down. Failures are logged.
func (m *Manager) Disconnect(iface Interface) { m.channel(iface).teardown() }

// Info composes a snapshot of iface from the source's network info, link
// properties, IP configuration and availability, plus the hardware address
// resolved locally. Hardware lookup failures leave the address empty.
func (m *Manager) Info(iface Interface) (*types.InterfaceState, error) {
	state, err := m.compose(iface)
	metrics.RecordSnapshot(iface.String(), err)
	return state, err
}

func (m *Manager) compose(iface Interface) (*types.InterfaceState, error) {
	c := m.channel(iface)
	log := c.logger()
	state := types.NewInterfaceState()

	networkInfo := c.networkInfo()
	linkProperties := c.linkProperties()

	if linkProperties != nil {
		if name := linkProperties.InterfaceName; name != "" {
			if hw := m.hardwareAddress(iface, name); hw != "" {
				state.SetHardwareAddress(hw)
			}
		} else {
			log.Error("Failed to get iface")
		}
	}

	cfg, err := c.getConfiguration()
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		state.SetIPConfiguration(*cfg)
	}
	if networkInfo != nil {
		state.SetNetworkInfo(*networkInfo)
	}
	state.SetLinkProperties(linkProperties.Clone())

	available, err := c.isAvailable()
	if err != nil {
		return nil, err
	}
	if available {
		state.Enable()
	} else {
		state.Disable()
	}

	log.WithField("state", state.String()).Debug("Composed interface snapshot")
	return state, nil
}

func (m *Manager) hardwareAddress(iface Interface, name string) string {
	log := logging.WithComponentAndInterface("ethernet", name).WithField("port", iface.String())
	if m.resolver == nil {
		log.Debug("No interface resolver configured")
		return ""
	}
	config, err := m.resolver.GetInterfaceConfig(name)
	if err != nil {
		metrics.RecordHardwareLookupFailure(iface.String())
		log.WithError(err).Error("Failed to get interface configuration")
		return ""
	}
	if config == nil || config.HardwareAddress == "" {
		metrics.RecordHardwareLookupFailure(iface.String())
		log.Error("Failed to get hardware address")
		return ""
	}
	return config.HardwareAddress
}

// Primary port.

func (m *Manager) GetConfiguration() (*types.IPConfiguration, error) {
	return m.Configuration(Primary)
}

func (m *Manager) SetConfiguration(cfg *types.IPConfiguration) error {
	return m.SetConfigurationFor(Primary, cfg)
}

func (m *Manager) IsAvailable() (bool, error) { return m.Available(Primary) }

// AddListener registers l for the primary port. The first registration
// subscribes to the source; a subscription failure is returned and the
// registration is undone.
func (m *Manager) AddListener(l port.AvailabilityListener) error {
	return m.AddListenerFor(Primary, l)
}

// RemoveListener removes l from the primary port. Removing the last
// listener unsubscribes from the source.
func (m *Manager) RemoveListener(l port.AvailabilityListener) error {
	return m.RemoveListenerFor(Primary, l)
}

func (m *Manager) GetEthernetInfo() (*types.InterfaceState, error) { return m.Info(Primary) }

func (m *Manager) Reconnect() { m.Connect(Primary) }

func (m *Manager) Teardown() { m.Disconnect(Primary) }

func (m *Manager) GetEthernetLinkProperties() *types.LinkProperties {
	return m.LinkProperties(Primary)
}

func (m *Manager) GetEthernetNetworkInfo() *types.NetworkInfo { return m.NetworkInfo(Primary) }

// Plugged-in port.

func (m *Manager) GetPluggedInEthernetConfiguration() (*types.IPConfiguration, error) {
	return m.Configuration(PluggedIn)
}

func (m *Manager) SetPluggedInEthernetConfiguration(cfg *types.IPConfiguration) error {
	return m.SetConfigurationFor(PluggedIn, cfg)
}

func (m *Manager) IsPluggedInEthAvailable() (bool, error) { return m.Available(PluggedIn) }

// AddPluggedInEthListener registers l for the plugged-in port. Subscription
// failures are logged and the registration is kept.
func (m *Manager) AddPluggedInEthListener(l port.AvailabilityListener) error {
	return m.AddListenerFor(PluggedIn, l)
}

func (m *Manager) RemovePluggedInEthListener(l port.AvailabilityListener) error {
	return m.RemoveListenerFor(PluggedIn, l)
}

func (m *Manager) GetPluggedInEthernetInfo() (*types.InterfaceState, error) {
	return m.Info(PluggedIn)
}

func (m *Manager) ConnectPluggedInEth() { m.Connect(PluggedIn) }

func (m *Manager) TeardownPluggedInEth() { m.Disconnect(PluggedIn) }

func (m *Manager) GetPluggedInLinkProperties() *types.LinkProperties {
	return m.LinkProperties(PluggedIn)
}

func (m *Manager) GetPluggedInNetworkInfo() *types.NetworkInfo {
	return m.NetworkInfo(PluggedIn)
}
