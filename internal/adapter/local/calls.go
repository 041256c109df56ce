package local

import (
	"golang-ethmgr/internal/port"
	"golang-ethmgr/internal/types"
)

func (s *Source) GetConfiguration() (*types.IPConfiguration, error) {
	return s.primary.configuration()
}

func (s *Source) SetConfiguration(config *types.IPConfiguration) error {
	return s.primary.setConfiguration(config)
}

func (s *Source) IsAvailable() (bool, error) { return s.primary.isAvailable() }

func (s *Source) AddListener(listener port.AvailabilityListener) error {
	return s.primary.addListener(listener)
}

func (s *Source) RemoveListener(listener port.AvailabilityListener) error {
	return s.primary.removeListener(listener)
}

func (s *Source) GetEthernetLinkProperties() (*types.LinkProperties, error) {
	return s.primary.linkProperties()
}

func (s *Source) GetEthernetNetworkInfo() (*types.NetworkInfo, error) {
	return s.primary.networkInfo()
}

func (s *Source) Reconnect() error { return s.primary.setUp() }
func (s *Source) Teardown() error  { return s.primary.setDown() }

func (s *Source) GetPluggedInEthernetConfiguration() (*types.IPConfiguration, error) {
	return s.pluggedIn.configuration()
}

func (s *Source) SetPluggedInEthernetConfiguration(config *types.IPConfiguration) error {
	return s.pluggedIn.setConfiguration(config)
}

func (s *Source) IsPluggedInEthAvailable() (bool, error) { return s.pluggedIn.isAvailable() }

func (s *Source) AddPluggedInEthListener(listener port.AvailabilityListener) error {
	return s.pluggedIn.addListener(listener)
}

func (s *Source) RemovePluggedInEthListener(listener port.AvailabilityListener) error {
	return s.pluggedIn.removeListener(listener)
}

func (s *Source) GetPluggedInLinkProperties() (*types.LinkProperties, error) {
	return s.pluggedIn.linkProperties()
}

func (s *Source) GetPluggedInNetworkInfo() (*types.NetworkInfo, error) {
	return s.pluggedIn.networkInfo()
}

func (s *Source) ConnectPluggedInEth() error  { return s.pluggedIn.setUp() }
func (s *Source) TeardownPluggedInEth() error { return s.pluggedIn.setDown() }
