// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"golang-ethmgr/internal/types"
)

// AvailabilityListener observes link availability changes of one interface.
type AvailabilityListener interface {
	OnAvailabilityChanged(available bool)
}

// ConfigurationSource is the privileged service owning the ethernet
// hardware. Every method is a synchronous remote call; an error means the
// service could not be reached or rejected the call.
//
// The primary interface and the plugged-in interface have parallel method
// sets.
type ConfigurationSource interface {
	GetConfiguration() (*types.IPConfiguration, error)
	SetConfiguration(config *types.IPConfiguration) error
	IsAvailable() (bool, error)
	AddListener(listener AvailabilityListener) error
	RemoveListener(listener AvailabilityListener) error
	GetEthernetLinkProperties() (*types.LinkProperties, error)
	GetEthernetNetworkInfo() (*types.NetworkInfo, error)
	Reconnect() error
	Teardown() error

	GetPluggedInEthernetConfiguration() (*types.IPConfiguration, error)
	SetPluggedInEthernetConfiguration(config *types.IPConfiguration) error
	IsPluggedInEthAvailable() (bool, error)
	AddPluggedInEthListener(listener AvailabilityListener) error
	RemovePluggedInEthListener(listener AvailabilityListener) error
	GetPluggedInLinkProperties() (*types.LinkProperties, error)
	GetPluggedInNetworkInfo() (*types.NetworkInfo, error)
	ConnectPluggedInEth() error
	TeardownPluggedInEth() error
}

// InterfaceConfig is the OS view of a named interface.
type InterfaceConfig struct {
	Name            string
	HardwareAddress string
	Up              bool
}

// InterfaceConfigResolver looks up the OS configuration of an interface.
// A nil config with a nil error means the interface has no usable entry.
type InterfaceConfigResolver interface {
	GetInterfaceConfig(name string) (*InterfaceConfig, error)
}
