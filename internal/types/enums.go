// Package types defines the interface state model shared by the manager,
// the configuration sources and the persisted record format.
package types

import "fmt"

// InterfaceStatus is the administrative state of an ethernet interface.
type InterfaceStatus int

const (
	StatusDisabled InterfaceStatus = iota
	StatusEnabled
)

var interfaceStatusNames = []string{"DISABLED", "ENABLED"}

func (s InterfaceStatus) String() string {
	if s < 0 || int(s) >= len(interfaceStatusNames) {
		return fmt.Sprintf("InterfaceStatus(%d)", int(s))
	}
	return interfaceStatusNames[s]
}

// InterfaceStatusFromOrdinal converts a persisted ordinal to an InterfaceStatus.
func InterfaceStatusFromOrdinal(ordinal int) (InterfaceStatus, error) {
	if ordinal < 0 || ordinal >= len(interfaceStatusNames) {
		return 0, fmt.Errorf("invalid interface status ordinal %d", ordinal)
	}
	return InterfaceStatus(ordinal), nil
}

// IPAssignment describes how an interface obtains its address.
// Ordinals match the configuration service's declaration order.
type IPAssignment int

const (
	AssignmentStatic IPAssignment = iota
	AssignmentDHCP
	AssignmentUnassigned
)

var ipAssignmentNames = []string{"STATIC", "DHCP", "UNASSIGNED"}

func (a IPAssignment) String() string {
	if a < 0 || int(a) >= len(ipAssignmentNames) {
		return fmt.Sprintf("IPAssignment(%d)", int(a))
	}
	return ipAssignmentNames[a]
}

// IPAssignmentFromOrdinal converts a persisted ordinal to an IPAssignment.
func IPAssignmentFromOrdinal(ordinal int) (IPAssignment, error) {
	if ordinal < 0 || ordinal >= len(ipAssignmentNames) {
		return 0, fmt.Errorf("invalid ip assignment ordinal %d", ordinal)
	}
	return IPAssignment(ordinal), nil
}

// ProxySettings describes how an interface's HTTP proxy is configured.
type ProxySettings int

const (
	ProxyNone ProxySettings = iota
	ProxyStatic
	ProxyUnassigned
	ProxyPAC
)

var proxySettingsNames = []string{"NONE", "STATIC", "UNASSIGNED", "PAC"}

func (p ProxySettings) String() string {
	if p < 0 || int(p) >= len(proxySettingsNames) {
		return fmt.Sprintf("ProxySettings(%d)", int(p))
	}
	return proxySettingsNames[p]
}

// ProxySettingsFromOrdinal converts a persisted ordinal to ProxySettings.
func ProxySettingsFromOrdinal(ordinal int) (ProxySettings, error) {
	if ordinal < 0 || ordinal >= len(proxySettingsNames) {
		return 0, fmt.Errorf("invalid proxy settings ordinal %d", ordinal)
	}
	return ProxySettings(ordinal), nil
}

// DetailedState is the fine-grained connection state reported for a link.
type DetailedState string

const (
	StateIdle         DetailedState = "IDLE"
	StateConnecting   DetailedState = "CONNECTING"
	StateObtainingIP  DetailedState = "OBTAINING_IPADDR"
	StateConnected    DetailedState = "CONNECTED"
	StateDisconnected DetailedState = "DISCONNECTED"
	StateFailed       DetailedState = "FAILED"
)
