package ethernet

import (
	"golang-ethmgr/internal/pkg/logging"
	"golang-ethmgr/internal/pkg/metrics"
	"golang-ethmgr/internal/port"
	"golang-ethmgr/internal/types"

	"github.com/sirupsen/logrus"
)

// sourceCalls binds one interface's method set of a ConfigurationSource.
type sourceCalls struct {
	getConfiguration func() (*types.IPConfiguration, error)
	setConfiguration func(*types.IPConfiguration) error
	isAvailable      func() (bool, error)
	addListener      func(port.AvailabilityListener) error
	removeListener   func(port.AvailabilityListener) error
	linkProperties   func() (*types.LinkProperties, error)
	networkInfo      func() (*types.NetworkInfo, error)
	connect          func() error
	teardown         func() error
}

func primaryCalls(s port.ConfigurationSource) sourceCalls {
	return sourceCalls{
		getConfiguration: s.GetConfiguration,
		setConfiguration: s.SetConfiguration,
		isAvailable:      s.IsAvailable,
		addListener:      s.AddListener,
		removeListener:   s.RemoveListener,
		linkProperties:   s.GetEthernetLinkProperties,
		networkInfo:      s.GetEthernetNetworkInfo,
		connect:          s.Reconnect,
		teardown:         s.Teardown,
	}
}

func pluggedInCalls(s port.ConfigurationSource) sourceCalls {
	return sourceCalls{
		getConfiguration: s.GetPluggedInEthernetConfiguration,
		setConfiguration: s.SetPluggedInEthernetConfiguration,
		isAvailable:      s.IsPluggedInEthAvailable,
		addListener:      s.AddPluggedInEthListener,
		removeListener:   s.RemovePluggedInEthListener,
		linkProperties:   s.GetPluggedInLinkProperties,
		networkInfo:      s.GetPluggedInNetworkInfo,
		connect:          s.ConnectPluggedInEth,
		teardown:         s.TeardownPluggedInEth,
	}
}

// relay is the single listener registered with the configuration source
// for one interface. It only queues; delivery happens on the dispatcher.
type relay struct {
	iface      Interface
	dispatcher *dispatcher
}

func (r *relay) OnAvailabilityChanged(available bool) {
	metrics.RecordEventReceived(r.iface.String())
	logging.WithComponent("ethernet").
		WithField("port", r.iface.String()).
		WithField("available", available).
		Debug("Availability event received")
	if err := r.dispatcher.enqueue(availabilityEvent{iface: r.iface, available: available}); err != nil {
		logging.WithComponent("ethernet").WithField("port", r.iface.String()).WithError(err).Warn("Dropping availability event")
	}
}

// channel is everything the manager keeps for one interface.
type channel struct {
	iface    Interface
	calls    sourceCalls
	registry registry
	relay    *relay
	// strictSubscribe surfaces subscription errors to the caller and rolls
	// back the registry change; otherwise they are logged and ignored.
	strictSubscribe bool
}

func (c *channel) logger() *logrus.Entry {
	return logging.WithComponent("ethernet").WithField("port", c.iface.String())
}

func (c *channel) remoteError(call string, err error) error {
	metrics.RecordRemoteError(c.iface.String(), call)
	return &RemoteError{Interface: c.iface, Call: call, Err: err}
}

func (c *channel) addListener(l port.AvailabilityListener) error {
	if isNilListener(l) {
		return ErrNilListener
	}
	c.registry.mu.Lock()
	defer c.registry.mu.Unlock()

	if !c.registry.add(l) {
		metrics.SetListeners(c.iface.String(), len(c.registry.listeners))
		return nil
	}

	err := c.calls.addListener(c.relay)
	metrics.RecordSubscription(c.iface.String(), "subscribe", err)
	if err != nil {
		if c.strictSubscribe {
			c.registry.remove(l)
			return c.remoteError("addListener", err)
		}
		c.logger().WithError(err).Error("Failed to subscribe to availability events")
	} else {
		c.logger().Debug("Subscribed to availability events")
	}
	metrics.SetListeners(c.iface.String(), len(c.registry.listeners))
	return nil
}

func (c *channel) removeListener(l port.AvailabilityListener) error {
	if isNilListener(l) {
		return ErrNilListener
	}
	c.registry.mu.Lock()
	defer c.registry.mu.Unlock()

	removed, empty := c.registry.remove(l)
	metrics.SetListeners(c.iface.String(), len(c.registry.listeners))
	if !removed || !empty {
		return nil
	}

	err := c.calls.removeListener(c.relay)
	metrics.RecordSubscription(c.iface.String(), "unsubscribe", err)
	if err != nil {
		if c.strictSubscribe {
			return c.remoteError("removeListener", err)
		}
		c.logger().WithError(err).Error("Failed to unsubscribe from availability events")
		return nil
	}
	c.logger().Debug("Unsubscribed from availability events")
	return nil
}

// deliver notifies the listeners registered when delivery starts.
func (c *channel) deliver(available bool) {
	log := c.logger().WithField("available", available)
	for _, l := range c.registry.snapshot() {
		log.Debug("Notifying listener")
		c.notify(l, available)
		metrics.RecordEventDelivered(c.iface.String())
	}
}

func (c *channel) notify(l port.AvailabilityListener, available bool) {
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordListenerPanic(c.iface.String())
			c.logger().WithField("panic", r).Error("Availability listener panicked")
		}
	}()
	l.OnAvailabilityChanged(available)
}

func (c *channel) getConfiguration() (*types.IPConfiguration, error) {
	cfg, err := c.calls.getConfiguration()
	if err != nil {
		return nil, c.remoteError("getConfiguration", err)
	}
	return cfg, nil
}

func (c *channel) setConfiguration(cfg *types.IPConfiguration) error {
	if err := c.calls.setConfiguration(cfg); err != nil {
		return c.remoteError("setConfiguration", err)
	}
	return nil
}

func (c *channel) isAvailable() (bool, error) {
	available, err := c.calls.isAvailable()
	if err != nil {
		return false, c.remoteError("isAvailable", err)
	}
	return available, nil
}

func (c *channel) linkProperties() *types.LinkProperties {
	lp, err := c.calls.linkProperties()
	if err != nil {
		metrics.RecordRemoteError(c.iface.String(), "getLinkProperties")
		c.logger().WithError(err).Error("Failed to communicate with configuration source")
		return nil
	}
	return lp
}

func (c *channel) networkInfo() *types.NetworkInfo {
	ni, err := c.calls.networkInfo()
	if err != nil {
		metrics.RecordRemoteError(c.iface.String(), "getNetworkInfo")
		c.logger().WithError(err).Error("Failed to communicate with configuration source")
		return nil
	}
	return ni
}

func (c *channel) connect() {
	if err := c.calls.connect(); err != nil {
		metrics.RecordRemoteError(c.iface.String(), "connect")
		c.logger().WithError(err).Error("Failed to communicate with configuration source")
	}
}

func (c *channel) teardown() {
	if err := c.calls.teardown(); err != nil {
		metrics.RecordRemoteError(c.iface.String(), "teardown")
		c.logger().WithError(err).Error("Failed to communicate with configuration source")
	}
}
