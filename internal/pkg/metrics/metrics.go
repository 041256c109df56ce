package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// availability events
	EventsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethmgr_availability_events_received_total",
			Help: "Availability events received from the configuration source",
		},
		[]string{"interface"},
	)

	EventsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethmgr_availability_events_delivered_total",
			Help: "Availability notifications delivered to local listeners",
		},
		[]string{"interface"},
	)

	EventsQueued = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ethmgr_dispatch_queue_length",
			Help: "Availability events waiting for delivery",
		},
	)

	ListenerPanics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethmgr_listener_panics_total",
			Help: "Listener callbacks that panicked during delivery",
		},
		[]string{"interface"},
	)

	// listener registration
	Listeners = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ethmgr_listeners",
			Help: "Registered availability listeners",
		},
		[]string{"interface"},
	)

	SubscriptionCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethmgr_subscription_calls_total",
			Help: "Subscribe and unsubscribe calls made to the configuration source",
		},
		[]string{"interface", "op", "status"}, // op: subscribe, unsubscribe
	)

	// snapshots and records
	Snapshots = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethmgr_snapshots_total",
			Help: "Interface snapshots composed",
		},
		[]string{"interface", "status"}, // success, failed
	)

	HardwareLookupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethmgr_hardware_lookup_failures_total",
			Help: "Hardware address lookups that failed during snapshot composition",
		},
		[]string{"interface"},
	)

	RemoteErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethmgr_remote_errors_total",
			Help: "Failed calls to the configuration source",
		},
		[]string{"interface", "call"},
	)

	RecordOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ethmgr_record_operations_total",
			Help: "Persisted interface record loads and saves",
		},
		[]string{"op", "status"}, // op: load, save
	)
)

func RecordEventReceived(iface string) {
	EventsReceived.WithLabelValues(iface).Inc()
}

func RecordEventDelivered(iface string) {
	EventsDelivered.WithLabelValues(iface).Inc()
}

func RecordListenerPanic(iface string) {
	ListenerPanics.WithLabelValues(iface).Inc()
}

func SetQueueLength(n int) {
	EventsQueued.Set(float64(n))
}

func SetListeners(iface string, n int) {
	Listeners.WithLabelValues(iface).Set(float64(n))
}

func RecordSubscription(iface, op string, err error) {
	SubscriptionCalls.WithLabelValues(iface, op, status(err)).Inc()
}

func RecordSnapshot(iface string, err error) {
	Snapshots.WithLabelValues(iface, status(err)).Inc()
}

func RecordHardwareLookupFailure(iface string) {
	HardwareLookupFailures.WithLabelValues(iface).Inc()
}

func RecordRemoteError(iface, call string) {
	RemoteErrors.WithLabelValues(iface, call).Inc()
}

func RecordRecordOperation(op string, err error) {
	RecordOperations.WithLabelValues(op, status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return "failed"
	}
	return "success"
}
