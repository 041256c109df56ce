package ethernet

import (
	"reflect"
	"slices"
	"sync"

	"golang-ethmgr/internal/port"
)

// registry is an insertion-ordered list of listeners for one interface.
// The same listener may appear more than once and is then notified once
// per registration.
type registry struct {
	mu        sync.Mutex
	listeners []port.AvailabilityListener
}

// add appends l and reports whether the registry was empty before.
// Callers hold mu.
func (r *registry) add(l port.AvailabilityListener) (first bool) {
	r.listeners = append(r.listeners, l)
	return len(r.listeners) == 1
}

// remove drops the first occurrence of l. It reports whether l was found
// and whether the registry is empty afterwards. Callers hold mu.
func (r *registry) remove(l port.AvailabilityListener) (removed, empty bool) {
	for i, existing := range r.listeners {
		if sameListener(existing, l) {
			r.listeners = slices.Delete(r.listeners, i, i+1)
			removed = true
			break
		}
	}
	return removed, len(r.listeners) == 0
}

// snapshot returns the listeners registered right now.
func (r *registry) snapshot() []port.AvailabilityListener {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.listeners)
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listeners)
}

// sameListener compares listeners without panicking on uncomparable
// dynamic types.
func sameListener(a, b port.AvailabilityListener) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// isNilListener catches both nil interfaces and typed nil pointers.
func isNilListener(l port.AvailabilityListener) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// ListenerFunc adapts a function to an AvailabilityListener. Each call
// returns a distinct listener that can later be removed.
func ListenerFunc(fn func(available bool)) port.AvailabilityListener {
	return &funcListener{fn: fn}
}

type funcListener struct {
	fn func(bool)
}

func (f *funcListener) OnAvailabilityChanged(available bool) { f.fn(available) }
