package local

import (
	"errors"
	"sync"

	"golang-ethmgr/internal/adapter/infrastructure/network"
	"golang-ethmgr/internal/port"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

const updateBuffer = 16

// watcher follows kernel link updates for one interface while it has
// listeners.
type watcher struct {
	done    chan struct{}
	stopped sync.WaitGroup
}

func (l *link) addListener(listener port.AvailabilityListener) error {
	if listener == nil {
		return errors.New("listener is nil")
	}

	l.source.mu.Lock()
	closed := l.source.closed
	l.source.mu.Unlock()
	if closed {
		return errors.New("configuration source is closed")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.watch == nil {
		w, err := l.startWatching()
		if err != nil {
			return err
		}
		l.watch = w
	}
	l.listeners = append(l.listeners, listener)
	return nil
}

func (l *link) removeListener(listener port.AvailabilityListener) error {
	l.mu.Lock()
	for i, existing := range l.listeners {
		if existing == listener {
			l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
			break
		}
	}
	var w *watcher
	if len(l.listeners) == 0 {
		w, l.watch = l.watch, nil
	}
	l.mu.Unlock()

	if w != nil {
		w.stop()
		l.logger.Debug("Stopped link watcher")
	}
	return nil
}

func (l *link) stopWatching() {
	l.mu.Lock()
	w := l.watch
	l.watch = nil
	l.listeners = nil
	l.mu.Unlock()
	if w != nil {
		w.stop()
	}
}

func (l *link) startWatching() (*watcher, error) {
	initial, err := l.isAvailable()
	if err != nil {
		return nil, err
	}

	updates := make(chan netlink.LinkUpdate, updateBuffer)
	w := &watcher{done: make(chan struct{})}
	if err := l.source.deps.Network.SubscribeLinkUpdates(updates, w.done); err != nil {
		close(w.done)
		return nil, err
	}

	w.stopped.Add(1)
	go func() {
		defer w.stopped.Done()
		l.follow(updates, w.done, initial)
	}()
	l.logger.WithField("available", initial).Debug("Started link watcher")
	return w, nil
}

func (w *watcher) stop() {
	close(w.done)
	w.stopped.Wait()
}

// follow notifies listeners of availability transitions until done is
// closed or the update stream ends.
func (l *link) follow(updates <-chan netlink.LinkUpdate, done <-chan struct{}, available bool) {
	for {
		select {
		case <-done:
			go drain(updates)
			return
		case update, ok := <-updates:
			if !ok {
				l.logger.Warn("Link update stream closed")
				return
			}
			if update.Link == nil || update.Link.Attrs().Name != l.name {
				continue
			}
			now := update.Header.Type != unix.RTM_DELLINK && network.IsLinkAvailable(update.Link)
			if now == available {
				continue
			}
			available = now
			l.logger.WithField("available", available).Info("Link availability changed")
			l.notify(available)
		}
	}
}

func (l *link) notify(available bool) {
	l.mu.Lock()
	listeners := append([]port.AvailabilityListener(nil), l.listeners...)
	l.mu.Unlock()
	for _, listener := range listeners {
		listener.OnAvailabilityChanged(available)
	}
}

// drain discards updates until the subscription closes the stream, so the
// netlink receiver never blocks on a full buffer after the watcher stops.
func drain(updates <-chan netlink.LinkUpdate) {
	for range updates {
	}
}
