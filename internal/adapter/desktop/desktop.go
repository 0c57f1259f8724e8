package desktop

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/jmylchreest/alertq/internal/host"
	"github.com/jmylchreest/alertq/internal/queue"
)

const (
	notifyDest      = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyInterface = "org.freedesktop.Notifications"
)

// Notifier is a desktop host surface. Close releases the bus
// connection; SetCloseHandler wires the daemon's close signal back to
// the owner so it can advance the queue.
type Notifier interface {
	host.Surface
	SetCloseHandler(fn func())
	SetActionHandler(fn func(index int))
	Close() error
}

// Surface presents alerts as freedesktop desktop notifications.
type Surface struct {
	mu     sync.Mutex
	conn   *dbus.Conn
	obj    dbus.BusObject
	logger *slog.Logger

	appName   string
	currentID uint32
	current   queue.Entry
	backlog   int
	closed    bool

	onClosed func()
	onAction func(index int)

	signals chan *dbus.Signal
	done    chan struct{}
}

// New connects to the session bus and returns a desktop surface.
// When D-Bus is unavailable it returns a no-op surface instead of an
// error, so callers degrade gracefully on headless systems.
func New(appName string, logger *slog.Logger) (Notifier, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := dbus.SessionBus()
	if err != nil {
		logger.Warn("session bus unavailable, desktop alerts disabled", "error", err)
		return &stubSurface{}, nil
	}

	s := &Surface{
		conn:    conn,
		obj:     conn.Object(notifyDest, notifyPath),
		logger:  logger,
		appName: appName,
		signals: make(chan *dbus.Signal, 16),
		done:    make(chan struct{}),
	}

	if err := s.watchSignals(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to subscribe to notification signals: %w", err)
	}

	return s, nil
}

// watchSignals subscribes to NotificationClosed and ActionInvoked.
func (s *Surface) watchSignals() error {
	if err := s.conn.AddMatchSignal(
		dbus.WithMatchObjectPath(notifyPath),
		dbus.WithMatchInterface(notifyInterface),
	); err != nil {
		return err
	}

	s.conn.Signal(s.signals)
	go s.dispatch()
	return nil
}

// dispatch routes daemon signals to the registered handlers.
func (s *Surface) dispatch() {
	for {
		select {
		case sig, ok := <-s.signals:
			if !ok {
				return
			}
			s.handleSignal(sig)
		case <-s.done:
			return
		}
	}
}

func (s *Surface) handleSignal(sig *dbus.Signal) {
	switch sig.Name {
	case notifyInterface + ".NotificationClosed":
		if len(sig.Body) < 2 {
			return
		}
		id, _ := sig.Body[0].(uint32)
		reason, _ := sig.Body[1].(uint32)
		s.handleClosed(id, reason)

	case notifyInterface + ".ActionInvoked":
		if len(sig.Body) < 2 {
			return
		}
		id, _ := sig.Body[0].(uint32)
		key, _ := sig.Body[1].(string)
		s.handleAction(id, key)
	}
}

func (s *Surface) handleClosed(id, reason uint32) {
	s.mu.Lock()
	if id == 0 || id != s.currentID {
		s.mu.Unlock()
		return
	}
	s.currentID = 0
	fn := s.onClosed
	s.mu.Unlock()

	s.logger.Debug("desktop notification closed", "id", id, "reason", reason)
	if fn != nil {
		fn()
	}
}

func (s *Surface) handleAction(id uint32, key string) {
	s.mu.Lock()
	if id != s.currentID {
		s.mu.Unlock()
		return
	}
	fn := s.onAction
	entry := s.current
	s.mu.Unlock()

	index, err := strconv.Atoi(key)
	if err != nil || index < 0 || index >= len(entry.Content.Buttons) {
		return
	}

	s.logger.Debug("desktop action invoked", "id", id, "index", index)
	if action := entry.Content.Buttons[index].Action; action != nil {
		action()
	}
	if fn != nil {
		fn(index)
	}
}

// SetCloseHandler registers the callback invoked when the visible
// desktop notification is closed by the daemon or the user.
func (s *Surface) SetCloseHandler(fn func()) {
	s.mu.Lock()
	s.onClosed = fn
	s.mu.Unlock()
}

// SetActionHandler registers a callback invoked after a button action
// runs, with the button's index.
func (s *Surface) SetActionHandler(fn func(index int)) {
	s.mu.Lock()
	s.onAction = fn
	s.mu.Unlock()
}

// Present implements queue.Presenter.
func (s *Surface) Present(e queue.Entry) {
	s.mu.Lock()
	replaces := s.currentID
	backlog := s.backlog
	s.current = e
	s.mu.Unlock()

	summary := e.Content.Title
	if e.StackCount > 1 {
		summary = fmt.Sprintf("%s (x%d)", summary, e.StackCount)
	}

	body := e.Content.Subtitle
	if backlog > 0 {
		if body != "" {
			body += "\n"
		}
		body += fmt.Sprintf("%d more pending", backlog)
	}

	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(1)),
		"desktop-entry": dbus.MakeVariant(s.appName),
	}

	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout)
	call := s.obj.Call(
		notifyInterface+".Notify",
		0,
		s.appName,
		replaces,
		e.Content.Image,
		summary,
		body,
		actionList(e),
		hints,
		int32(0), // never expire; alerts stay until dismissed
	)
	if call.Err != nil {
		s.logger.Warn("failed to present desktop notification", "error", call.Err)
		return
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		s.logger.Warn("failed to read notification id", "error", err)
		return
	}

	s.mu.Lock()
	s.currentID = id
	s.mu.Unlock()

	s.logger.Debug("presented desktop notification", "id", id, "handle", e.Handle)
}

// DismissCurrent implements queue.Presenter.
func (s *Surface) DismissCurrent() {
	s.mu.Lock()
	id := s.currentID
	s.currentID = 0
	s.mu.Unlock()

	if id == 0 {
		return
	}

	call := s.obj.Call(notifyInterface+".CloseNotification", 0, id)
	if call.Err != nil {
		s.logger.Warn("failed to close desktop notification", "id", id, "error", call.Err)
	}
}

// SetBacklog implements queue.Presenter. The count is folded into the
// body of the next presented notification.
func (s *Surface) SetBacklog(n int) {
	s.mu.Lock()
	s.backlog = n
	s.mu.Unlock()
}

// Alive implements host.Surface.
func (s *Surface) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Close tears the surface down and releases the bus connection.
func (s *Surface) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	s.conn.RemoveSignal(s.signals)
	return s.conn.Close()
}

// actionList converts an entry's buttons into the flat key/label pairs
// the notification spec expects. Keys are button indexes.
func actionList(e queue.Entry) []string {
	if len(e.Content.Buttons) == 0 {
		return []string{}
	}
	actions := make([]string, 0, len(e.Content.Buttons)*2)
	for i, b := range e.Content.Buttons {
		actions = append(actions, strconv.Itoa(i), b.Label)
	}
	return actions
}

// stubSurface is used when D-Bus is unavailable.
type stubSurface struct{}

func (stubSurface) Present(queue.Entry)        {}
func (stubSurface) DismissCurrent()            {}
func (stubSurface) SetBacklog(int)             {}
func (stubSurface) Alive() bool                { return false }
func (stubSurface) SetCloseHandler(func())     {}
func (stubSurface) SetActionHandler(func(int)) {}
func (stubSurface) Close() error               { return nil }
