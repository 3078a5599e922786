// Package interrupt runs a function while guaranteeing cleanup work still
// happens when the process receives a termination signal.
package interrupt

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// terminationSignals are the signals that trigger the cleanup path.
var terminationSignals = []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}

// Handler guarantees that its notify functions run once, whether the guarded
// function returns normally or a termination signal arrives first. When a
// signal arrives, final decides how the process exits.
type Handler struct {
	notify []func()
	final  func(os.Signal)
	once   sync.Once
}

// New creates a Handler. The notify functions run on completion or signal;
// final runs only on signal, after the notify functions, and is expected to
// exit the process. A nil final exits with code 1.
func New(final func(os.Signal), notify ...func()) *Handler {
	return &Handler{
		final:  final,
		notify: notify,
	}
}

// Close executes the notify functions if they have not run yet.
func (h *Handler) Close() {
	h.once.Do(func() {
		for _, fn := range h.notify {
			fn()
		}
	})
}

// Signal executes the notify functions followed by the final handler.
func (h *Handler) Signal(s os.Signal) {
	h.once.Do(func() {
		for _, fn := range h.notify {
			fn()
		}
		if h.final == nil {
			os.Exit(1)
		}
		h.final(s)
	})
}

// Run invokes fn, running the notify functions afterwards. If a termination
// signal arrives while fn runs, the notify functions and the final handler
// run instead.
func (h *Handler) Run(fn func() error) error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, terminationSignals...)
	defer func() {
		signal.Stop(ch)
		close(ch)
	}()
	go func() {
		sig, ok := <-ch
		if !ok {
			return
		}
		h.Signal(sig)
	}()
	defer h.Close()
	return fn()
}
