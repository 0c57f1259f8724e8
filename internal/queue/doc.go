// Package queue serializes alert presentation on a single host surface.
// It owns the one visible slot per host, buffers pending alerts in FIFO
// order, and relays activation and dismissal side effects to a Presenter.
package queue
