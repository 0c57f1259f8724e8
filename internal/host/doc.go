// Package host binds presentation queues to display surfaces.
// It maintains the one-to-one mapping from host identifier to queue,
// guards side effects behind a surface liveness check, and tears the
// association down when a surface is destroyed.
package host
