// Package desktop implements an alert host surface backed by the
// org.freedesktop.Notifications D-Bus service. Alerts present as
// desktop notifications, buttons map to notification actions, and the
// daemon's NotificationClosed signal advances the queue.
package desktop
