package infra

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

const (
	notifyAppName = "Omynix Waybar Manager"
	notifyIcon    = "dialog-warning"
	notifyTimeout = int32(8000) // milliseconds
)

// DBusNotifier sends desktop notifications over the session bus using the
// org.freedesktop.Notifications interface.
type DBusNotifier struct{}

// NewNotifier creates a dbus-backed notifier.
func NewNotifier() domain.Notifier {
	return &DBusNotifier{}
}

// Notify sends a notification with the given summary and body.
func (n *DBusNotifier) Notify(summary, body string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		notifyAppName,            // app_name
		uint32(0),                // replaces_id
		notifyIcon,               // app_icon
		summary,                  // summary
		body,                     // body
		[]string{},               // actions
		map[string]dbus.Variant{}, // hints
		notifyTimeout,            // expire_timeout
	)
	if call.Err != nil {
		return fmt.Errorf("error sending notification: %w", call.Err)
	}

	return nil
}

// Ensure DBusNotifier implements domain.Notifier.
var _ domain.Notifier = (*DBusNotifier)(nil)
