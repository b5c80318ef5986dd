// Package notify delivers desktop notifications as a fire-and-forget side
// effect. Delivery failure is never observable to callers; reminders are
// recorded in application state whether or not the OS notification worked.
package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// Notifier delivers one notification. silent suppresses the alert sound
// (teaching-mode quiet hours).
type Notifier interface {
	Notify(title, message string, silent bool)
}

// Desktop sends OS desktop notifications.
type Desktop struct {
	Log zerolog.Logger
}

// Notify implements Notifier. Errors are logged at debug level and dropped.
func (d Desktop) Notify(title, message string, silent bool) {
	var err error
	if silent {
		err = beeep.Notify(title, message, "")
	} else {
		err = beeep.Alert(title, message, "")
	}
	if err != nil {
		d.Log.Debug().Err(err).Str("title", title).Msg("desktop notification failed")
	}
}

// Discard drops every notification. Used in tests and headless commands.
type Discard struct{}

// Notify implements Notifier.
func (Discard) Notify(string, string, bool) {}
