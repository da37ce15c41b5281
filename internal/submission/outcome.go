package submission

import (
	"errors"

	"github.com/snyk/cli-extension-file-flows/internal/viewstate"
)

// ErrInFlight is reported when an operation is already running for the same control.
var ErrInFlight = errors.New("operation already in flight")

// Outcome is the result of one user action on a control.
type Outcome struct {
	// Notification is the notification raised by the action.
	Notification viewstate.Notification
	// Sent reports whether a network call was made.
	Sent bool
	// SavedPath is the local path of a downloaded file.
	SavedPath string
	// Err is the underlying failure, nil on success.
	Err error
}

// Succeeded reports whether the action ended with a success notification.
func (o Outcome) Succeeded() bool {
	return o.Notification.Kind == viewstate.NotificationSuccess
}
