// Package viewstate models the state of one upload control as a plain,
// serializable record. Transitions are pure functions from a state and an
// event to the next state, so the submission flow can be exercised without
// any rendering environment.
package viewstate

// Phase is the coarse lifecycle position of an upload control.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseSubmitting Phase = "submitting"
)

// NotificationKind distinguishes success from error notifications.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is the single user-visible message of a control.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	Visible bool             `json:"visible"`
}

// SelectedFile holds the metadata of the file picked by the user.
type SelectedFile struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType,omitempty"`
	Size        int64  `json:"size"`
}

// State is the view-state of one upload control.
type State struct {
	Phase        Phase         `json:"phase"`
	Category     string        `json:"category"`
	Month        string        `json:"month,omitempty"`
	Selected     *SelectedFile `json:"selected,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
	InFlight     bool          `json:"inFlight"`
}

// New returns the idle state for category.
func New(category string) State {
	return State{Phase: PhaseIdle, Category: category}
}

// ControlsEnabled reports whether the submit control accepts input.
func (s State) ControlsEnabled() bool {
	return !s.InFlight
}

// VisibleNotification returns the notification when it is shown.
func (s State) VisibleNotification() (Notification, bool) {
	if s.Notification == nil || !s.Notification.Visible {
		return Notification{}, false
	}
	return *s.Notification, true
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	next := s
	if s.Selected != nil {
		sel := *s.Selected
		next.Selected = &sel
	}
	if s.Notification != nil {
		n := *s.Notification
		next.Notification = &n
	}
	return next
}
