package viewstate

// Apply returns the state that follows s after ev. It never mutates s.
//
// Idle -> Validating -> (Idle with an error notification) | Submitting ->
// (Idle with a success or error notification). Every completion clears the
// in-flight flag. Validation that passes leaves the visible notification
// alone; a failed validation or a started submission replaces it.
func Apply(s State, ev Event) State {
	next := s.Clone()

	switch e := ev.(type) {
	case FileSelected:
		if e.File == nil {
			next.Selected = nil
		} else {
			sel := *e.File
			next.Selected = &sel
		}
	case MonthSelected:
		next.Month = e.Month
	case ValidationStarted:
		if !next.InFlight {
			next.Phase = PhaseValidating
		}
	case ValidationPassed:
		if !next.InFlight {
			next.Phase = PhaseIdle
		}
	case ValidationFailed:
		if !next.InFlight {
			next.Phase = PhaseIdle
		}
		next.Notification = &Notification{Kind: NotificationError, Message: e.Message, Visible: true}
	case SubmitStarted:
		next.Phase = PhaseSubmitting
		next.InFlight = true
		next.Notification = nil
	case SubmitSucceeded:
		next.Phase = PhaseIdle
		next.InFlight = false
		next.Notification = &Notification{Kind: NotificationSuccess, Message: e.Message, Visible: true}
		if e.ClearSelection {
			next.Selected = nil
		}
	case SubmitFailed:
		next.Phase = PhaseIdle
		next.InFlight = false
		next.Notification = &Notification{Kind: NotificationError, Message: e.Message, Visible: true}
	case Dismissed:
		next.Notification = nil
	}

	return next
}
