package viewstate

// Event is an input to Apply.
type Event interface {
	isEvent()
}

// FileSelected replaces the selected file. A nil File clears the selection.
type FileSelected struct {
	File *SelectedFile
}

// MonthSelected sets the reporting month.
type MonthSelected struct {
	Month string
}

// ValidationStarted begins client-side validation of the current selection.
// It does not touch the notification.
type ValidationStarted struct{}

// ValidationFailed rejects the selection with an error message.
type ValidationFailed struct {
	Message string
}

// ValidationPassed returns a validated selection to idle without side effects.
type ValidationPassed struct{}

// SubmitStarted marks the control as in flight.
type SubmitStarted struct{}

// SubmitSucceeded completes an in-flight operation successfully.
type SubmitSucceeded struct {
	Message string
	// ClearSelection drops the selected file, as done after an upload.
	ClearSelection bool
}

// SubmitFailed completes an in-flight operation with an error.
type SubmitFailed struct {
	Message string
}

// Dismissed hides the current notification.
type Dismissed struct{}

func (FileSelected) isEvent()      {}
func (MonthSelected) isEvent()     {}
func (ValidationStarted) isEvent() {}
func (ValidationFailed) isEvent()  {}
func (ValidationPassed) isEvent()  {}
func (SubmitStarted) isEvent()     {}
func (SubmitSucceeded) isEvent()   {}
func (SubmitFailed) isEvent()      {}
func (Dismissed) isEvent()         {}
