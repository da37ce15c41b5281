package presenters

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/snyk/cli-extension-file-flows/internal/viewstate"
)

// RenderNotification renders a notification as a boxed panel.
func RenderNotification(n viewstate.Notification) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		renderLabel(n.Kind),
		"",
		lipgloss.NewStyle().Width(notificationWidth-2).Render(n.Message),
	)
	return boxStyle.Render(body)
}

// RenderSummary renders the closing line of a command that ran total
// operations of which failed did not succeed.
func RenderSummary(action string, total, failed int) string {
	succeeded := total - failed
	counts := fmt.Sprintf("%d of %d", succeeded, total)
	if failed == 0 {
		counts = renderGreen(counts)
	} else {
		counts = renderRed(counts)
	}
	return fmt.Sprintf("%s %s %s.", renderBold("Summary:"), counts, action)
}

// OutputFunc writes rendered text to the user.
type OutputFunc func(output string) error

// Board shows at most one notification at a time. Showing a notification
// replaces the current one. Every notification belongs to an owner, the
// control that raised it, and only that owner can dismiss it.
type Board struct {
	mu      sync.Mutex
	output  OutputFunc
	owner   string
	current *viewstate.Notification
}

// NewBoard creates a Board writing through output.
func NewBoard(output OutputFunc) *Board {
	return &Board{output: output}
}

// Show replaces the visible notification with n raised by owner.
func (b *Board) Show(owner string, n viewstate.Notification) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	n.Visible = true
	b.owner = owner
	b.current = &n

	if b.output == nil {
		return nil
	}
	return b.output(RenderNotification(n))
}

// Dismiss hides the visible notification if it was raised by owner.
func (b *Board) Dismiss(owner string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil || b.owner != owner {
		return
	}
	b.owner = ""
	b.current = nil
}

// Current returns the visible notification.
func (b *Board) Current() (viewstate.Notification, bool) {
	n, _, ok := b.CurrentWithOwner()
	return n, ok
}

// CurrentWithOwner returns the visible notification and its owner.
func (b *Board) CurrentWithOwner() (viewstate.Notification, string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return viewstate.Notification{}, "", false
	}
	return *b.current, b.owner, true
}
