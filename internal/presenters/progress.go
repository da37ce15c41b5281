package presenters

import (
	"sync"

	"github.com/snyk/go-application-framework/pkg/ui"
)

// Bar is the part of a progress bar the Progress indicator drives.
type Bar interface {
	SetTitle(title string)
	UpdateProgress(progress float64) error
	Clear() error
}

// Progress is a non-dismissible busy indicator shared by all in-flight
// operations. It is shown while at least one operation runs and cleared when
// the last one ends.
type Progress struct {
	mu     sync.Mutex
	bar    Bar
	active int
}

// NewProgress creates a Progress indicator on top of bar.
func NewProgress(bar Bar) *Progress {
	return &Progress{bar: bar}
}

// Begin registers an in-flight operation.
func (p *Progress) Begin(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.active++
	if p.bar == nil {
		return
	}
	p.bar.SetTitle(title)
	if p.active == 1 {
		//nolint:errcheck // We don't need to fail the command due to UI errors.
		p.bar.UpdateProgress(ui.InfiniteProgress)
	}
}

// End unregisters an in-flight operation.
func (p *Progress) End() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active == 0 {
		return
	}
	p.active--
	if p.active == 0 && p.bar != nil {
		//nolint:errcheck // We don't need to fail the command due to UI errors.
		p.bar.Clear()
	}
}

// Active returns the number of in-flight operations.
func (p *Progress) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}
