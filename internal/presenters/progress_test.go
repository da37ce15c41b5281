package presenters_test

import (
	"testing"

	"github.com/snyk/go-application-framework/pkg/ui"
	"github.com/stretchr/testify/assert"

	"github.com/snyk/cli-extension-file-flows/internal/presenters"
)

type fakeBar struct {
	titles   []string
	progress []float64
	clears   int
}

func (b *fakeBar) SetTitle(title string) { b.titles = append(b.titles, title) }

func (b *fakeBar) UpdateProgress(progress float64) error {
	b.progress = append(b.progress, progress)
	return nil
}

func (b *fakeBar) Clear() error {
	b.clears++
	return nil
}

func Test_Progress(t *testing.T) {
	bar := &fakeBar{}
	p := presenters.NewProgress(bar)

	p.Begin("Uploading report.csv...")
	p.Begin("Downloading sample...")
	assert.Equal(t, 2, p.Active())
	assert.Equal(t, []float64{ui.InfiniteProgress}, bar.progress)

	p.End()
	assert.Equal(t, 0, bar.clears, "indicator stays while an operation is in flight")

	p.End()
	assert.Equal(t, 1, bar.clears)
	assert.Equal(t, 0, p.Active())

	p.End()
	assert.Equal(t, 1, bar.clears, "unbalanced End is ignored")
	assert.Equal(t, []string{"Uploading report.csv...", "Downloading sample..."}, bar.titles)
}

func Test_Progress_NilBar(t *testing.T) {
	p := presenters.NewProgress(nil)

	p.Begin("x")
	p.End()

	assert.Equal(t, 0, p.Active())
}
