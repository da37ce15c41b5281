package identity

import "context"

// FakeProvider returns fixed attributes for tests.
type FakeProvider struct {
	attrs Attributes
	err   error
	calls int
}

var _ Provider = (*FakeProvider)(nil)

// NewFakeProvider creates a fake returning attrs.
func NewFakeProvider(attrs Attributes) *FakeProvider {
	return &FakeProvider{attrs: attrs}
}

// WithError configures the fake to return an error.
func (f *FakeProvider) WithError(err error) *FakeProvider {
	f.err = err
	return f
}

func (f *FakeProvider) Lookup(context.Context) (Attributes, error) {
	f.calls++
	if f.err != nil {
		return Attributes{}, f.err
	}
	return f.attrs, nil
}

// Calls returns how often Lookup was called.
func (f *FakeProvider) Calls() int {
	return f.calls
}
