package presign

import (
	"context"
	"sync"
)

// FakeIssuer is an in-memory Issuer for tests.
type FakeIssuer struct {
	mu    sync.Mutex
	urls  map[string]string
	keys  []string
	names []string
	err   error
}

var _ Issuer = (*FakeIssuer)(nil)

// NewFakeIssuer creates a fake issuer answering with the given key to URL mapping.
func NewFakeIssuer(urls map[string]string) *FakeIssuer {
	return &FakeIssuer{urls: urls}
}

// WithError configures the fake to return an error.
func (f *FakeIssuer) WithError(err error) *FakeIssuer {
	f.err = err
	return f
}

func (f *FakeIssuer) IssueDownloadURL(_ context.Context, objectKey, fileName string) (string, error) {
	f.mu.Lock()
	f.keys = append(f.keys, objectKey)
	f.names = append(f.names, fileName)
	f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}
	if objectKey == "" {
		return "", ErrEmptyObjectKey
	}

	u, ok := f.urls[objectKey]
	if !ok {
		return "", ErrMissingPresignedURL
	}
	return u, nil
}

// RequestedKeys returns the object keys requested so far.
func (f *FakeIssuer) RequestedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.keys...)
}

// RequestedFileNames returns the file names passed along with each request.
func (f *FakeIssuer) RequestedFileNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.names...)
}
