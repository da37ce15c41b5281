package fileupload

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// RecordedUpload is an upload captured by the FakeClient.
type RecordedUpload struct {
	EndpointURL string
	Request     UploadRequest
	Content     []byte
}

// FakeClient is an in-memory Client for tests.
type FakeClient struct {
	mu       sync.Mutex
	uploads  []RecordedUpload
	response *UploadResponse
	err      error
	// block, when set, holds every Upload call until it is closed or the context ends.
	block chan struct{}
}

var _ Client = (*FakeClient)(nil)

// NewFakeClient creates a new fake client answering with an empty 200 response.
func NewFakeClient() *FakeClient {
	return &FakeClient{
		response: &UploadResponse{StatusCode: 200},
	}
}

// WithResponse configures the response returned by Upload.
func (f *FakeClient) WithResponse(resp *UploadResponse) *FakeClient {
	f.response = resp
	return f
}

// WithError configures the fake to return an error.
func (f *FakeClient) WithError(err error) *FakeClient {
	f.err = err
	return f
}

// WithBlock makes Upload wait until release is closed.
func (f *FakeClient) WithBlock(release chan struct{}) *FakeClient {
	f.block = release
	return f
}

func (f *FakeClient) Upload(ctx context.Context, endpointURL string, req UploadRequest) (*UploadResponse, error) {
	rec := RecordedUpload{EndpointURL: endpointURL, Request: req}
	if req.File.File != nil && !req.JSONBody {
		content, err := io.ReadAll(req.File.File)
		if err != nil {
			return nil, NewFileAccessError(req.File.Name, err)
		}
		rec.Content = content
	}

	f.mu.Lock()
	f.uploads = append(f.uploads, rec)
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, NewTransportError(uploadOperation, fmt.Errorf("fake upload: %w", ctx.Err()))
		}
	}

	if f.err != nil {
		return nil, f.err
	}

	resp := *f.response
	return &resp, nil
}

// Uploads returns every recorded upload in call order.
func (f *FakeClient) Uploads() []RecordedUpload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordedUpload(nil), f.uploads...)
}
