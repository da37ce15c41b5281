package fileupload

import "net/http"

// Opt is a function that configures an HTTPClient instance.
type Opt func(*HTTPClient)

// WithHTTPClient sets a custom HTTP client for the file upload client.
func WithHTTPClient(httpClient *http.Client) Opt {
	return func(c *HTTPClient) {
		c.httpClient = httpClient
	}
}

// WithFileSizeLimit overrides the maximum accepted file size in bytes.
func WithFileSizeLimit(limit int64) Opt {
	return func(c *HTTPClient) {
		c.fileSizeLimit = limit
	}
}
