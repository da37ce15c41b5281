package presign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/snyk/cli-extension-file-flows/internal/apierrors"
)

// Issuer hands out short-lived URLs for downloading stored objects.
// fileName is the name the object should be saved under, where the source
// supports it.
type Issuer interface {
	IssueDownloadURL(ctx context.Context, objectKey, fileName string) (string, error)
}

// Config contains configuration for the presign endpoint client.
type Config struct {
	EndpointURL string
	BucketName  string
}

// HTTPIssuer asks the backend presign endpoint for download URLs.
type HTTPIssuer struct {
	httpClient *http.Client
	cfg        Config
}

var _ Issuer = (*HTTPIssuer)(nil)

const (
	presignOperation    = "presign download"
	maxResponseBodySize = 1 << 20
)

// NewHTTPIssuer creates a new HTTPIssuer with the provided HTTP client and configuration.
func NewHTTPIssuer(httpClient *http.Client, cfg Config) *HTTPIssuer {
	return &HTTPIssuer{httpClient, cfg}
}

// IssueDownloadURL requests a presigned download URL for objectKey. The
// endpoint names the attachment itself, so fileName is not sent.
func (c *HTTPIssuer) IssueDownloadURL(ctx context.Context, objectKey, _ string) (string, error) {
	if objectKey == "" {
		return "", ErrEmptyObjectKey
	}
	if c.cfg.EndpointURL == "" {
		return "", ErrEmptyEndpoint
	}

	body := RequestBody{
		BucketName: c.cfg.BucketName,
		FileKey:    objectKey,
		Action:     ActionDownload,
		IsSample:   true,
	}
	buff := bytes.NewBuffer(nil)
	if err := json.NewEncoder(buff).Encode(body); err != nil {
		return "", fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.EndpointURL, buff)
	if err != nil {
		return "", fmt.Errorf("failed to create presign request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making presign request: %w", err)
	}
	defer res.Body.Close()

	bts, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read presign response body: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return "", NewHTTPError(res.StatusCode, res.Status, presignOperation, bts, apierrors.MessageFromBody(bts, res.StatusCode))
	}

	var respBody ResponseBody
	if err := json.Unmarshal(bts, &respBody); err != nil {
		return "", fmt.Errorf("failed to decode presign response body: %w", err)
	}

	if respBody.PresignedURL == "" {
		return "", ErrMissingPresignedURL
	}

	return respBody.PresignedURL, nil
}
