// Package download saves objects behind presigned URLs to the local disk.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/snyk/cli-extension-file-flows/internal/apierrors"
)

// Sentinel errors for common conditions.
var (
	ErrEmptyURL        = errors.New("download URL cannot be empty")
	ErrInvalidFileName = errors.New("display file name is not a valid file name")
)

// HTTPError represents a response outside of the success range.
type HTTPError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unsuccessful download: %s: %s", e.Status, e.Message)
}

// Saver stores the object behind a URL under a display file name.
type Saver interface {
	Save(ctx context.Context, url, displayName string) (string, error)
}

// FileSaver writes downloads into a directory.
type FileSaver struct {
	httpClient *http.Client
	dir        string
}

var _ Saver = (*FileSaver)(nil)

// NewFileSaver creates a FileSaver writing into dir. The HTTP client should not
// add authentication headers, since presigned URLs carry their own signature.
func NewFileSaver(httpClient *http.Client, dir string) *FileSaver {
	if dir == "" {
		dir = "."
	}
	return &FileSaver{httpClient: httpClient, dir: dir}
}

// Save downloads url and writes it to the output directory as displayName.
// The file appears atomically; a failed download leaves nothing behind.
func (s *FileSaver) Save(ctx context.Context, url, displayName string) (string, error) {
	if url == "" {
		return "", ErrEmptyURL
	}

	name, err := sanitizeFileName(displayName)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create download request: %w", err)
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making download request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		bts, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16)) //nolint:errcheck // Best effort message extraction.
		return "", &HTTPError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Message:    apierrors.MessageFromBody(bts, res.StatusCode),
		}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.part")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, res.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	dest := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("failed to move download to %s: %w", dest, err)
	}

	return dest, nil
}

func sanitizeFileName(displayName string) (string, error) {
	name := filepath.Base(strings.ReplaceAll(strings.TrimSpace(displayName), "\\", "/"))
	if name == "." || name == "/" || name == "" || name == ".." {
		return "", ErrInvalidFileName
	}
	return name, nil
}
