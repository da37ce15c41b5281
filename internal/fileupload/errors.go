package fileupload

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	ErrNoFileProvided = errors.New("no file provided for upload")
	ErrEmptyEndpoint  = errors.New("upload endpoint cannot be empty")
	ErrEmptyFileName  = errors.New("file name cannot be empty")
)

// FileSizeLimitError indicates a file exceeds the maximum allowed size.
type FileSizeLimitError struct {
	FileName string
	FileSize int64
	Limit    int64
}

func (e *FileSizeLimitError) Error() string {
	return fmt.Sprintf("file %s size %d exceeds limit of %d bytes", e.FileName, e.FileSize, e.Limit)
}

// FileAccessError indicates a file cannot be accessed or read.
type FileAccessError struct {
	FileName string
	Err      error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("file %s cannot be accessed: %v", e.FileName, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// DirectoryError indicates a path points to a directory instead of a file.
type DirectoryError struct {
	Path string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("path %s is a directory, not a file", e.Path)
}

// HTTPError represents a response outside of the success range.
type HTTPError struct {
	StatusCode int
	Status     string
	Operation  string
	Body       []byte
	// Message is the best-effort error message extracted from Body, falling
	// back to the status text.
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unsuccessful request to %s: %s: %s", e.Operation, e.Status, e.Message)
}

// TransportError indicates a request that never produced a response.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error making %s request: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MultipartError indicates an error creating multipart form data.
type MultipartError struct {
	FileName string
	Err      error
}

func (e *MultipartError) Error() string {
	return fmt.Sprintf("failed to create multipart form for %s: %v", e.FileName, e.Err)
}

func (e *MultipartError) Unwrap() error {
	return e.Err
}

// NewFileSizeLimitError creates a new FileSizeLimitError with the given parameters.
func NewFileSizeLimitError(fileName string, fileSize, limit int64) *FileSizeLimitError {
	return &FileSizeLimitError{
		FileName: fileName,
		FileSize: fileSize,
		Limit:    limit,
	}
}

// NewFileAccessError creates a new FileAccessError with the given parameters.
func NewFileAccessError(fileName string, err error) *FileAccessError {
	return &FileAccessError{
		FileName: fileName,
		Err:      err,
	}
}

// NewDirectoryError creates a new DirectoryError with the given path.
func NewDirectoryError(path string) *DirectoryError {
	return &DirectoryError{
		Path: path,
	}
}

// NewHTTPError creates a new HTTPError with the given parameters.
func NewHTTPError(statusCode int, status, operation string, body []byte, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Status:     status,
		Operation:  operation,
		Body:       body,
		Message:    message,
	}
}

// NewTransportError creates a new TransportError with the given parameters.
func NewTransportError(operation string, err error) *TransportError {
	return &TransportError{
		Operation: operation,
		Err:       err,
	}
}

// NewMultipartError creates a new MultipartError with the given parameters.
func NewMultipartError(fileName string, err error) *MultipartError {
	return &MultipartError{
		FileName: fileName,
		Err:      err,
	}
}
