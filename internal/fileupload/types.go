package fileupload

import "io/fs"

// UploadFile represents a file to be uploaded, containing both its name and file handle.
type UploadFile struct {
	Name        string // The original file name sent to the endpoint
	ContentType string // Optional MIME type of the file part
	File        fs.File
}

// UploadRequest describes a single submission to an upload endpoint.
type UploadRequest struct {
	File     UploadFile
	Username string
	// FileType is the category key. It is omitted when empty.
	FileType string
	// Month is the reporting month. It is omitted when empty.
	Month string
	// JSONBody sends only the file name and metadata as JSON instead of a multipart body.
	JSONBody bool
}

// UploadResponse contains the outcome of a successful upload.
type UploadResponse struct {
	StatusCode int
	// Message is the server provided message, empty when the body carried none.
	Message string
}

// jsonUploadBody is the request body used by endpoints that only take the file name.
type jsonUploadBody struct {
	FileName string `json:"fileName"`
	Username string `json:"username"`
	FileType string `json:"fileType,omitempty"`
	Month    string `json:"month,omitempty"`
}

// responseBody is the shape shared by success and error responses of the upload endpoints.
type responseBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Multipart form field names expected by the upload endpoints.
const (
	FieldFile     = "file"
	FieldFileName = "fileName"
	FieldUsername = "username"
	FieldFileType = "fileType"
	FieldMonth    = "month"
)

const (
	// ContentType is the HTTP header name for content type.
	ContentType = "Content-Type"
	// RequestIDHeader is the HTTP header carrying the per request correlation id.
	RequestIDHeader = "X-Request-ID"
)
