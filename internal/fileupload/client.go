package fileupload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/google/uuid"

	"github.com/snyk/cli-extension-file-flows/internal/apierrors"
)

// Client defines the interface for upload endpoint operations.
type Client interface {
	Upload(ctx context.Context, endpointURL string, req UploadRequest) (*UploadResponse, error)
}

// This will force go to complain if the type doesn't satisfy the interface.
var _ Client = (*HTTPClient)(nil)

// HTTPClient implements the Client interface for upload endpoints via HTTP.
type HTTPClient struct {
	httpClient    *http.Client
	fileSizeLimit int64
}

// FileSizeLimit specifies the default maximum allowed file size in bytes.
const FileSizeLimit = 50_000_000

// maxResponseBodySize bounds how much of a response body is read.
const maxResponseBodySize = 1 << 20

const uploadOperation = "upload file"

// NewClient creates a new upload client with the given options.
func NewClient(opts ...Opt) *HTTPClient {
	c := HTTPClient{
		httpClient:    http.DefaultClient,
		fileSizeLimit: FileSizeLimit,
	}

	for _, opt := range opts {
		opt(&c)
	}

	return &c
}

// Upload sends a single file to endpointURL. It will not close the file descriptor.
//
// A response in the 2xx range yields an UploadResponse. Any other status yields
// an *HTTPError carrying the extracted message, and a request that never got a
// response yields a *TransportError.
func (c *HTTPClient) Upload(ctx context.Context, endpointURL string, req UploadRequest) (*UploadResponse, error) {
	if endpointURL == "" {
		return nil, ErrEmptyEndpoint
	}

	if req.File.Name == "" {
		return nil, ErrEmptyFileName
	}

	var (
		body        io.Reader
		contentType string
	)

	if req.JSONBody {
		buff := bytes.NewBuffer(nil)
		if err := json.NewEncoder(buff).Encode(jsonUploadBody{
			FileName: req.File.Name,
			Username: req.Username,
			FileType: req.FileType,
			Month:    req.Month,
		}); err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = buff
		contentType = "application/json"
	} else {
		if err := c.checkFile(req.File); err != nil {
			return nil, err
		}

		// Create pipe for streaming multipart data
		pReader, pWriter := io.Pipe()
		mpartWriter := multipart.NewWriter(pWriter)

		go streamRequestToPipe(pWriter, mpartWriter, req)

		// The reader is closed by the transport once the request is sent,
		// which also unblocks the writer on early failures.
		body = pReader
		contentType = mpartWriter.FormDataContentType()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, body)
	if err != nil {
		if closer, ok := body.(io.Closer); ok {
			closer.Close()
		}
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	httpReq.Header.Set(ContentType, contentType)
	httpReq.Header.Set(RequestIDHeader, uuid.NewString())

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, NewTransportError(uploadOperation, err)
	}
	defer res.Body.Close()

	bts, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBodySize))
	if err != nil {
		return nil, NewTransportError(uploadOperation, fmt.Errorf("failed to read response body: %w", err))
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, NewHTTPError(res.StatusCode, res.Status, uploadOperation, bts, apierrors.MessageFromBody(bts, res.StatusCode))
	}

	resp := UploadResponse{StatusCode: res.StatusCode}
	var rb responseBody
	if len(bytes.TrimSpace(bts)) > 0 && json.Unmarshal(bts, &rb) == nil {
		resp.Message = rb.Message
	}

	return &resp, nil
}

func (c *HTTPClient) checkFile(file UploadFile) error {
	if file.File == nil {
		return ErrNoFileProvided
	}

	fileInfo, err := file.File.Stat()
	if err != nil {
		return NewFileAccessError(file.Name, err)
	}

	if fileInfo.IsDir() {
		return NewDirectoryError(file.Name)
	}

	if fileInfo.Size() > c.fileSizeLimit {
		return NewFileSizeLimitError(file.Name, fileInfo.Size(), c.fileSizeLimit)
	}

	return nil
}

func streamRequestToPipe(pWriter *io.PipeWriter, mpartWriter *multipart.Writer, req UploadRequest) {
	var streamError error
	defer func() {
		pWriter.CloseWithError(streamError)
	}()
	defer mpartWriter.Close()

	part, err := mpartWriter.CreatePart(filePartHeader(req.File))
	if err != nil {
		streamError = NewMultipartError(req.File.Name, err)
		return
	}

	if _, err = io.Copy(part, req.File.File); err != nil {
		streamError = fmt.Errorf("failed to copy file content for %s: %w", req.File.Name, err)
		return
	}

	fields := [][2]string{
		{FieldFileName, req.File.Name},
		{FieldUsername, req.Username},
	}
	if req.FileType != "" {
		fields = append(fields, [2]string{FieldFileType, req.FileType})
	}
	if req.Month != "" {
		fields = append(fields, [2]string{FieldMonth, req.Month})
	}

	for _, field := range fields {
		if err := mpartWriter.WriteField(field[0], field[1]); err != nil {
			streamError = NewMultipartError(req.File.Name, err)
			return
		}
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func filePartHeader(file UploadFile) textproto.MIMEHeader {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		FieldFile, quoteEscaper.Replace(file.Name)))
	h.Set(ContentType, contentType)
	return h
}
