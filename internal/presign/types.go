package presign

// ActionDownload is the action marker sent to the presign endpoint.
const ActionDownload = "download"

// RequestBody is the JSON body sent to the presign endpoint.
type RequestBody struct {
	BucketName string `json:"bucket_name"` //nolint:tagliatelle // API expects snake_case
	FileKey    string `json:"file_key"`    //nolint:tagliatelle // API expects snake_case
	Action     string `json:"action"`
	IsSample   bool   `json:"isSample"`
}

// ResponseBody is the JSON body returned by the presign endpoint.
type ResponseBody struct {
	PresignedURL string `json:"presigned_url"` //nolint:tagliatelle // API expects snake_case
}

// Mode selects where presigned URLs come from.
type Mode string

const (
	// ModeEndpoint asks the backend presign endpoint for a URL.
	ModeEndpoint Mode = "endpoint"
	// ModeS3 presigns the object locally with the default AWS credential chain.
	ModeS3 Mode = "s3"
)

// ParseMode converts a flag value into a Mode. An empty value selects ModeEndpoint.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case "", ModeEndpoint:
		return ModeEndpoint, nil
	case ModeS3:
		return ModeS3, nil
	default:
		return "", &UnknownModeError{Mode: value}
	}
}
