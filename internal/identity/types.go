package identity

// UnknownDisplayName is used when no identity information is available.
const UnknownDisplayName = "Unknown"

// Attributes are the identity attributes used to annotate submissions.
type Attributes struct {
	DisplayName string
	PhoneNumber string
}

// ResponseBody is the attribute document returned by the identity endpoint.
type ResponseBody struct {
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"` //nolint:tagliatelle // API expects snake_case
	PhoneNumber       string `json:"phone_number"`       //nolint:tagliatelle // API expects snake_case
}
