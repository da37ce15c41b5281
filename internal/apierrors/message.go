// Package apierrors extracts user facing messages from error responses of the
// upload and presign endpoints.
package apierrors

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/snyk/error-catalog-golang-public/snyk_errors"
)

// maxTextMessageLength bounds plain-text bodies surfaced as messages, so an
// HTML error page does not end up in a notification.
const maxTextMessageLength = 200

type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// MessageFromBody returns the best-effort error message of a response body.
// It looks at, in order: a JSON "message" field, a JSON "error" field,
// JSON:API errors, a short plain-text body and finally the status text.
func MessageFromBody(body []byte, statusCode int) string {
	trimmed := strings.TrimSpace(string(body))

	if trimmed != "" {
		var mb messageBody
		if err := json.Unmarshal([]byte(trimmed), &mb); err == nil {
			if mb.Message != "" {
				return mb.Message
			}
			if mb.Error != "" {
				return mb.Error
			}
		}

		if msg := jsonAPIMessage([]byte(trimmed)); msg != "" {
			return msg
		}

		if looksLikeText(trimmed) {
			return trimmed
		}
	}

	return StatusText(statusCode)
}

// StatusText returns the text for an HTTP status code, or a generic text for
// unknown codes.
func StatusText(statusCode int) string {
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return "Unexpected response"
}

func jsonAPIMessage(body []byte) string {
	errs, err := snyk_errors.FromJSONAPIErrorBytes(body)
	if err != nil || len(errs) == 0 {
		return ""
	}

	first := errs[0]
	if first.Detail != "" {
		return first.Detail
	}
	return first.Title
}

func looksLikeText(s string) bool {
	if !utf8.ValidString(s) || len(s) > maxTextMessageLength {
		return false
	}
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") || strings.HasPrefix(s, "<") {
		return false
	}
	return true
}
