package submission

import (
	"fmt"
	"strings"
)

// User facing notification texts.
const (
	MsgSelectFile       = "Please select a file to upload."
	MsgSelectMonth      = "Please select a month."
	MsgUploadSucceeded  = "File uploaded successfully."
	MsgSubmitInProgress = "An upload for this file type is already in progress."
	MsgNoSample         = "No sample file is available for this file type."
	MsgNoDownloads      = "Sample downloads are not configured."
)

func unsupportedFormatMessage(allowList []string) string {
	upper := make([]string, len(allowList))
	for i, ext := range allowList {
		upper[i] = strings.ToUpper(ext)
	}

	var formats string
	switch len(upper) {
	case 0:
		formats = ""
	case 1:
		formats = upper[0]
	default:
		formats = strings.Join(upper[:len(upper)-1], ", ") + " or " + upper[len(upper)-1]
	}
	return fmt.Sprintf("Unsupported file format. Please upload a %s file.", formats)
}

func uploadFailedMessage(err error) string {
	if err == nil {
		return "An error occurred while uploading the file."
	}
	return fmt.Sprintf("An error occurred while uploading the file: %s", err)
}

func downloadFailedMessage(err error) string {
	if err == nil {
		return "An error occurred while downloading the file."
	}
	return fmt.Sprintf("An error occurred while downloading the file: %s", err)
}

func downloadSucceededMessage(displayName, path string) string {
	return fmt.Sprintf("%s was saved to %s.", displayName, path)
}
