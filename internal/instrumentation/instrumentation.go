package instrumentation

import "github.com/snyk/go-application-framework/pkg/analytics"

// Custom metric keys.
const (
	fileType          string = "fileType"
	uploadTimeMs      string = "uploadMs"
	downloadTimeMs    string = "downloadMs"
	operationCount    string = "operationCount"
	failedOperations  string = "failedOperations"
	identityAvailable string = "identityAvailable"
)

// Instrumentation defines the interface that we expect for instrumentation objects.
type Instrumentation interface {
	RecordFileType(key string)
	RecordUploadTime(timeMs int64)
	RecordDownloadTime(timeMs int64)
	RecordOperations(total, failed int)
	RecordIdentityAvailable(available bool)
}

// GAFInstrumentation is an implementation of Instrumentation that uses the GAF analytics.
type GAFInstrumentation struct {
	analytics analytics.Analytics
}

// RecordFileType is used to record the file type an invocation worked on.
func (gafI *GAFInstrumentation) RecordFileType(key string) {
	if key == "" {
		key = "general"
	}
	gafI.analytics.AddExtensionStringValue(fileType, key)
}

// RecordUploadTime is used to record the time it takes to upload all files.
func (gafI *GAFInstrumentation) RecordUploadTime(timeMs int64) {
	gafI.analytics.AddExtensionIntegerValue(uploadTimeMs, int(timeMs))
}

// RecordDownloadTime is used to record the time it takes to download all samples.
func (gafI *GAFInstrumentation) RecordDownloadTime(timeMs int64) {
	gafI.analytics.AddExtensionIntegerValue(downloadTimeMs, int(timeMs))
}

// RecordOperations is used to record how many operations ran and how many of them failed.
func (gafI *GAFInstrumentation) RecordOperations(total, failed int) {
	gafI.analytics.AddExtensionIntegerValue(operationCount, total)
	gafI.analytics.AddExtensionIntegerValue(failedOperations, failed)
}

// RecordIdentityAvailable is used to record whether the display name of the user could be resolved.
func (gafI *GAFInstrumentation) RecordIdentityAvailable(available bool) {
	gafI.analytics.AddExtensionBoolValue(identityAvailable, available)
}

// NewGAFInstrumentation will create a new GAFInstrumentation based on the provided GAF analytics.
func NewGAFInstrumentation(analytics analytics.Analytics) *GAFInstrumentation {
	return &GAFInstrumentation{analytics}
}
