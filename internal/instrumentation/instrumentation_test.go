package instrumentation_test

import (
	"testing"

	"github.com/snyk/go-application-framework/pkg/analytics"
	"github.com/stretchr/testify/assert"

	"github.com/snyk/cli-extension-file-flows/internal/instrumentation"
)

// recordingAnalytics captures extension values. Calling any other analytics method panics.
type recordingAnalytics struct {
	analytics.Analytics
	values map[string]interface{}
}

func (r *recordingAnalytics) AddExtensionStringValue(key, value string) {
	r.values[key] = value
}

func (r *recordingAnalytics) AddExtensionIntegerValue(key string, value int) {
	r.values[key] = value
}

func (r *recordingAnalytics) AddExtensionBoolValue(key string, value bool) {
	r.values[key] = value
}

func TestGAFInstrumentation(t *testing.T) {
	rec := &recordingAnalytics{values: map[string]interface{}{}}
	inst := instrumentation.NewGAFInstrumentation(rec)

	inst.RecordFileType("")
	inst.RecordUploadTime(1200)
	inst.RecordDownloadTime(300)
	inst.RecordOperations(3, 1)
	inst.RecordIdentityAvailable(false)

	assert.Equal(t, map[string]interface{}{
		"fileType":          "general",
		"uploadMs":          1200,
		"downloadMs":        300,
		"operationCount":    3,
		"failedOperations":  1,
		"identityAvailable": false,
	}, rec.values)

	inst.RecordFileType("darwinbox")
	assert.Equal(t, "darwinbox", rec.values["fileType"])
}
