package fileflows

import (
	"fmt"

	"github.com/snyk/go-application-framework/pkg/workflow"

	"github.com/snyk/cli-extension-file-flows/internal/commands/downloadsample"
	"github.com/snyk/cli-extension-file-flows/internal/commands/upload"
)

// Init registers the file flows workflows with the engine.
func Init(e workflow.Engine) error {
	// register "upload" workflow
	if err := upload.RegisterWorkflows(e); err != nil {
		return fmt.Errorf("error while registering upload workflow: %w", err)
	}

	// register "download-sample" workflow
	if err := downloadsample.RegisterWorkflows(e); err != nil {
		return fmt.Errorf("error while registering download-sample workflow: %w", err)
	}

	return nil
}
