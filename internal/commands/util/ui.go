package util

import (
	"github.com/snyk/go-application-framework/pkg/workflow"

	"github.com/snyk/cli-extension-file-flows/internal/presenters"
)

// NewBoard creates a notification board printing through the framework UI.
func NewBoard(ictx workflow.InvocationContext) *presenters.Board {
	userInterface := ictx.GetUserInterface()
	return presenters.NewBoard(func(output string) error {
		//nolint:wrapcheck // UI errors are only logged by the board owner.
		return userInterface.Output(output)
	})
}
