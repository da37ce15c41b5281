// Package upload implements the "upload" command, which submits local files
// to the upload endpoint of a file type.
package upload

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/snyk/go-application-framework/pkg/configuration"
	"github.com/snyk/go-application-framework/pkg/ui"
	"github.com/snyk/go-application-framework/pkg/workflow"

	"github.com/snyk/cli-extension-file-flows/internal/commands/cmdctx"
	cmdutil "github.com/snyk/cli-extension-file-flows/internal/commands/util"
	"github.com/snyk/cli-extension-file-flows/internal/constants"
	"github.com/snyk/cli-extension-file-flows/internal/filetypes"
	"github.com/snyk/cli-extension-file-flows/internal/fileupload"
	"github.com/snyk/cli-extension-file-flows/internal/flags"
	"github.com/snyk/cli-extension-file-flows/internal/identity"
	"github.com/snyk/cli-extension-file-flows/internal/presenters"
	"github.com/snyk/cli-extension-file-flows/internal/submission"
	"github.com/snyk/cli-extension-file-flows/internal/util"
	"github.com/snyk/cli-extension-file-flows/internal/viewstate"
)

// WorkflowID is the identifier for the upload workflow.
var WorkflowID = workflow.NewWorkflowIdentifier("upload")

// RegisterWorkflows registers the "upload" workflow.
func RegisterWorkflows(e workflow.Engine) error {
	// Check if workflow already exists
	if _, ok := e.GetWorkflow(WorkflowID); ok {
		return fmt.Errorf("workflow with ID %s already exists", WorkflowID)
	}

	c := workflow.ConfigurationOptionsFromFlagset(flags.UploadFlagSet())

	if _, err := e.Register(WorkflowID, c, Workflow); err != nil {
		return fmt.Errorf("error while registering upload workflow: %w", err)
	}

	return nil
}

func setupIdentityProvider(ctx context.Context) identity.Provider {
	ictx := cmdctx.Ictx(ctx)
	cfg := cmdctx.Config(ctx)

	identityURL := cmdutil.StringWithEnv(cfg, flags.FlagIdentityURL, constants.IdentityURLEnvVar)
	if identityURL == "" {
		return nil
	}
	return identity.NewHTTPProvider(ictx.GetNetworkAccess().GetHttpClient(), identity.Config{EndpointURL: identityURL})
}

// validateFileType checks that fileType is configured and has a usable endpoint.
func validateFileType(ctx context.Context, catalog *filetypes.Catalog, fileType string) error {
	errFactory := cmdctx.ErrorFactory(ctx)

	if _, err := catalog.Get(fileType); err != nil {
		//nolint:wrapcheck // No need to wrap error factory errors.
		return errFactory.NewUnknownFileTypeError(fileType, catalog.Keys())
	}
	if _, err := catalog.Endpoint(fileType); err != nil {
		return errFactory.NewMissingUploadEndpointError(fileType, err)
	}
	return nil
}

// submitPath uploads the file at path through the controller.
func submitPath(
	ctx context.Context,
	controller *submission.Controller,
	board *presenters.Board,
	path, fileType, month string,
) submission.Outcome {
	logger := cmdctx.Logger(ctx)

	fd, err := os.Open(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to open file")
		return showFailure(ctx, board, fileType, fileupload.NewFileAccessError(path, err))
	}
	defer fd.Close()

	info, err := fd.Stat()
	if err != nil {
		return showFailure(ctx, board, fileType, fileupload.NewFileAccessError(path, err))
	}
	if info.IsDir() {
		return showFailure(ctx, board, fileType, fileupload.NewDirectoryError(path))
	}

	name := filepath.Base(path)
	contentType := mime.TypeByExtension(filepath.Ext(name))
	controller.SelectFile(fileType, util.Ptr(viewstate.SelectedFile{Name: name, ContentType: contentType, Size: info.Size()}))

	return controller.Submit(ctx, submission.SubmitRequest{
		File:     &fileupload.UploadFile{Name: name, ContentType: contentType, File: fd},
		Category: fileType,
		Month:    month,
	})
}

// noFileSelected reports whether paths name no file to upload. Without an
// argument the input defaults to the working directory, so a lone directory
// counts as no selection.
func noFileSelected(paths []string) bool {
	switch len(paths) {
	case 0:
		return true
	case 1:
		info, err := os.Stat(paths[0])
		return err == nil && info.IsDir()
	default:
		return false
	}
}

func showFailure(ctx context.Context, board *presenters.Board, fileType string, err error) submission.Outcome {
	n := viewstate.Notification{
		Kind:    viewstate.NotificationError,
		Message: fmt.Sprintf("An error occurred while uploading the file: %s", err),
		Visible: true,
	}
	if uiErr := board.Show(fileType, n); uiErr != nil {
		cmdctx.Logger(ctx).Warn().Err(uiErr).Msg("Failed to display notification")
	}
	return submission.Outcome{Notification: n, Err: err}
}

// Workflow is the entry point for the upload workflow.
func Workflow(
	ictx workflow.InvocationContext,
	_ []workflow.Data,
) ([]workflow.Data, error) {
	ctx := cmdctx.Init(ictx)
	cfg := cmdctx.Config(ctx)
	logger := cmdctx.Logger(ctx)
	errFactory := cmdctx.ErrorFactory(ctx)
	progressBar := cmdctx.ProgressBar(ctx)

	progressBar.SetTitle(constants.ValidatingTitle)
	//nolint:errcheck // We don't need to fail the command due to UI errors.
	progressBar.UpdateProgress(ui.InfiniteProgress)
	//nolint:errcheck // We don't need to fail the command due to UI errors.
	defer progressBar.Clear()

	paths := cfg.GetStringSlice(configuration.INPUT_DIRECTORY)

	baseURL := cmdutil.StringWithEnv(cfg, flags.FlagUploadBaseURL, constants.UploadBaseURLEnvVar)
	catalog, err := cmdutil.LoadCatalog(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	fileType := cfg.GetString(flags.FlagFileType)
	if err := validateFileType(ctx, catalog, fileType); err != nil {
		return nil, err
	}

	//nolint:errcheck // We don't need to fail the command due to UI errors.
	progressBar.Clear()

	board := cmdutil.NewBoard(ictx)
	controller := submission.NewController(submission.Config{
		Catalog:  catalog,
		Uploader: fileupload.NewClient(fileupload.WithHTTPClient(ictx.GetNetworkAccess().GetHttpClient())),
		Identity: setupIdentityProvider(ctx),
		Board:    board,
		Progress: presenters.NewProgress(progressBar),
		Logger:   logger,
	})

	if noFileSelected(paths) {
		controller.Validate(nil, fileType)
		//nolint:wrapcheck // No need to wrap error factory errors.
		return nil, errFactory.NewNoInputFilesError()
	}

	_, identityOK := controller.LoadIdentity(ctx)

	inst := cmdctx.Instrumentation(ctx)
	inst.RecordFileType(fileType)
	inst.RecordIdentityAvailable(identityOK)

	month := cfg.GetString(flags.FlagMonth)
	failed := 0
	start := time.Now()
	for _, path := range paths {
		out := submitPath(ctx, controller, board, path, fileType, month)
		if !out.Succeeded() {
			failed++
		}
	}
	inst.RecordUploadTime(time.Since(start).Milliseconds())
	inst.RecordOperations(len(paths), failed)

	logger.Debug().Int("files", len(paths)).Int("failed", failed).Msg("Upload finished")
	if len(paths) > 1 {
		//nolint:errcheck // We don't need to fail the command due to UI errors.
		ictx.GetUserInterface().Output(presenters.RenderSummary("files uploaded", len(paths), failed))
	}
	if failed > 0 {
		return nil, errFactory.NewOperationFailedError(failed, len(paths))
	}

	return []workflow.Data{}, nil
}
