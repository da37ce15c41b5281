// Package downloadsample implements the "download-sample" command, which
// saves the sample file of one or all file types through presigned URLs.
package downloadsample

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/snyk/go-application-framework/pkg/ui"
	"github.com/snyk/go-application-framework/pkg/workflow"
	"golang.org/x/sync/errgroup"

	"github.com/snyk/cli-extension-file-flows/internal/commands/cmdctx"
	cmdutil "github.com/snyk/cli-extension-file-flows/internal/commands/util"
	"github.com/snyk/cli-extension-file-flows/internal/constants"
	"github.com/snyk/cli-extension-file-flows/internal/download"
	"github.com/snyk/cli-extension-file-flows/internal/filetypes"
	"github.com/snyk/cli-extension-file-flows/internal/flags"
	"github.com/snyk/cli-extension-file-flows/internal/presenters"
	"github.com/snyk/cli-extension-file-flows/internal/presign"
	"github.com/snyk/cli-extension-file-flows/internal/submission"
)

// WorkflowID is the identifier for the download-sample workflow.
var WorkflowID = workflow.NewWorkflowIdentifier("download-sample")

// RegisterWorkflows registers the "download-sample" workflow.
func RegisterWorkflows(e workflow.Engine) error {
	// Check if workflow already exists
	if _, ok := e.GetWorkflow(WorkflowID); ok {
		return fmt.Errorf("workflow with ID %s already exists", WorkflowID)
	}

	c := workflow.ConfigurationOptionsFromFlagset(flags.DownloadSampleFlagSet())

	if _, err := e.Register(WorkflowID, c, Workflow); err != nil {
		return fmt.Errorf("error while registering download-sample workflow: %w", err)
	}

	return nil
}

// setupIssuer creates the source of presigned URLs selected by --presign-mode.
func setupIssuer(ctx context.Context) (presign.Issuer, error) {
	ictx := cmdctx.Ictx(ctx)
	cfg := cmdctx.Config(ctx)
	errFactory := cmdctx.ErrorFactory(ctx)

	modeValue := cfg.GetString(flags.FlagPresignMode)
	mode, err := presign.ParseMode(modeValue)
	if err != nil {
		//nolint:wrapcheck // No need to wrap error factory errors.
		return nil, errFactory.NewInvalidPresignModeError(modeValue)
	}

	bucket := cmdutil.StringWithEnv(cfg, flags.FlagSampleBucket, constants.SampleBucketEnvVar)

	if mode == presign.ModeS3 {
		issuer, err := presign.NewS3Issuer(ctx, presign.S3Config{
			BucketName: bucket,
			Region:     cfg.GetString(flags.FlagS3Region),
			Endpoint:   cfg.GetString(flags.FlagS3Endpoint),
		})
		if err != nil {
			return nil, errFactory.NewPresignSetupError(err)
		}
		return issuer, nil
	}

	presignURL := cmdutil.StringWithEnv(cfg, flags.FlagPresignURL, constants.PresignURLEnvVar)
	if presignURL == "" {
		return nil, errFactory.NewMissingPresignEndpointError()
	}
	return presign.NewHTTPIssuer(ictx.GetNetworkAccess().GetHttpClient(), presign.Config{
		EndpointURL: presignURL,
		BucketName:  bucket,
	}), nil
}

// selectTargets returns the file types whose samples should be downloaded.
func selectTargets(ctx context.Context, catalog *filetypes.Catalog) ([]filetypes.FileTypeDescriptor, error) {
	cfg := cmdctx.Config(ctx)
	errFactory := cmdctx.ErrorFactory(ctx)

	if cfg.GetBool(flags.FlagAll) {
		if cfg.GetString(flags.FlagFileType) != "" {
			//nolint:wrapcheck // No need to wrap error factory errors.
			return nil, errFactory.NewInvalidArgCombinationError("--all", "--file-type")
		}
		return catalog.WithSamples(), nil
	}

	fileType := cfg.GetString(flags.FlagFileType)
	desc, err := catalog.Get(fileType)
	if err != nil {
		//nolint:wrapcheck // No need to wrap error factory errors.
		return nil, errFactory.NewUnknownFileTypeError(fileType, catalog.Keys())
	}
	if !desc.HasSample() {
		return nil, errFactory.NewNoSampleError(fileType)
	}
	return []filetypes.FileTypeDescriptor{desc}, nil
}

// downloadAll downloads the samples of targets with bounded concurrency and
// returns the number of failed downloads.
func downloadAll(ctx context.Context, controller *submission.Controller, targets []filetypes.FileTypeDescriptor) int {
	var failed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.DownloadConcurrency)
	for _, desc := range targets {
		g.Go(func() error {
			if out := controller.DownloadSample(gctx, desc.Key); !out.Succeeded() {
				failed.Add(1)
			}
			return nil
		})
	}
	//nolint:errcheck // Downloads report their failures through notifications.
	g.Wait()

	return int(failed.Load())
}

// Workflow is the entry point for the download-sample workflow.
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

	catalog, err := cmdutil.LoadCatalog(ctx, "")
	if err != nil {
		return nil, err
	}

	targets, err := selectTargets(ctx, catalog)
	if err != nil {
		return nil, err
	}

	issuer, err := setupIssuer(ctx)
	if err != nil {
		return nil, err
	}

	//nolint:errcheck // We don't need to fail the command due to UI errors.
	progressBar.Clear()

	controller := submission.NewController(submission.Config{
		Catalog: catalog,
		Issuer:  issuer,
		// Presigned URLs carry their own signature.
		Saver:    download.NewFileSaver(ictx.GetNetworkAccess().GetUnauthorizedHttpClient(), cfg.GetString(flags.FlagOutputDir)),
		Board:    cmdutil.NewBoard(ictx),
		Progress: presenters.NewProgress(progressBar),
		Logger:   logger,
	})

	start := time.Now()
	failed := downloadAll(ctx, controller, targets)

	inst := cmdctx.Instrumentation(ctx)
	if len(targets) == 1 {
		inst.RecordFileType(targets[0].Key)
	}
	inst.RecordDownloadTime(time.Since(start).Milliseconds())
	inst.RecordOperations(len(targets), failed)

	logger.Debug().Int("samples", len(targets)).Int("failed", failed).Msg("Sample download finished")
	if len(targets) > 1 {
		//nolint:errcheck // We don't need to fail the command due to UI errors.
		ictx.GetUserInterface().Output(presenters.RenderSummary("sample files downloaded", len(targets), failed))
	}
	if failed > 0 {
		return nil, errFactory.NewOperationFailedError(failed, len(targets))
	}

	return []workflow.Data{}, nil
}
