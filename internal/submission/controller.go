// Package submission drives the upload and download flows of the file
// controls. Each category owns an independent view-state; at most one
// operation per category runs at a time, while different categories may be
// in flight together.
package submission

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"

	"github.com/puzpuzpuz/xsync"
	"github.com/rs/zerolog"

	"github.com/snyk/cli-extension-file-flows/internal/download"
	"github.com/snyk/cli-extension-file-flows/internal/filetypes"
	"github.com/snyk/cli-extension-file-flows/internal/fileupload"
	"github.com/snyk/cli-extension-file-flows/internal/identity"
	"github.com/snyk/cli-extension-file-flows/internal/presenters"
	"github.com/snyk/cli-extension-file-flows/internal/presign"
	"github.com/snyk/cli-extension-file-flows/internal/viewstate"
)

// Config holds the collaborators of a Controller. Issuer, Saver and
// Identity are optional.
type Config struct {
	Catalog  *filetypes.Catalog
	Uploader fileupload.Client
	Issuer   presign.Issuer
	Saver    download.Saver
	Identity identity.Provider
	Board    *presenters.Board
	Progress *presenters.Progress
	Logger   *zerolog.Logger
}

// SubmitRequest is one click on a submit control.
type SubmitRequest struct {
	File     *fileupload.UploadFile
	Category string
	// Month overrides the month selected on the control when set.
	Month string
}

type control struct {
	// owner identifies the control on the notification board.
	owner string
	mu    sync.Mutex
	state viewstate.State
}

// Controller owns the view-state of every control.
type Controller struct {
	catalog   *filetypes.Catalog
	uploader  fileupload.Client
	issuer    presign.Issuer
	saver     download.Saver
	provider  identity.Provider
	board     *presenters.Board
	progress  *presenters.Progress
	logger    *zerolog.Logger
	controls  *xsync.MapOf[string, *control]
	downloads *xsync.MapOf[string, *control]

	identityOnce sync.Once
	attrs        identity.Attributes
	identityOK   bool
}

// NewController creates a Controller.
func NewController(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	board := cfg.Board
	if board == nil {
		board = presenters.NewBoard(nil)
	}
	progress := cfg.Progress
	if progress == nil {
		progress = presenters.NewProgress(nil)
	}

	return &Controller{
		catalog:   cfg.Catalog,
		uploader:  cfg.Uploader,
		issuer:    cfg.Issuer,
		saver:     cfg.Saver,
		provider:  cfg.Identity,
		board:     board,
		progress:  progress,
		logger:    logger,
		controls:  xsync.NewMapOf[*control](),
		downloads: xsync.NewMapOf[*control](),
	}
}

func (c *Controller) control(category string) *control {
	if ctrl, ok := c.controls.Load(category); ok {
		return ctrl
	}
	ctrl, _ := c.controls.LoadOrStore(category, &control{owner: category, state: viewstate.New(category)})
	return ctrl
}

func (c *Controller) downloadControl(objectKey string) *control {
	if ctrl, ok := c.downloads.Load(objectKey); ok {
		return ctrl
	}
	ctrl, _ := c.downloads.LoadOrStore(objectKey, &control{owner: sampleOwnerPrefix + objectKey, state: viewstate.New("")})
	return ctrl
}

const sampleOwnerPrefix = "sample:"

// apply moves ctrl to its next state and mirrors its notification on the
// board.
func (c *Controller) apply(ctrl *control, ev viewstate.Event) viewstate.State {
	ctrl.mu.Lock()
	ctrl.state = viewstate.Apply(ctrl.state, ev)
	state := ctrl.state
	ctrl.mu.Unlock()

	switch ev.(type) {
	case viewstate.ValidationFailed, viewstate.SubmitSucceeded, viewstate.SubmitFailed:
		if n, ok := state.VisibleNotification(); ok {
			if err := c.board.Show(ctrl.owner, n); err != nil {
				c.logger.Warn().Err(err).Msg("Failed to display notification")
			}
		}
	case viewstate.Dismissed:
		c.board.Dismiss(ctrl.owner)
	}
	return state
}

// start takes the in-flight flag of ctrl. It fails when the flag is already
// set.
func (c *Controller) start(ctrl *control) bool {
	ctrl.mu.Lock()
	if ctrl.state.InFlight {
		ctrl.mu.Unlock()
		return false
	}
	ctrl.state = viewstate.Apply(ctrl.state, viewstate.SubmitStarted{})
	ctrl.mu.Unlock()

	c.board.Dismiss(ctrl.owner)
	return true
}

// State returns a snapshot of the view-state of category.
func (c *Controller) State(category string) viewstate.State {
	ctrl := c.control(category)
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return ctrl.state.Clone()
}

// SelectFile records the file picked on the control of category. A nil file
// clears the selection.
func (c *Controller) SelectFile(category string, file *viewstate.SelectedFile) viewstate.State {
	return c.apply(c.control(category), viewstate.FileSelected{File: file})
}

// SelectMonth records the reporting month picked on the control of category.
func (c *Controller) SelectMonth(category, month string) (viewstate.State, error) {
	normalized := ""
	if month != "" {
		var err error
		normalized, err = filetypes.NormalizeMonth(month)
		if err != nil {
			return c.State(category), err
		}
	}
	return c.apply(c.control(category), viewstate.MonthSelected{Month: normalized}), nil
}

// Dismiss hides the notification of category. Running operations are not
// affected.
func (c *Controller) Dismiss(category string) viewstate.State {
	return c.apply(c.control(category), viewstate.Dismissed{})
}

// LoadIdentity resolves the identity attributes of the acting user. The
// lookup runs once; later calls return the cached result.
func (c *Controller) LoadIdentity(ctx context.Context) (identity.Attributes, bool) {
	c.identityOnce.Do(func() {
		c.attrs, c.identityOK = identity.Resolve(ctx, c.provider, c.logger)
	})
	return c.attrs, c.identityOK
}

// Validate checks file against the allow-list of category. On failure it
// raises exactly one error notification and returns false.
func (c *Controller) Validate(file *fileupload.UploadFile, category string) bool {
	return c.validate(c.control(category), file, category) == nil
}

func (c *Controller) validate(ctrl *control, file *fileupload.UploadFile, category string) error {
	c.apply(ctrl, viewstate.ValidationStarted{})

	fail := func(err error, msg string) error {
		c.apply(ctrl, viewstate.ValidationFailed{Message: msg})
		return err
	}

	if file == nil || file.File == nil {
		return fail(fileupload.ErrNoFileProvided, MsgSelectFile)
	}
	if file.Name == "" {
		return fail(filetypes.ErrNoFileName, MsgSelectFile)
	}

	desc, err := c.catalog.Get(category)
	if err != nil {
		return fail(err, uploadFailedMessage(err))
	}
	if err := filetypes.ValidateExtension(file.Name, desc.Extensions()); err != nil {
		return fail(err, unsupportedFormatMessage(desc.Extensions()))
	}

	c.apply(ctrl, viewstate.ValidationPassed{})
	return nil
}

// Submit validates req and posts the file to the upload endpoint of its
// category. The in-flight flag of the category is set for the duration of
// the call and cleared on every path.
func (c *Controller) Submit(ctx context.Context, req SubmitRequest) (out Outcome) {
	ctrl := c.control(req.Category)
	if c.State(req.Category).InFlight {
		return c.rejectInFlight(req.Category)
	}

	if err := c.validate(ctrl, req.File, req.Category); err != nil {
		return c.outcome(ctrl, err, false)
	}

	desc, err := c.catalog.Get(req.Category)
	if err != nil {
		return c.reject(ctrl, err, uploadFailedMessage(err))
	}

	month := req.Month
	if month == "" {
		month = c.State(req.Category).Month
	}
	if desc.RequiresMonth && month == "" {
		return c.reject(ctrl, filetypes.ErrNoMonthSelected, MsgSelectMonth)
	}
	if month != "" {
		if month, err = filetypes.NormalizeMonth(month); err != nil {
			return c.reject(ctrl, err, MsgSelectMonth)
		}
	}

	endpoint, err := c.catalog.Endpoint(req.Category)
	if err != nil {
		return c.reject(ctrl, err, uploadFailedMessage(err))
	}

	if !c.start(ctrl) {
		return c.rejectInFlight(req.Category)
	}
	c.progress.Begin(fmt.Sprintf("Uploading %s...", req.File.Name))

	var result viewstate.Event = viewstate.SubmitFailed{Message: uploadFailedMessage(nil)}
	defer func() {
		c.progress.End()
		c.apply(ctrl, result)
		out = c.outcome(ctrl, out.Err, true)
	}()

	attrs, _ := c.LoadIdentity(ctx)
	uploadReq := fileupload.UploadRequest{
		File:     *req.File,
		Username: attrs.DisplayName,
		FileType: req.Category,
		Month:    month,
		JSONBody: desc.BodyFormat == filetypes.BodyFormatJSON,
	}

	c.logger.Debug().
		Str("file_type", req.Category).
		Str("file_name", req.File.Name).
		Str("endpoint", endpoint).
		Msg("Uploading file")

	resp, err := c.uploader.Upload(ctx, endpoint, uploadReq)
	if err != nil {
		c.logger.Error().Err(err).Str("file_type", req.Category).Msg("Upload failed")
		result = viewstate.SubmitFailed{Message: failureMessage(err)}
		return Outcome{Err: err}
	}

	msg := resp.Message
	if msg == "" {
		msg = MsgUploadSucceeded
	}
	c.logger.Info().Str("file_type", req.Category).Int("status", resp.StatusCode).Msg("Upload succeeded")
	result = viewstate.SubmitSucceeded{Message: msg, ClearSelection: true}
	return Outcome{}
}

func (c *Controller) rejectInFlight(category string) Outcome {
	c.logger.Debug().Str("file_type", category).Msg("Submit rejected, upload already in flight")
	return Outcome{
		Notification: viewstate.Notification{Kind: viewstate.NotificationError, Message: MsgSubmitInProgress},
		Err:          ErrInFlight,
	}
}

// failureMessage maps an upload error to its notification text. Server
// errors surface the server message; anything else is a generic failure.
func failureMessage(err error) string {
	var httpErr *fileupload.HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	var transportErr *fileupload.TransportError
	if errors.As(err, &transportErr) && transportErr.Err != nil {
		return uploadFailedMessage(transportErr.Err)
	}
	return uploadFailedMessage(err)
}

// reject raises an error notification for a request that never reached the network.
func (c *Controller) reject(ctrl *control, err error, msg string) Outcome {
	c.apply(ctrl, viewstate.ValidationFailed{Message: msg})
	return c.outcome(ctrl, err, false)
}

func (c *Controller) outcome(ctrl *control, err error, sent bool) Outcome {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	out := Outcome{Sent: sent, Err: err}
	if n, ok := ctrl.state.VisibleNotification(); ok {
		out.Notification = n
	}
	return out
}

// DownloadSample downloads the sample file of category.
func (c *Controller) DownloadSample(ctx context.Context, category string) Outcome {
	desc, err := c.catalog.Get(category)
	if err != nil {
		return c.reject(c.control(category), err, downloadFailedMessage(err))
	}
	if !desc.HasSample() {
		return c.reject(c.control(category), filetypes.ErrNoSample, MsgNoSample)
	}

	displayName := desc.SampleFileName
	if displayName == "" {
		displayName = path.Base(desc.SampleKey)
	}
	return c.RequestDownload(ctx, desc.SampleKey, displayName)
}

// RequestDownload asks for a presigned URL for objectKey and saves the object
// under displayName.
func (c *Controller) RequestDownload(ctx context.Context, objectKey, displayName string) (out Outcome) {
	ctrl := c.downloadControl(objectKey)

	if c.issuer == nil || c.saver == nil {
		c.apply(ctrl, viewstate.ValidationFailed{Message: MsgNoDownloads})
		return c.outcome(ctrl, presign.ErrEmptyEndpoint, false)
	}

	if !c.start(ctrl) {
		return Outcome{
			Notification: viewstate.Notification{Kind: viewstate.NotificationError, Message: downloadFailedMessage(ErrInFlight)},
			Err:          ErrInFlight,
		}
	}
	c.progress.Begin(fmt.Sprintf("Downloading %s...", displayName))

	var result viewstate.Event = viewstate.SubmitFailed{Message: downloadFailedMessage(nil)}
	defer func() {
		c.progress.End()
		c.apply(ctrl, result)
		saved := out.SavedPath
		out = c.outcome(ctrl, out.Err, true)
		out.SavedPath = saved
	}()

	fail := func(err error, msg string) Outcome {
		c.logger.Error().Err(err).Str("object_key", objectKey).Msg("Download failed")
		result = viewstate.SubmitFailed{Message: msg}
		return Outcome{Err: err}
	}

	url, err := c.issuer.IssueDownloadURL(ctx, objectKey, displayName)
	if err != nil {
		var httpErr *presign.HTTPError
		if errors.As(err, &httpErr) && httpErr.Message != "" {
			return fail(err, downloadFailedMessage(errors.New(httpErr.Message)))
		}
		return fail(err, downloadFailedMessage(err))
	}

	saved, err := c.saver.Save(ctx, url, displayName)
	if err != nil {
		return fail(err, downloadFailedMessage(err))
	}

	c.logger.Info().Str("object_key", objectKey).Str("path", saved).Msg("Download saved")
	result = viewstate.SubmitSucceeded{Message: downloadSucceededMessage(displayName, saved)}
	return Outcome{SavedPath: saved}
}
