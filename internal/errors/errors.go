package errors

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	snyk_cli_errors "github.com/snyk/error-catalog-golang-public/cli"
)

// FileFlowsExtensionError represents something gone wrong during the
// execution of the CLI Extension. It holds error details, but
// serializes to a human-friendly, customer facing message.
type FileFlowsExtensionError struct {
	err     error
	userMsg string
}

// Error implements error.
func (xerr FileFlowsExtensionError) Error() string {
	return xerr.userMsg
}

// Unwrap implements error.
func (xerr FileFlowsExtensionError) Unwrap() error {
	return xerr.err
}

// ErrorFactory creates errors for the file flows extension.
type ErrorFactory struct {
	logger *zerolog.Logger
}

// NewErrorFactory creates a new ErrorFactory.
func NewErrorFactory(logger *zerolog.Logger) *ErrorFactory {
	return &ErrorFactory{
		logger: logger,
	}
}

// newErr creates a new FileFlowsExtensionError.
func (ef *ErrorFactory) newErr(err error, userMsg string) *FileFlowsExtensionError {
	ef.logger.Printf("ERROR: %s\n", err)

	return &FileFlowsExtensionError{
		err:     err,
		userMsg: userMsg,
	}
}

// NewNoInputFilesError creates a new error for when no file was passed to the upload command.
func (ef *ErrorFactory) NewNoInputFilesError() *FileFlowsExtensionError {
	return ef.newErr(
		fmt.Errorf("no input files"),
		"Please select a file to upload by passing its path to the `upload` command.",
	)
}

// NewUnknownFileTypeError creates a new error for a --file-type value that is not configured.
func (ef *ErrorFactory) NewUnknownFileTypeError(fileType string, known []string) error {
	quoted := make([]string, 0, len(known))
	for _, k := range known {
		if k == "" {
			continue
		}
		quoted = append(quoted, fmt.Sprintf("'%s'", k))
	}

	return snyk_cli_errors.NewInvalidFlagOptionError(
		fmt.Sprintf("Unsupported value '%s' for --file-type flag. Supported values are: %s.", fileType, strings.Join(quoted, ", ")),
	)
}

// NewMissingUploadEndpointError creates a new error for when a category has no absolute upload URL.
func (ef *ErrorFactory) NewMissingUploadEndpointError(fileType string, err error) *FileFlowsExtensionError {
	label := fileType
	if label == "" {
		label = "general"
	}
	return ef.newErr(
		fmt.Errorf("upload endpoint for %q: %w", fileType, err),
		fmt.Sprintf("No upload endpoint is configured for the %s file type. "+
			"Please set the `--upload-base-url` flag or use absolute URLs in the file type configuration.", label),
	)
}

// NewMissingPresignEndpointError creates a new error for when sample downloads have nowhere to get URLs from.
func (ef *ErrorFactory) NewMissingPresignEndpointError() *FileFlowsExtensionError {
	return ef.newErr(
		fmt.Errorf("presign endpoint not set"),
		"Flag `--presign-url` is required to download sample files.",
	)
}

// NewInvalidPresignModeError creates a new error for an unsupported --presign-mode value.
func (ef *ErrorFactory) NewInvalidPresignModeError(mode string) error {
	return snyk_cli_errors.NewInvalidFlagOptionError(
		fmt.Sprintf("Unsupported value '%s' for --presign-mode flag. Supported values are: 'endpoint', 's3'.", mode),
	)
}

// NewPresignSetupError creates a new error for failures while setting up the presign source.
func (ef *ErrorFactory) NewPresignSetupError(err error) *FileFlowsExtensionError {
	return ef.newErr(
		fmt.Errorf("presign setup: %w", err),
		"Sample downloads could not be set up. Please check the `--sample-bucket` and `--s3-region` flags.",
	)
}

// NewCatalogLoadError creates a new error for a file type configuration that cannot be loaded.
func (ef *ErrorFactory) NewCatalogLoadError(path string, err error) *FileFlowsExtensionError {
	source := "built-in file type configuration"
	if path != "" {
		source = fmt.Sprintf("file type configuration %s", path)
	}
	return ef.newErr(
		fmt.Errorf("load file types: %w", err),
		fmt.Sprintf("The %s could not be loaded: %s", source, err),
	)
}

// NewNoSampleError creates a new error for a category that has no sample file.
func (ef *ErrorFactory) NewNoSampleError(fileType string) *FileFlowsExtensionError {
	return ef.newErr(
		fmt.Errorf("file type %q has no sample", fileType),
		fmt.Sprintf("The %s file type does not offer a sample file.", fileType),
	)
}

// NewInvalidArgCombinationError creates a new error for when
// command line arguments and flags have been combined erroneously.
func (ef *ErrorFactory) NewInvalidArgCombinationError(arg string, flags ...string) error {
	return snyk_cli_errors.NewInvalidFlagOptionError(
		fmt.Sprintf("The argument '%s' cannot be combined with flags %s.", arg, strings.Join(flags, ", ")))
}

// NewOperationFailedError creates a new error for when one or more submissions ended with an error notification.
func (ef *ErrorFactory) NewOperationFailedError(failed, total int) *FileFlowsExtensionError {
	return ef.newErr(
		fmt.Errorf("%d of %d operations failed", failed, total),
		fmt.Sprintf("%d of %d operations did not complete successfully.", failed, total),
	)
}
