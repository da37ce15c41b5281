package flags

import "github.com/spf13/pflag"

const (
	FlagFileType        = "file-type"         // category key, empty selects the general upload
	FlagMonth           = "month"             // reporting month for categories that require one
	FlagFileTypesConfig = "file-types-config" // YAML file replacing the built-in file type table
	FlagUploadBaseURL   = "upload-base-url"   // base URL that relative upload URLs resolve against
	FlagIdentityURL     = "identity-url"      // endpoint returning the display name of the user
	FlagAll             = "all"               // download the samples of every file type
	FlagOutputDir       = "output-dir"        // directory downloaded samples are written to
	FlagPresignURL      = "presign-url"       // endpoint issuing presigned download URLs
	FlagSampleBucket    = "sample-bucket"     // bucket holding the sample files
	FlagPresignMode     = "presign-mode"      // where presigned URLs come from: endpoint or s3
	FlagS3Region        = "s3-region"         // region used when presigning locally
	FlagS3Endpoint      = "s3-endpoint"       // S3 compatible endpoint used when presigning locally
)

// UploadFlagSet returns a flag set for the upload workflow.
func UploadFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("snyk-cli-extension-file-flows", pflag.ExitOnError)

	flagSet.String(FlagFileType, "", "File type of the uploaded files, e.g. darwinbox or stocks.")
	flagSet.String(FlagMonth, "", "Reporting month, required by some file types.")
	flagSet.String(FlagFileTypesConfig, "", "Path to a YAML file describing the available file types.")
	flagSet.String(FlagUploadBaseURL, "", "Base URL of the upload API.")
	flagSet.String(FlagIdentityURL, "", "Endpoint returning the display name of the current user.")

	return flagSet
}

// DownloadSampleFlagSet returns a flag set for the download-sample workflow.
func DownloadSampleFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("snyk-cli-extension-file-flows", pflag.ExitOnError)

	flagSet.String(FlagFileType, "", "File type whose sample file should be downloaded.")
	flagSet.Bool(FlagAll, false, "Download the sample files of every file type.")
	flagSet.String(FlagOutputDir, ".", "Directory the sample files are written to.")
	flagSet.String(FlagPresignURL, "", "Endpoint issuing presigned download URLs.")
	flagSet.String(FlagSampleBucket, "", "Bucket holding the sample files.")
	flagSet.String(FlagPresignMode, "endpoint", "Where presigned URLs come from: 'endpoint' or 's3'.")
	flagSet.String(FlagS3Region, "", "AWS region of the sample bucket, used with --presign-mode=s3.")
	flagSet.String(FlagS3Endpoint, "", "S3 compatible endpoint, used with --presign-mode=s3.")
	flagSet.String(FlagFileTypesConfig, "", "Path to a YAML file describing the available file types.")

	return flagSet
}
