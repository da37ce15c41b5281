package constants

// UploadBaseURLEnvVar is an environment variable providing the default for --upload-base-url.
const UploadBaseURLEnvVar = "SNYK_FILE_FLOWS_UPLOAD_BASE_URL"

// IdentityURLEnvVar is an environment variable providing the default for --identity-url.
const IdentityURLEnvVar = "SNYK_FILE_FLOWS_IDENTITY_URL"

// PresignURLEnvVar is an environment variable providing the default for --presign-url.
const PresignURLEnvVar = "SNYK_FILE_FLOWS_PRESIGN_URL"

// SampleBucketEnvVar is an environment variable providing the default for --sample-bucket.
const SampleBucketEnvVar = "SNYK_FILE_FLOWS_SAMPLE_BUCKET"
