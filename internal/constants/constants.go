package constants

// DownloadConcurrency bounds the number of sample downloads running at the same time.
const DownloadConcurrency = 4

// ValidatingTitle is the progress bar title shown while configuration is validated.
const ValidatingTitle = "Validating configuration..."
