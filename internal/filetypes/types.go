package filetypes

// BodyFormat selects how an upload request is encoded.
type BodyFormat string

const (
	// BodyFormatMultipart sends the file bytes and metadata as multipart/form-data.
	BodyFormatMultipart BodyFormat = "multipart"
	// BodyFormatJSON sends only the file name and metadata as a JSON document.
	BodyFormatJSON BodyFormat = "json"
)

// DefaultAllowedExtensions lists the extensions accepted when a descriptor
// does not narrow the allow-list.
var DefaultAllowedExtensions = []string{"csv", "pdf", "xlsx", "xls", "doc", "docx"}

// FileTypeDescriptor describes a single upload category.
type FileTypeDescriptor struct {
	// Key is the category sent as the fileType form field. The empty key is
	// the unset category.
	Key   string
	Label string
	// UploadURL is absolute once the catalog resolved it against a base URL.
	UploadURL         string
	SampleKey         string
	SampleFileName    string
	RequiresMonth     bool
	BodyFormat        BodyFormat
	AllowedExtensions []string
}

// HasSample reports whether the category offers a sample download.
func (d FileTypeDescriptor) HasSample() bool {
	return d.SampleKey != ""
}

// Extensions returns the allow-list that applies to the category.
func (d FileTypeDescriptor) Extensions() []string {
	if len(d.AllowedExtensions) > 0 {
		return d.AllowedExtensions
	}
	return DefaultAllowedExtensions
}

type descriptorDocument struct {
	Key               string   `yaml:"key"`
	Label             string   `yaml:"label"`
	UploadURL         string   `yaml:"upload_url"`
	SampleKey         string   `yaml:"sample_key"`
	SampleFileName    string   `yaml:"sample_file_name"`
	RequiresMonth     bool     `yaml:"requires_month"`
	BodyFormat        string   `yaml:"body_format"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

type catalogDocument struct {
	FileTypes []descriptorDocument `yaml:"file_types"`
}
