package filetypes

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Catalog is the immutable table of upload categories, keyed by category.
type Catalog struct {
	order []string
	byKey map[string]FileTypeDescriptor
}

// Default loads the embedded category table.
func Default(baseURL string) (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog), baseURL)
}

// LoadFile loads a category table from a YAML file.
func LoadFile(path, baseURL string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file type catalog %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, baseURL)
}

// Load decodes a YAML category table. Relative upload URLs are resolved against
// baseURL; when baseURL is empty they are kept as-is and the descriptor reports
// no usable endpoint.
func Load(r io.Reader, baseURL string) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode file type catalog: %w", err)
	}

	if len(doc.FileTypes) == 0 {
		return nil, ErrEmptyCatalog
	}

	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		order: make([]string, 0, len(doc.FileTypes)),
		byKey: make(map[string]FileTypeDescriptor, len(doc.FileTypes)),
	}

	for _, entry := range doc.FileTypes {
		desc, err := entry.toDescriptor(base)
		if err != nil {
			return nil, err
		}

		if _, exists := c.byKey[desc.Key]; exists {
			return nil, &DuplicateCategoryError{Key: desc.Key}
		}

		c.order = append(c.order, desc.Key)
		c.byKey[desc.Key] = desc
	}

	return c, nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	if baseURL == "" {
		//nolint:nilnil // A missing base URL leaves relative upload URLs unresolved.
		return nil, nil
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upload base URL %q: %w", baseURL, err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("upload base URL %q must be absolute", baseURL)
	}

	return base, nil
}

func (d descriptorDocument) toDescriptor(base *url.URL) (FileTypeDescriptor, error) {
	desc := FileTypeDescriptor{
		Key:               strings.TrimSpace(d.Key),
		Label:             d.Label,
		SampleKey:         d.SampleKey,
		SampleFileName:    d.SampleFileName,
		RequiresMonth:     d.RequiresMonth,
		BodyFormat:        BodyFormat(d.BodyFormat),
		AllowedExtensions: d.AllowedExtensions,
	}

	if desc.Label == "" {
		desc.Label = desc.Key
	}

	switch desc.BodyFormat {
	case "":
		desc.BodyFormat = BodyFormatMultipart
	case BodyFormatMultipart, BodyFormatJSON:
	default:
		return desc, &InvalidDescriptorError{Key: desc.Key, Err: fmt.Errorf("unknown body format %q", d.BodyFormat)}
	}

	if desc.SampleKey != "" && desc.SampleFileName == "" {
		desc.SampleFileName = desc.SampleKey[strings.LastIndex(desc.SampleKey, "/")+1:]
	}

	if d.UploadURL == "" {
		return desc, &InvalidDescriptorError{Key: desc.Key, Err: fmt.Errorf("upload_url is required")}
	}

	ref, err := url.Parse(d.UploadURL)
	if err != nil {
		return desc, &InvalidDescriptorError{Key: desc.Key, Err: err}
	}

	switch {
	case ref.IsAbs():
		desc.UploadURL = ref.String()
	case base != nil:
		desc.UploadURL = base.ResolveReference(ref).String()
	default:
		desc.UploadURL = d.UploadURL
	}

	return desc, nil
}

// Get returns the descriptor for key.
func (c *Catalog) Get(key string) (FileTypeDescriptor, error) {
	desc, ok := c.byKey[key]
	if !ok {
		return FileTypeDescriptor{}, &UnknownCategoryError{Key: key}
	}
	return desc, nil
}

// Endpoint returns the absolute upload URL for key.
func (c *Catalog) Endpoint(key string) (string, error) {
	desc, err := c.Get(key)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(desc.UploadURL)
	if err != nil || !u.IsAbs() {
		return "", ErrUnresolvedUpload
	}

	return desc.UploadURL, nil
}

// Keys returns the category keys in declaration order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.order...)
}

// All returns every descriptor in declaration order.
func (c *Catalog) All() []FileTypeDescriptor {
	out := make([]FileTypeDescriptor, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.byKey[key])
	}
	return out
}

// WithSamples returns the descriptors that offer a sample download.
func (c *Catalog) WithSamples() []FileTypeDescriptor {
	var out []FileTypeDescriptor
	for _, desc := range c.All() {
		if desc.HasSample() {
			out = append(out, desc)
		}
	}
	return out
}
