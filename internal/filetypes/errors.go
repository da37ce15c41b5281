package filetypes

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	ErrEmptyCatalog     = errors.New("file type catalog defines no categories")
	ErrMissingExtension = errors.New("file name has no extension")
	ErrNoFileName       = errors.New("file name cannot be empty")
	ErrUnresolvedUpload = errors.New("upload URL is relative and no base URL is configured")
	ErrNoMonthSelected  = errors.New("no month selected")
	ErrNoSample         = errors.New("file type has no sample file")
)

// UnknownCategoryError indicates a category key that is not part of the catalog.
type UnknownCategoryError struct {
	Key string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown file type %q", e.Key)
}

// DuplicateCategoryError indicates a category key defined more than once.
type DuplicateCategoryError struct {
	Key string
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("file type %q is defined more than once", e.Key)
}

// UnsupportedExtensionError indicates a file whose extension is not in the allow-list.
type UnsupportedExtensionError struct {
	FileName  string
	Extension string
}

func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("file %s has unsupported extension %q", e.FileName, e.Extension)
}

// InvalidMonthError indicates a month value that is not a calendar month name.
type InvalidMonthError struct {
	Value string
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month %q", e.Value)
}

// InvalidDescriptorError indicates a catalog entry that cannot be used.
type InvalidDescriptorError struct {
	Key string
	Err error
}

func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("invalid file type %q: %v", e.Key, e.Err)
}

func (e *InvalidDescriptorError) Unwrap() error {
	return e.Err
}
