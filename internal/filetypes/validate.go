package filetypes

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	folder      = cases.Fold()
	monthTitler = cases.Title(language.English)
)

// Extension returns the text after the final "." of name, case folded.
// It returns an empty string when name has no extension.
func Extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return folder.String(name[idx+1:])
}

// ValidateExtension checks that the extension of name belongs to allowList.
// Comparison is case-insensitive.
func ValidateExtension(name string, allowList []string) error {
	if name == "" {
		return ErrNoFileName
	}

	ext := Extension(name)
	if ext == "" {
		return ErrMissingExtension
	}

	allowed := slices.ContainsFunc(allowList, func(candidate string) bool {
		return folder.String(strings.TrimPrefix(candidate, ".")) == ext
	})
	if !allowed {
		return &UnsupportedExtensionError{FileName: name, Extension: ext}
	}

	return nil
}

// Months returns the selectable reporting months in calendar order.
func Months() []string {
	months := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, m.String())
	}
	return months
}

// NormalizeMonth maps user input such as "march" or " MARCH " to the
// canonical month name. An empty value yields ErrNoMonthSelected.
func NormalizeMonth(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrNoMonthSelected
	}

	candidate := monthTitler.String(trimmed)
	if slices.Contains(Months(), candidate) {
		return candidate, nil
	}

	return "", &InvalidMonthError{Value: value}
}
