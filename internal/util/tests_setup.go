package util

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadedFile is a utility struct used for passing
// a file path and it's content in tests.
type LoadedFile struct {
	Path    string
	Content string
}

// CreateTmpFiles is an utility function used to create temporary files in tests.
func CreateTmpFiles(t *testing.T, files []LoadedFile) (dir *os.File) {
	t.Helper()

	tempDir := t.TempDir()
	dir, err := os.Open(tempDir)
	if err != nil {
		panic(err)
	}

	for _, file := range files {
		fullPath := filepath.Join(tempDir, file.Path)

		parentDir := filepath.Dir(fullPath)
		if err := os.MkdirAll(parentDir, 0o755); err != nil {
			panic(err)
		}

		f, err := os.Create(fullPath)
		if err != nil {
			panic(err)
		}

		_, err = f.WriteString(file.Content)
		f.Close()
		if err != nil {
			panic(err)
		}
	}

	t.Cleanup(func() {
		if dir != nil {
			dir.Close()
		}
	})

	return dir
}
