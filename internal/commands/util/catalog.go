package util

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/snyk/cli-extension-file-flows/internal/commands/cmdctx"
	"github.com/snyk/cli-extension-file-flows/internal/filetypes"
	"github.com/snyk/cli-extension-file-flows/internal/flags"
)

// CatalogFileName is looked up when --file-types-config points at a directory.
const CatalogFileName = "file-types.yaml"

// ResolveCatalogFile opens the file type configuration selected by
// --file-types-config. The path can either point at a YAML file or at a
// directory containing a file-types.yaml file.
func ResolveCatalogFile(ctx context.Context) (*os.File, error) {
	cfg := cmdctx.Config(ctx)
	dirOrFile := cfg.GetString(flags.FlagFileTypesConfig)

	// if a directory was given, add the expected file name.
	info, err := os.Stat(dirOrFile)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", dirOrFile, err)
	}
	if info.IsDir() {
		dirOrFile = filepath.Join(dirOrFile, CatalogFileName)
	}

	fd, err := os.Open(dirOrFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", dirOrFile, err)
	}

	return fd, nil
}

// LoadCatalog loads the file type table. Without --file-types-config the
// built-in table is used. Relative upload URLs resolve against baseURL.
func LoadCatalog(ctx context.Context, baseURL string) (*filetypes.Catalog, error) {
	cfg := cmdctx.Config(ctx)
	logger := cmdctx.Logger(ctx)
	errFactory := cmdctx.ErrorFactory(ctx)
	configPath := cfg.GetString(flags.FlagFileTypesConfig)

	if configPath == "" {
		catalog, err := filetypes.Default(baseURL)
		if err != nil {
			return nil, errFactory.NewCatalogLoadError("", err)
		}
		return catalog, nil
	}

	fd, err := ResolveCatalogFile(ctx)
	if err != nil {
		return nil, errFactory.NewCatalogLoadError(configPath, err)
	}
	defer fd.Close()

	catalog, err := filetypes.Load(fd, baseURL)
	if err != nil {
		return nil, errFactory.NewCatalogLoadError(configPath, err)
	}

	logger.Debug().Str("path", fd.Name()).Strs("file_types", catalog.Keys()).Msg("Loaded file type configuration")
	return catalog, nil
}
