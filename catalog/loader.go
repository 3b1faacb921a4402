package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mwantia/cmdargs/log"
)

const schemaExtension = ".hcl"

// Loader reads schema files from the local filesystem.
type Loader struct {
	logger *log.Logger
}

func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Nop()
	}
	return &Loader{
		logger: logger.Named("catalog"),
	}
}

// LoadFiles decodes every path. Directories are walked for *.hcl files and
// paths that do not exist are skipped.
func (l *Loader) LoadFiles(ctx context.Context, paths ...string) ([]*Schema, error) {
	var files []string
	for _, path := range paths {
		found, err := findSchemaFiles(path)
		if err != nil {
			if os.IsNotExist(err) {
				l.logger.Warn("Schema path %s does not exist, skipping", path)
				continue
			}
			return nil, fmt.Errorf("failed to find schema files in %s: %w", path, err)
		}
		files = append(files, found...)
	}

	var schemas []*Schema
	seen := make(map[string]string)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		src, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}

		decoded, err := Decode(file, src)
		if err != nil {
			return nil, err
		}
		if schemas, err = merge(schemas, seen, decoded); err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded %d command schemas from %s", len(decoded), file)
	}

	return schemas, nil
}

func findSchemaFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == schemaExtension {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}
