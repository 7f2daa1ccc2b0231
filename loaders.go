package locale

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoader reads locale catalogs from JSON or YAML files. Each file holds
// a locale -> key -> value document; later files win on key conflicts.
type FileLoader struct {
	paths []string
}

// NewFileLoader builds a loader over the given file paths.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Catalogs, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, ErrNoLoaderPaths
	}

	catalogs := make(Catalogs)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("locale: read %s: %w", path, err)
		}

		src, err := decodeCatalogFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("locale: decode %s: %w", path, err)
		}
		mergeCatalogs(catalogs, src)
	}

	return catalogs, nil
}

func decodeCatalogFile(path string, data []byte) (Catalogs, error) {
	raw := make(map[string]map[string]string)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("json parse error: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog extension %q", ext)
	}

	catalogs := make(Catalogs, len(raw))
	for rawLocale, values := range raw {
		code := normalizeLocale(rawLocale)
		if code == "" || len(values) == 0 {
			continue
		}

		catalog := make(Catalog, len(values))
		for key, value := range values {
			catalog[key] = value
		}
		catalogs[code] = catalog
	}

	return catalogs, nil
}

func mergeCatalogs(dest, src Catalogs) {
	for code, catalog := range src {
		existing, ok := dest[code]
		if !ok {
			existing = make(Catalog, len(catalog))
			dest[code] = existing
		}
		for key, value := range catalog {
			existing[key] = value
		}
	}
}
