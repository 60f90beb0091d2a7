// Package manifest reads project metadata from a package.json file.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the manifest file looked up in a project directory.
const FileName = "package.json"

// Package is the subset of package.json used for naming.
type Package struct {
	Name string `json:"name"`
}

// Read loads the manifest in dir. A missing manifest is not an error and
// returns nil.
func Read(dir string) (*Package, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	return &pkg, nil
}
