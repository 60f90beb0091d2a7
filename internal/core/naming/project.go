package naming

import (
	"strings"

	"github.com/colonyops/zellij-namer/internal/core/manifest"
)

// DefaultProject is used when a path has no final segment.
const DefaultProject = "project"

// ExtractProjectName returns the sanitized project name.
//
// A manifest with a non-empty name wins; scoped names ("@org/pkg") are
// unwrapped to the part after the first "/". Without one, the last "/"
// separated segment of path is used, falling back to DefaultProject.
func ExtractProjectName(path string, meta *manifest.Package) string {
	if meta != nil && meta.Name != "" {
		name := meta.Name
		if strings.HasPrefix(name, "@") {
			if i := strings.Index(name, "/"); i >= 0 {
				name = name[i+1:]
			}
		}
		return Sanitize(name)
	}

	base := path[strings.LastIndex(path, "/")+1:]
	if base == "" {
		base = DefaultProject
	}
	return Sanitize(base)
}
