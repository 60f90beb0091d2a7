package naming

import (
	"strings"

	"github.com/colonyops/zellij-namer/internal/core/intent"
)

// Length limits for the parts of a session name.
const (
	MaxProjectLen     = 20
	MaxTagLen         = 15
	MaxSessionNameLen = 48
)

// BuildSessionName composes "<project>-<intent>[-<tag>]".
//
// The project is sanitized and cut to MaxProjectLen. A tag that is blank
// after trimming is ignored; otherwise it is sanitized, cut to MaxTagLen and
// appended when something survives. The whole name is cut to
// MaxSessionNameLen last, which may clip the tag.
func BuildSessionName(project string, in intent.Intent, tag string) string {
	name := truncate(Sanitize(project), MaxProjectLen) + "-" + string(in)

	if strings.TrimSpace(tag) != "" {
		if t := truncate(Sanitize(tag), MaxTagLen); t != "" {
			name += "-" + t
		}
	}

	return truncate(name, MaxSessionNameLen)
}
