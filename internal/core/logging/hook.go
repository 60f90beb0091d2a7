package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the session and project stored in an event's context
// onto the event.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if session := GetSession(ctx); session != "" {
		e.Str("session", session)
	}

	if project := GetProject(ctx); project != "" {
		e.Str("project", project)
	}
}
