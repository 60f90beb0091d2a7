package logging

import "context"

type contextKey string

const (
	sessionKey contextKey = "session"
	projectKey contextKey = "project"
)

// WithSession adds a multiplexer session name to the context. This is the
// human readable name being applied ("my-app-test"), not a session id, so it
// changes over the life of a session.
func WithSession(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, sessionKey, name)
}

// WithProject adds the resolved project name to the context.
func WithProject(ctx context.Context, project string) context.Context {
	return context.WithValue(ctx, projectKey, project)
}

// GetSession retrieves the session name from the context.
// Returns empty string if not present.
func GetSession(ctx context.Context) string {
	if v, ok := ctx.Value(sessionKey).(string); ok {
		return v
	}
	return ""
}

// GetProject retrieves the project name from the context.
// Returns empty string if not present.
func GetProject(ctx context.Context) string {
	if v, ok := ctx.Value(projectKey).(string); ok {
		return v
	}
	return ""
}
