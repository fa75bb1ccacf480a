package api

import (
	"context"
)

type keyType string

const diagnosticsSubjectKey keyType = "diagnosticsSubject"

// ctxWithDiagnosticsSubject adds the authenticated token subject to the context
func ctxWithDiagnosticsSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, diagnosticsSubjectKey, subject)
}

// ctxGetDiagnosticsSubject returns the token subject, or "" when the route is unguarded
func ctxGetDiagnosticsSubject(ctx context.Context) string {
	subject, _ := ctx.Value(diagnosticsSubjectKey).(string)
	return subject
}
