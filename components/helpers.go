package components

import (
	"authform/internal/constants"
	"context"
)

// GetCsrfToken returns the token the csrf middleware stored for this request.
func GetCsrfToken(ctx context.Context) string {
	if csrfToken, ok := ctx.Value(constants.CsrfTokenContextKey).(string); ok {
		return csrfToken
	}
	return ""
}
