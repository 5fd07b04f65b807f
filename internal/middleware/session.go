package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type sessionKey struct{}

// ConsoleSession tags every request with a console-session ID, minting
// a cookie on first contact. The assignment-selection flow is scoped
// by this ID so concurrent browser sessions never share a popup state.
func ConsoleSession(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := ""
			if c, err := r.Cookie(cookieName); err == nil {
				sid = c.Value
			}
			if sid == "" {
				sid = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := context.WithValue(r.Context(), sessionKey{}, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the console-session ID set by ConsoleSession, or
// "" when the middleware did not run.
func SessionID(ctx context.Context) string {
	if sid, ok := ctx.Value(sessionKey{}).(string); ok {
		return sid
	}
	return ""
}
