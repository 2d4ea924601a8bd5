package middleware

import (
	"context"
	"net/http"

	"github.com/Parv9879/safare/internal/session"
)

const SessionCookie = "storefront_session"

// Session ensures every request carries a live session: an unknown or missing
// cookie starts a fresh guest session and sets the cookie. The session is
// stored in the request context for handlers.
func Session(mgr *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session

			if c, err := r.Cookie(SessionCookie); err == nil {
				if s, ok := mgr.Get(c.Value); ok {
					sess = s
				}
			}

			if sess == nil {
				sess = mgr.Start()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), ctxSession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) *session.Session {
	if v := ctx.Value(ctxSession); v != nil {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}
