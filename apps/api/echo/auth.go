package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edustack/studyhub/core/session"
)

// requireAuth guards mutating routes: the request must carry the live
// session's bearer token, and the token subject must match the session user.
func requireAuth(verifier TokenVerifier, mgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return errUnauthorized
			}
			token := strings.TrimPrefix(header, "Bearer ")

			sub, err := verifier.VerifyToken(token)
			if err != nil {
				return errUnauthorized
			}
			usr, ok := mgr.Current()
			if !ok || usr.ID != sub {
				return errUnauthorized
			}
			return next(ctx)
		}
	}
}

// actingUser reads the session user for attribution; zero User when anonymous.
func actingUser(mgr *session.Manager) session.User {
	usr, _ := mgr.Current()
	return usr
}
