// mindful/middlewares/session.go
package middlewares

import (
	"context"
	"net/http"

	"mindful/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const SessionIDKey contextKey = "session_id"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "mindful_session"

// Session reads the signed session cookie and puts the session id in the
// request context. When mint is true, requests without a valid cookie get a
// fresh session id and a new cookie; when false, they pass through with an
// empty session id (history for an unknown session is empty, not an error).
func Session(cfg config.Config, mint bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionFromCookie(r, cfg.SecretKey)
			if sessionID == "" && mint {
				sessionID = uuid.New().String()
				token, err := signSession(sessionID, cfg.SecretKey)
				if err == nil {
					http.SetCookie(w, &http.Cookie{
						Name:     SessionCookieName,
						Value:    token,
						Path:     "/",
						HttpOnly: true,
						SameSite: http.SameSiteLaxMode,
					})
				}
			}
			ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID extracts the session id placed in the context by Session.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}

func sessionFromCookie(r *http.Request, secret string) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return ""
	}
	return sessionID
}

func signSession(sessionID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
	})
	return token.SignedString([]byte(secret))
}
