package handler

import (
	"net/http"
	"time"

	"github.com/araselthenilo/latihan-backend-uts/internal/api/middleware"
)

const sessionCookieMaxAge = 3600

// SessionCookie builds the session cookie with the attributes for the
// current environment.
type SessionCookie struct {
	secure   bool
	sameSite http.SameSite
}

func NewSessionCookie(production bool) SessionCookie {
	if production {
		return SessionCookie{secure: true, sameSite: http.SameSiteStrictMode}
	}
	return SessionCookie{sameSite: http.SameSiteLaxMode}
}

func (s SessionCookie) issue(token string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite,
	}
}

func (s SessionCookie) clear() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite,
	}
}
