package session

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// Store issues the session ids the token store is keyed by.
var Store *session.Store = session.New(session.Config{
	Expiration:     time.Hour,
	CookieSameSite: "Lax",
	CookiePath:     "/",
	CookieHTTPOnly: true,
})
