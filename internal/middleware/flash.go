package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// FlashCookie carries a one-time notice across a redirect.
const FlashCookie = "fyyur_flash"

const flashKey = "flash"

// FlashKind selects how a notice is styled.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Notice is a one-time message shown on the next rendered page.
type Notice struct {
	Kind FlashKind `json:"kind"`
	Text string    `json:"text"`
}

// Flash reads the notice left by the previous request, clears the cookie and
// exposes the notice through Flashed.
func Flash(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(flashSecureKey, secure)
			cookie, err := c.Cookie(FlashCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			c.SetCookie(flashCookie("", secure, -1))
			if n, ok := decodeNotice(cookie.Value); ok {
				c.Set(flashKey, n)
			}
			return next(c)
		}
	}
}

const flashSecureKey = "flash_secure"

// SetFlash stores a notice for the next request.
func SetFlash(c echo.Context, kind FlashKind, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	payload, err := json.Marshal(Notice{Kind: kind, Text: text})
	if err != nil {
		return
	}
	secure, _ := c.Get(flashSecureKey).(bool)
	c.SetCookie(flashCookie(base64.RawURLEncoding.EncodeToString(payload), secure, 0))
}

// Flashed returns the notice read from the incoming request, if any.
func Flashed(c echo.Context) *Notice {
	if n, ok := c.Get(flashKey).(Notice); ok {
		return &n
	}
	return nil
}

func flashCookie(value string, secure bool, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     FlashCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func decodeNotice(raw string) (Notice, bool) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return Notice{}, false
	}
	var n Notice
	if err := json.Unmarshal(b, &n); err != nil || strings.TrimSpace(n.Text) == "" {
		return Notice{}, false
	}
	switch n.Kind {
	case FlashSuccess, FlashError:
		return n, true
	}
	return Notice{}, false
}
