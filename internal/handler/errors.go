package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/render"
	"github.com/iliyamo/fyyur/internal/repository"
)

type errorView struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

// HTTPErrorHandler renders the 404 and 500 pages, or a JSON error body for
// API clients.  Server errors are logged with the request id.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var msg string
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		if s, ok := he.Message.(string); ok && s != http.StatusText(code) {
			msg = s
		}
	case errors.Is(err, repository.ErrNotFound):
		code = http.StatusNotFound
	}
	if msg == "" {
		switch code {
		case http.StatusNotFound:
			msg = "The page you were looking for does not exist."
		case http.StatusInternalServerError:
			msg = "Something went wrong on our side. Please try again."
		default:
			msg = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		h.log.WithError(err).WithFields(logrus.Fields{
			"uri":        c.Request().RequestURI,
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		}).Error("request failed")
	}

	view := errorView{Code: code, Message: msg}
	var werr error
	switch {
	case c.Request().Method == http.MethodHead:
		werr = c.NoContent(code)
	case WantsJSON(c):
		werr = c.JSON(code, view)
	default:
		werr = c.Render(code, "error", render.Page{Title: fmt.Sprint(code), Data: view})
	}
	if werr != nil {
		h.log.WithError(werr).Warn("write error response")
	}
}
