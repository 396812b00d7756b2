// Package handler contains the HTTP handlers of the booking directory.  Every
// handler renders an HTML page by default and answers with the same
// view-model as JSON when the client asks for application/json.
package handler

import (
	"errors"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/render"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
)

// Handler bundles the directory service for the route handlers.
type Handler struct {
	dir *service.Directory
	log logrus.FieldLogger
}

// New constructs a Handler and panics if the directory is nil.
func New(dir *service.Directory, log logrus.FieldLogger) *Handler {
	if dir == nil {
		panic("nil directory passed to handler.New")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{dir: dir, log: log}
}

// Home renders the landing page.
func (h *Handler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home", render.Page{})
}

// parseID reads the :id path parameter.  Anything that is not a positive
// integer cannot name a record, so it is reported as not found.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound)
	}
	return id, nil
}

// WantsJSON reports whether the client prefers a JSON response.
func WantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// respond writes page as HTML or its Data as JSON.
func respond(c echo.Context, status int, name string, page render.Page) error {
	if WantsJSON(c) {
		return c.JSON(status, page.Data)
	}
	return c.Render(status, name, page)
}

// notFound maps a repository miss to a 404 and passes other errors through.
func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound).WithInternal(err)
	}
	return err
}

// outcome finishes a write: a flash plus a 303 redirect for browsers, a JSON
// body for API clients.
func outcome(c echo.Context, status int, kind middleware.FlashKind, text, redirect string, body any) error {
	if WantsJSON(c) {
		if kind == middleware.FlashError {
			return c.JSON(status, echo.Map{"error": text})
		}
		return c.JSON(status, body)
	}
	middleware.SetFlash(c, kind, text)
	return c.Redirect(http.StatusSeeOther, redirect)
}

// invalid answers a failed form validation with 422: the form page is shown
// again with the field errors.
func invalid(c echo.Context, name string, page render.Page, errs map[string]string) error {
	if WantsJSON(c) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}
	page.Errors = errs
	page.Flash = &middleware.Notice{
		Kind: middleware.FlashError,
		Text: "Please check the highlighted fields: " + strings.Join(slices.Sorted(maps.Keys(errs)), ", ") + ".",
	}
	return c.Render(http.StatusUnprocessableEntity, name, page)
}
