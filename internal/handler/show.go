package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/render"
	"github.com/iliyamo/fyyur/internal/repository"
)

// ListShows handles GET /shows.
func (h *Handler) ListShows(c echo.Context) error {
	items, err := h.dir.Shows(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "shows", render.Page{Title: "Shows", Data: items})
}

func (h *Handler) showFormPage(c echo.Context, f *form.Show) (render.Page, error) {
	opts, err := h.dir.ShowFormOptions(c.Request().Context())
	if err != nil {
		return render.Page{}, err
	}
	return render.Page{Title: "List a new show", Form: f, Data: opts}, nil
}

// NewShowForm handles GET /shows/create.
func (h *Handler) NewShowForm(c echo.Context) error {
	page, err := h.showFormPage(c, &form.Show{})
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "show_form", page)
}

// CreateShow handles POST /shows/create.  An unknown artist or venue is a
// form error, not a missing page.
func (h *Handler) CreateShow(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body").WithInternal(err)
	}
	f := form.ParseShow(values)
	errs := form.Errors(f.Validate())

	var show any
	if errs == nil {
		s, err := f.Model()
		if err != nil {
			return err
		}
		err = h.dir.CreateShow(c.Request().Context(), s)
		switch {
		case errors.Is(err, repository.ErrArtistNotFound):
			errs = map[string]string{"artist_id": "no such artist"}
		case errors.Is(err, repository.ErrVenueNotFound):
			errs = map[string]string{"venue_id": "no such venue"}
		case err != nil:
			h.log.WithError(err).Error("create show failed")
			return outcome(c, http.StatusInternalServerError, middleware.FlashError,
				"An error occurred. Show could not be listed.", "/", nil)
		}
		show = s
	}
	if errs != nil {
		page, err := h.showFormPage(c, f)
		if err != nil {
			return err
		}
		return invalid(c, "show_form", page, errs)
	}
	return outcome(c, http.StatusCreated, middleware.FlashSuccess, "Show was successfully listed!", "/", show)
}
