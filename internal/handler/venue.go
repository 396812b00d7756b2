package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/render"
	"github.com/iliyamo/fyyur/internal/repository"
)

// ListVenues handles GET /venues: venues grouped by city.
func (h *Handler) ListVenues(c echo.Context) error {
	areas, err := h.dir.VenueAreas(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "venues", render.Page{Title: "Venues", Data: areas})
}

// SearchVenues handles POST /venues/search.
func (h *Handler) SearchVenues(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := h.dir.SearchVenues(c.Request().Context(), term)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "search_venues", render.Page{Title: "Venue search", Data: res, SearchTerm: term})
}

// ShowVenue handles GET /venues/:id.
func (h *Handler) ShowVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	detail, err := h.dir.VenueDetail(c.Request().Context(), id)
	if err != nil {
		return notFound(err)
	}
	return respond(c, http.StatusOK, "venue", render.Page{Title: detail.Name, Data: detail})
}

func venueFormPage(title, action string, f *form.Venue) render.Page {
	return render.Page{Title: title, Action: action, Form: f}
}

// NewVenueForm handles GET /venues/create.
func (h *Handler) NewVenueForm(c echo.Context) error {
	return c.Render(http.StatusOK, "venue_form", venueFormPage("List a new venue", "/venues/create", &form.Venue{}))
}

// CreateVenue handles POST /venues/create.
func (h *Handler) CreateVenue(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body").WithInternal(err)
	}
	f := form.ParseVenue(values)
	if err := f.Validate(); err != nil {
		return invalid(c, "venue_form", venueFormPage("List a new venue", "/venues/create", f), form.Errors(err))
	}

	v := f.Model()
	if err := h.dir.CreateVenue(c.Request().Context(), v); err != nil {
		h.log.WithError(err).WithField("name", v.Name).Error("create venue failed")
		return outcome(c, http.StatusInternalServerError, middleware.FlashError,
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", v.Name), "/", nil)
	}
	return outcome(c, http.StatusCreated, middleware.FlashSuccess,
		fmt.Sprintf("Venue %s was successfully listed!", v.Name), "/", v)
}

// EditVenueForm handles GET /venues/:id/edit.
func (h *Handler) EditVenueForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	v, err := h.dir.Venue(c.Request().Context(), id)
	if err != nil {
		return notFound(err)
	}
	return respond(c, http.StatusOK, "venue_form", render.Page{
		Title:  "Edit venue " + v.Name,
		Action: fmt.Sprintf("/venues/%d/edit", id),
		Form:   form.VenueFrom(v),
		Data:   v,
	})
}

// UpdateVenue handles POST /venues/:id/edit.  Only the posted fields change.
func (h *Handler) UpdateVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body").WithInternal(err)
	}
	ctx := c.Request().Context()
	f := form.ParseVenue(values)
	if err := f.ValidatePatch(); err != nil {
		if _, gerr := h.dir.Venue(ctx, id); gerr != nil {
			return notFound(gerr)
		}
		return invalid(c, "venue_form", venueFormPage("Edit venue", fmt.Sprintf("/venues/%d/edit", id), f), form.Errors(err))
	}

	detail := fmt.Sprintf("/venues/%d", id)
	v, err := h.dir.UpdateVenue(ctx, id, f.Patch())
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound(err)
	case err != nil:
		h.log.WithError(err).WithField("venue_id", id).Error("update venue failed")
		name := f.Name
		if name == "" {
			if cur, gerr := h.dir.Venue(ctx, id); gerr == nil {
				name = cur.Name
			}
		}
		return outcome(c, http.StatusInternalServerError, middleware.FlashError,
			fmt.Sprintf("An error occurred. Venue %s could not be updated.", name), detail, nil)
	}
	return outcome(c, http.StatusOK, middleware.FlashSuccess,
		fmt.Sprintf("Venue %s was successfully updated!", v.Name), detail, v)
}

// DeleteVenue handles DELETE /venues/:id (or POST with _method=DELETE).
func (h *Handler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	err = h.dir.DeleteVenue(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound(err)
	case err != nil:
		h.log.WithError(err).WithField("venue_id", id).Error("delete venue failed")
		return outcome(c, http.StatusInternalServerError, middleware.FlashError,
			"An error occurred. The venue could not be deleted.", fmt.Sprintf("/venues/%d", id), nil)
	}
	return outcome(c, http.StatusOK, middleware.FlashSuccess,
		"Venue was successfully deleted.", "/", echo.Map{"success": true})
}
