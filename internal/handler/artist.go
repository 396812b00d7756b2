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

// ListArtists handles GET /artists.
func (h *Handler) ListArtists(c echo.Context) error {
	refs, err := h.dir.Artists(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "artists", render.Page{Title: "Artists", Data: refs})
}

// SearchArtists handles POST /artists/search.
func (h *Handler) SearchArtists(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := h.dir.SearchArtists(c.Request().Context(), term)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "search_artists", render.Page{Title: "Artist search", Data: res, SearchTerm: term})
}

// ShowArtist handles GET /artists/:id.
func (h *Handler) ShowArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	detail, err := h.dir.ArtistDetail(c.Request().Context(), id)
	if err != nil {
		return notFound(err)
	}
	return respond(c, http.StatusOK, "artist", render.Page{Title: detail.Name, Data: detail})
}

func artistFormPage(title, action string, f *form.Artist) render.Page {
	return render.Page{Title: title, Action: action, Form: f}
}

// NewArtistForm handles GET /artists/create.
func (h *Handler) NewArtistForm(c echo.Context) error {
	return c.Render(http.StatusOK, "artist_form", artistFormPage("List a new artist", "/artists/create", &form.Artist{}))
}

// CreateArtist handles POST /artists/create.
func (h *Handler) CreateArtist(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body").WithInternal(err)
	}
	f := form.ParseArtist(values)
	if err := f.Validate(); err != nil {
		return invalid(c, "artist_form", artistFormPage("List a new artist", "/artists/create", f), form.Errors(err))
	}

	a := f.Model()
	if err := h.dir.CreateArtist(c.Request().Context(), a); err != nil {
		h.log.WithError(err).WithField("name", a.Name).Error("create artist failed")
		return outcome(c, http.StatusInternalServerError, middleware.FlashError,
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", a.Name), "/", nil)
	}
	return outcome(c, http.StatusCreated, middleware.FlashSuccess,
		fmt.Sprintf("Artist %s was successfully listed!", a.Name), "/", a)
}

// EditArtistForm handles GET /artists/:id/edit.
func (h *Handler) EditArtistForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	a, err := h.dir.Artist(c.Request().Context(), id)
	if err != nil {
		return notFound(err)
	}
	return respond(c, http.StatusOK, "artist_form", render.Page{
		Title:  "Edit artist " + a.Name,
		Action: fmt.Sprintf("/artists/%d/edit", id),
		Form:   form.ArtistFrom(a),
		Data:   a,
	})
}

// UpdateArtist handles POST /artists/:id/edit.
func (h *Handler) UpdateArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body").WithInternal(err)
	}
	ctx := c.Request().Context()
	f := form.ParseArtist(values)
	if err := f.ValidatePatch(); err != nil {
		if _, gerr := h.dir.Artist(ctx, id); gerr != nil {
			return notFound(gerr)
		}
		return invalid(c, "artist_form", artistFormPage("Edit artist", fmt.Sprintf("/artists/%d/edit", id), f), form.Errors(err))
	}

	detail := fmt.Sprintf("/artists/%d", id)
	a, err := h.dir.UpdateArtist(ctx, id, f.Patch())
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound(err)
	case err != nil:
		h.log.WithError(err).WithField("artist_id", id).Error("update artist failed")
		name := f.Name
		if name == "" {
			if cur, gerr := h.dir.Artist(ctx, id); gerr == nil {
				name = cur.Name
			}
		}
		return outcome(c, http.StatusInternalServerError, middleware.FlashError,
			fmt.Sprintf("An error occurred. Artist %s could not be updated.", name), detail, nil)
	}
	return outcome(c, http.StatusOK, middleware.FlashSuccess,
		fmt.Sprintf("Artist %s was successfully updated!", a.Name), detail, a)
}
