package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/render"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
)

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

type testApp struct {
	e     *echo.Echo
	db    *sqlx.DB
	dir   *service.Directory
	store *repository.Store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, database.Options{Dialect: database.SQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(ctx, db, database.SQLite))

	log, _ := logtest.NewNullLogger()
	store := repository.NewStore(db, database.SQLite)
	dir := service.NewDirectory(store, service.WithClock(func() time.Time { return now }), service.WithLogger(log))
	renderer, err := render.New()
	require.NoError(t, err)

	e := New(Options{
		Handler:   handler.New(dir, log),
		Renderer:  renderer,
		Log:       log,
		RateLimit: config.RateLimitConfig{Enabled: false},
	})
	return &testApp{e: e, db: db, dir: dir, store: store}
}

func (a *testApp) do(method, target string, form url.Values, jsonResp bool, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if jsonResp {
		req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) venue(t *testing.T, name, city, state string) *model.Venue {
	t.Helper()
	v := &model.Venue{Name: name, Address: "1 Main St", City: city, State: state, Genres: model.Genres{"Jazz"}}
	require.NoError(t, a.dir.CreateVenue(context.Background(), v))
	return v
}

func (a *testApp) artist(t *testing.T, name string) *model.Artist {
	t.Helper()
	ar := &model.Artist{Name: name, City: "San Francisco", State: "CA", Genres: model.Genres{"Jazz"}}
	require.NoError(t, a.dir.CreateArtist(context.Background(), ar))
	return ar
}

func (a *testApp) show(t *testing.T, artistID, venueID int64, at time.Time) {
	t.Helper()
	require.NoError(t, a.dir.CreateShow(context.Background(), &model.Show{ArtistID: artistID, VenueID: venueID, StartTime: at}))
}

// failWrites makes every statement of kind op ("INSERT", "UPDATE", "DELETE")
// against table abort, standing in for a database that rejects the write.
func (a *testApp) failWrites(t *testing.T, op, table string) {
	t.Helper()
	trigger := "fail_" + strings.ToLower(op) + "_" + table
	_, err := a.db.Exec(`CREATE TRIGGER ` + trigger + ` BEFORE ` + op + ` ON ` + table + `
		BEGIN SELECT RAISE(ABORT, 'write rejected'); END`)
	require.NoError(t, err)
}

// followFlash renders the redirect target with the flash cookie of rec.
func (a *testApp) followFlash(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	next := a.do(http.MethodGet, rec.Header().Get(echo.HeaderLocation), nil, false, flashCookie(t, rec))
	require.Equal(t, http.StatusOK, next.Code)
	return next.Body.String()
}

func flashCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.FlashCookie && c.Value != "" {
			return c
		}
	}
	t.Fatalf("no flash cookie in response")
	return nil
}

func venueForm() url.Values {
	return url.Values{
		"name":    {"The Dueling Pianos Bar"},
		"address": {"335 Delancey Street"},
		"city":    {"New York"},
		"state":   {"NY"},
		"phone":   {"914-003-1132"},
		"genres":  {"Classical", "R&B"},
	}
}

func TestHomeAndHealth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post a venue")

	rec = app.do(http.MethodGet, "/healthz", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = app.do(http.MethodGet, "/metrics", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fyyur_http_requests_total")
}

func TestVenuesGroupedByCity(t *testing.T) {
	app := newTestApp(t)
	hop := app.venue(t, "The Musical Hop", "San Francisco", "CA")
	app.venue(t, "The Dueling Pianos Bar", "New York", "NY")
	app.venue(t, "Park Square", "San Francisco", "CA")
	ar := app.artist(t, "Guns N Petals")
	app.show(t, ar.ID, hop.ID, now.Add(time.Hour))

	rec := app.do(http.MethodGet, "/venues", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var areas []service.Area
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &areas))
	require.Len(t, areas, 2)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Len(t, areas[0].Venues, 2)
	assert.Equal(t, 1, areas[0].Venues[0].NumUpcomingShows)

	rec = app.do(http.MethodGet, "/venues", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Musical Hop")
	assert.Contains(t, rec.Body.String(), "New York, NY")
}

func TestVenueDetail(t *testing.T) {
	app := newTestApp(t)
	v := app.venue(t, "The Musical Hop", "San Francisco", "CA")
	ar := app.artist(t, "Guns N Petals")
	app.show(t, ar.ID, v.ID, now.Add(-24*time.Hour))
	app.show(t, ar.ID, v.ID, now.Add(24*time.Hour))

	rec := app.do(http.MethodGet, "/venues/1", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "The Musical Hop", body["name"])
	assert.EqualValues(t, 1, body["past_shows_count"])
	assert.EqualValues(t, 1, body["upcoming_shows_count"])

	rec = app.do(http.MethodGet, "/venues/1", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1 Upcoming Show")
	assert.Contains(t, rec.Body.String(), "Friday October, 16, 2026 at 12:00PM")
}

func TestNotFoundPages(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{"/venues/999", "/artists/999", "/artists/abc", "/venues/1/edit", "/nowhere"} {
		rec := app.do(http.MethodGet, target, nil, false)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "does not exist", target)
	}

	rec := app.do(http.MethodGet, "/venues/999", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":404,"error":"The page you were looking for does not exist."}`, rec.Body.String())
}

func TestCreateVenueFlow(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	rec := app.do(http.MethodGet, "/venues/create", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="seeking_talent"`)

	rec = app.do(http.MethodPost, "/venues/create", venueForm(), false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	cookie := flashCookie(t, rec)

	n, err := app.store.Venues().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rec = app.do(http.MethodGet, "/", nil, false, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Venue The Dueling Pianos Bar was successfully listed!")
}

func TestCreateVenueValidationFailure(t *testing.T) {
	app := newTestApp(t)
	form := venueForm()
	form.Del("city")

	rec := app.do(http.MethodPost, "/venues/create", form, false)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please check the highlighted fields: city.")
	assert.Contains(t, rec.Body.String(), "The Dueling Pianos Bar")

	rec = app.do(http.MethodPost, "/venues/create", form, true)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":{"city":"cannot be blank"}}`, rec.Body.String())

	n, err := app.store.Venues().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEditVenueKeepsUnpostedFields(t *testing.T) {
	app := newTestApp(t)
	v := app.venue(t, "The Musical Hop", "San Francisco", "CA")

	rec := app.do(http.MethodGet, "/venues/1/edit", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="The Musical Hop"`)

	rec = app.do(http.MethodPost, "/venues/1/edit", url.Values{"phone": {"555-0100"}}, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/venues/1", rec.Header().Get(echo.HeaderLocation))

	stored, err := app.dir.Venue(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-0100", stored.Phone)
	assert.Equal(t, "The Musical Hop", stored.Name)
	assert.Equal(t, model.Genres{"Jazz"}, stored.Genres)

	rec = app.do(http.MethodPost, "/venues/42/edit", url.Values{"phone": {"1"}}, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteVenueViaMethodOverride(t *testing.T) {
	app := newTestApp(t)
	v := app.venue(t, "The Musical Hop", "San Francisco", "CA")
	ar := app.artist(t, "Guns N Petals")
	app.show(t, ar.ID, v.ID, now)

	rec := app.do(http.MethodPost, "/venues/1", url.Values{"_method": {"DELETE"}}, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	rec = app.do(http.MethodGet, "/venues/1", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(http.MethodDelete, "/venues/1", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArtistsListingSearchAndEdit(t *testing.T) {
	app := newTestApp(t)
	app.artist(t, "Guns N Petals")
	app.artist(t, "Matt Quevedo")

	rec := app.do(http.MethodGet, "/artists/create", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="seeking_venue"`)

	rec = app.do(http.MethodGet, "/artists", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Guns N Petals"},{"id":2,"name":"Matt Quevedo"}]`, rec.Body.String())

	rec = app.do(http.MethodPost, "/artists/search", url.Values{"search_term": {"A"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var res service.SearchResult[service.ArtistHit]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Count)

	rec = app.do(http.MethodPost, "/artists/search", url.Values{"search_term": {"band"}}, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `Number of search results for "band": 0`)

	rec = app.do(http.MethodPost, "/artists/2/edit", url.Values{"seeking_venue": {"false", "y"}, "seeking_description": {"Anywhere"}}, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	a, err := app.dir.Artist(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, a.SeekingVenue)
	assert.Equal(t, "Anywhere", a.SeekingDescription)
}

func TestVenueSearch(t *testing.T) {
	app := newTestApp(t)
	app.venue(t, "The Musical Hop", "San Francisco", "CA")
	app.venue(t, "Park Square Live Music & Coffee", "San Francisco", "CA")

	rec := app.do(http.MethodPost, "/venues/search", url.Values{"search_term": {"Music"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var res service.SearchResult[service.VenueHit]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Count)
}

func TestCreateShow(t *testing.T) {
	app := newTestApp(t)
	v := app.venue(t, "The Musical Hop", "San Francisco", "CA")
	ar := app.artist(t, "Guns N Petals")

	rec := app.do(http.MethodGet, "/shows/create", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Guns N Petals")

	bad := url.Values{"artist_id": {"99"}, "venue_id": {"1"}, "start_time": {"2026-10-20 20:00:00"}}
	rec = app.do(http.MethodPost, "/shows/create", bad, true)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":{"artist_id":"no such artist"}}`, rec.Body.String())

	good := url.Values{"artist_id": {"1"}, "venue_id": {"1"}, "start_time": {"2026-10-20T20:00"}}
	rec = app.do(http.MethodPost, "/shows/create", good, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = app.do(http.MethodGet, "/shows", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []service.ShowItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, service.ShowItem{
		VenueID: v.ID, VenueName: "The Musical Hop",
		ArtistID: ar.ID, ArtistName: "Guns N Petals",
		StartTime: "2026/10/20, 20:00:00",
	}, items[0])
}

func TestCreateVenueStoreFailure(t *testing.T) {
	app := newTestApp(t)
	app.failWrites(t, "INSERT", "venues")

	rec := app.do(http.MethodPost, "/venues/create", venueForm(), false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, app.followFlash(t, rec), "An error occurred. Venue The Dueling Pianos Bar could not be listed.")

	rec = app.do(http.MethodPost, "/venues/create", venueForm(), true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"An error occurred. Venue The Dueling Pianos Bar could not be listed."}`, rec.Body.String())

	n, err := app.store.Venues().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpdateVenueStoreFailure(t *testing.T) {
	app := newTestApp(t)
	v := app.venue(t, "The Musical Hop", "San Francisco", "CA")
	app.failWrites(t, "UPDATE", "venues")

	rec := app.do(http.MethodPost, "/venues/1/edit", url.Values{"phone": {"555-0100"}}, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/venues/1", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, app.followFlash(t, rec), "An error occurred. Venue The Musical Hop could not be updated.")

	stored, err := app.dir.Venue(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Phone)
}

func TestDeleteVenueStoreFailureKeepsShows(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	v := app.venue(t, "The Musical Hop", "San Francisco", "CA")
	ar := app.artist(t, "Guns N Petals")
	app.show(t, ar.ID, v.ID, now.Add(time.Hour))
	app.failWrites(t, "DELETE", "venues")

	rec := app.do(http.MethodPost, "/venues/1", url.Values{"_method": {"DELETE"}}, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/venues/1", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, app.followFlash(t, rec), "An error occurred. The venue could not be deleted.")

	venues, err := app.store.Venues().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, venues)
	// the show delete ran first and must have been rolled back
	shows, err := app.store.Shows().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, shows)
}

func TestArtistStoreFailures(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	app.artist(t, "Matt Quevedo")
	app.failWrites(t, "INSERT", "artists")
	app.failWrites(t, "UPDATE", "artists")

	form := url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Rock n Roll"},
	}
	rec := app.do(http.MethodPost, "/artists/create", form, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, app.followFlash(t, rec), "An error occurred. Artist Guns N Petals could not be listed.")

	n, err := app.store.Artists().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rec = app.do(http.MethodPost, "/artists/1/edit", url.Values{"city": {"Austin"}}, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/artists/1", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, app.followFlash(t, rec), "An error occurred. Artist Matt Quevedo could not be updated.")

	a, err := app.dir.Artist(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "San Francisco", a.City)
}

func TestCreateShowStoreFailure(t *testing.T) {
	app := newTestApp(t)
	app.venue(t, "The Musical Hop", "San Francisco", "CA")
	app.artist(t, "Guns N Petals")
	app.failWrites(t, "INSERT", "shows")

	form := url.Values{"artist_id": {"1"}, "venue_id": {"1"}, "start_time": {"2026-10-20 20:00:00"}}
	rec := app.do(http.MethodPost, "/shows/create", form, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, app.followFlash(t, rec), "An error occurred. Show could not be listed.")

	n, err := app.store.Shows().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
