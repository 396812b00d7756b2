package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenresValueAndScan(t *testing.T) {
	v, err := Genres{"Jazz", "Folk"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Jazz","Folk"]`, v)

	nilValue, err := Genres(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", nilValue)

	var g Genres
	require.NoError(t, g.Scan([]byte(`["Rock n Roll"]`)))
	assert.Equal(t, Genres{"Rock n Roll"}, g)

	require.NoError(t, g.Scan(nil))
	assert.Empty(t, g)

	assert.Error(t, g.Scan(42))
	assert.Error(t, g.Scan("not json"))
}

func TestGenresNormalize(t *testing.T) {
	got := Genres{" Jazz ", "", "Jazz", "Blues"}.Normalize()
	assert.Equal(t, Genres{"Jazz", "Blues"}, got)
}

func TestVenuePatchApply(t *testing.T) {
	v := Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Phone: "123-123-1234"}
	name := "The Hop"
	seeking := true
	VenuePatch{Name: &name, SeekingTalent: &seeking}.Apply(&v)

	assert.Equal(t, "The Hop", v.Name)
	assert.True(t, v.SeekingTalent)
	assert.Equal(t, "San Francisco", v.City)
	assert.Equal(t, "123-123-1234", v.Phone)
}

func TestArtistPatchApplyGenres(t *testing.T) {
	a := Artist{Name: "Guns N Petals", Genres: Genres{"Rock n Roll"}}
	g := Genres{"Jazz"}
	ArtistPatch{Genres: &g}.Apply(&a)
	assert.Equal(t, Genres{"Jazz"}, a.Genres)
	assert.Equal(t, "Guns N Petals", a.Name)
}

func TestShowIsUpcoming(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	assert.True(t, Show{StartTime: now.Add(time.Second)}.IsUpcoming(now))
	assert.False(t, Show{StartTime: now}.IsUpcoming(now))
	assert.False(t, Show{StartTime: now.Add(-time.Hour)}.IsUpcoming(now))
}
