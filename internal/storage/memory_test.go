package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gallery-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func seedArtwork(t *testing.T, m *Memory, in CreateArtworkInput) uint {
	t.Helper()
	a, err := m.CreateArtwork(context.Background(), in)
	require.NoError(t, err)
	return a.ID
}

func TestMemoryCreateAssignsSequentialIDs(t *testing.T) {
	m := NewMemory()

	first := seedArtwork(t, m, CreateArtworkInput{Title: "One", Price: "10.00", ImageURL: "/1.webp"})
	second := seedArtwork(t, m, CreateArtworkInput{Title: "Two", Price: "20.00", ImageURL: "/2.webp"})

	assert.Equal(t, uint(1000), first)
	assert.Equal(t, uint(1001), second)
}

func TestMemoryListNewestFirst(t *testing.T) {
	m := NewMemory()
	seedArtwork(t, m, CreateArtworkInput{Title: "Old", Price: "10.00", ImageURL: "/old.webp"})
	seedArtwork(t, m, CreateArtworkInput{Title: "New", Price: "20.00", ImageURL: "/new.webp"})

	rows, err := m.ListArtworks(context.Background(), ArtworkFilters{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "New", rows[0].Title)
	assert.Equal(t, "Old", rows[1].Title)
}

func TestMemoryFilters(t *testing.T) {
	m := NewMemory()
	impressionism := "Impressionism"
	cubism := "Cubism"
	artistA := "artist-a"

	seedArtwork(t, m, CreateArtworkInput{Title: "Cheap", Price: "50.00", ImageURL: "/a.webp", Style: &impressionism, ArtistID: &artistA})
	seedArtwork(t, m, CreateArtworkInput{Title: "Mid", Price: "100.00", ImageURL: "/b.webp", Style: &cubism, ArtistID: &artistA, IsFeatured: boolPtr(true)})
	seedArtwork(t, m, CreateArtworkInput{Title: "Dear", Price: "999.99", ImageURL: "/c.webp", Style: &impressionism})

	ctx := context.Background()

	byStyle, err := m.ListArtworks(ctx, ArtworkFilters{Style: "Impressionism"})
	require.NoError(t, err)
	assert.Len(t, byStyle, 2)

	// Bounds are inclusive.
	inRange, err := m.ListArtworks(ctx, ArtworkFilters{MinPrice: floatPtr(100), MaxPrice: floatPtr(100)})
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, "Mid", inRange[0].Title)

	featured, err := m.ListArtworks(ctx, ArtworkFilters{Featured: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Mid", featured[0].Title)

	byArtist, err := m.ListArtworks(ctx, ArtworkFilters{ArtistID: "artist-a"})
	require.NoError(t, err)
	assert.Len(t, byArtist, 2)

	combined, err := m.ListArtworks(ctx, ArtworkFilters{Style: "Impressionism", MaxPrice: floatPtr(60)})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "Cheap", combined[0].Title)

	none, err := m.ListArtworks(ctx, ArtworkFilters{Style: "Baroque"})
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestMemoryUpdatePreservesUnsentFields(t *testing.T) {
	m := NewMemory()
	desc := "sunrise"
	id := seedArtwork(t, m, CreateArtworkInput{Title: "Sun", Description: &desc, Price: "150.00", ImageURL: "/sun.webp"})

	newPrice := "175.00"
	updated, err := m.UpdateArtwork(context.Background(), id, UpdateArtworkInput{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "175.00", updated.Price)
	assert.Equal(t, "Sun", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "sunrise", *updated.Description)
}

func TestMemoryUpdateAbsentID(t *testing.T) {
	m := NewMemory()
	title := "x"
	_, err := m.UpdateArtwork(context.Background(), 42, UpdateArtworkInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDeleteThenGet(t *testing.T) {
	m := NewMemory()
	id := seedArtwork(t, m, CreateArtworkInput{Title: "Gone", Price: "10.00", ImageURL: "/g.webp"})

	require.NoError(t, m.DeleteArtwork(context.Background(), id))

	_, err := m.GetArtworkByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, m.DeleteArtwork(context.Background(), id), ErrNotFound)
}

func TestMemoryConcurrentCreatesGetDistinctIDs(t *testing.T) {
	m := NewMemory()

	const n = 50
	ids := make(chan uint, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := m.CreateArtwork(context.Background(), CreateArtworkInput{
				Title: "Concurrent", Price: "10.00", ImageURL: "/c.webp",
			})
			assert.NoError(t, err)
			ids <- a.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[uint]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestMemoryConcurrentDoubleDelete(t *testing.T) {
	m := NewMemory()
	id := seedArtwork(t, m, CreateArtworkInput{Title: "Race", Price: "10.00", ImageURL: "/r.webp"})

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- m.DeleteArtwork(context.Background(), id)
		}()
	}
	wg.Wait()
	close(errs)

	var notFound int
	for err := range errs {
		if errors.Is(err, ErrNotFound) {
			notFound++
		} else {
			assert.NoError(t, err)
		}
	}
	assert.Equal(t, 1, notFound)
}

func TestMemoryUpsertUser(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	hash := "bcrypt-hash"
	created, err := m.UpsertUser(ctx, users.User{
		ID:           "u1",
		Email:        "ana@example.com",
		FirstName:    "Ana",
		AuthProvider: "local",
		PasswordHash: &hash,
	})
	require.NoError(t, err)
	assert.Equal(t, users.RoleUser, created.Role)

	// Same id updates profile fields without dropping the stored hash.
	updated, err := m.UpsertUser(ctx, users.User{
		ID:        "u1",
		Email:     "ana@example.com",
		FirstName: "Anastasia",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anastasia", updated.FirstName)

	stored, err := m.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, stored.PasswordHash)
	assert.Equal(t, hash, *stored.PasswordHash)
}

func TestMemoryArtistProfile(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.UpsertUser(ctx, users.User{ID: "plain", Email: "p@example.com"})
	require.NoError(t, err)
	_, err = m.UpsertUser(ctx, users.User{ID: "artist", Email: "a@example.com", IsArtist: true})
	require.NoError(t, err)

	artistID := "artist"
	seedArtwork(t, m, CreateArtworkInput{Title: "Owned", Price: "10.00", ImageURL: "/o.webp", ArtistID: &artistID})

	profile, err := m.GetArtistWithArtworks(ctx, "artist")
	require.NoError(t, err)
	require.Len(t, profile.Artworks, 1)
	assert.Equal(t, "Owned", profile.Artworks[0].Title)

	// A non-artist user is not an artist profile.
	_, err = m.GetArtistWithArtworks(ctx, "plain")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryFixtures(t *testing.T) {
	m := NewMemoryWithFixtures()
	ctx := context.Background()

	a, err := m.GetArtworkByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Starry Night", a.Title)
	assert.Equal(t, "299.00", a.Price)
	assert.True(t, a.IsFeatured)

	// Seeded ids never collide with generated ones.
	created := seedArtwork(t, m, CreateArtworkInput{Title: "Next", Price: "10.00", ImageURL: "/n.webp"})
	assert.Equal(t, uint(1000), created)

	st, err := m.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.TotalUsers)
	assert.Equal(t, int64(1), st.TotalArtists)
	assert.Equal(t, int64(2), st.TotalArtworks)
}
