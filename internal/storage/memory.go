package storage

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/users"
)

// Memory is the development fallback Store: an in-process, mutex-guarded
// table image. It is selected once at startup when the database is
// unreachable outside production.
type Memory struct {
	mu       sync.RWMutex
	nextID   uint
	artworks []artworks.Artwork // newest first
	users    []users.User       // newest first
}

func NewMemory() *Memory {
	return &Memory{nextID: 1000}
}

// NewMemoryWithFixtures seeds the demo records the storefront needs so that
// development flows work without a database.
func NewMemoryWithFixtures() *Memory {
	m := NewMemory()
	now := time.Now()

	demoBio := "House collection of the gallery."
	m.users = []users.User{{
		ID:           "artist-demo",
		Email:        "gallery@example.com",
		FirstName:    "Galleria",
		LastName:     "House",
		Bio:          &demoBio,
		IsArtist:     true,
		Role:         users.RoleAdmin,
		AuthProvider: "local",
		CreatedAt:    now,
		UpdatedAt:    now,
	}}

	desc := "Vincent van Gogh reproduction"
	style := "Post-Impressionism"
	medium := "Oil on canvas"
	width, height, year := 92, 73, 1889
	artistID := "artist-demo"
	m.artworks = []artworks.Artwork{{
		ID:          1,
		Title:       "Starry Night",
		Description: &desc,
		Price:       "299.00",
		ImageURL:    "/Starry-Night-canvas-Vincent-van-Gogh-New-1889.webp",
		ArtistID:    &artistID,
		Style:       &style,
		Medium:      &medium,
		Width:       &width,
		Height:      &height,
		Year:        &year,
		IsAvailable: true,
		IsFeatured:  true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}}
	return m
}

func priceValue(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func matchesFilters(a *artworks.Artwork, f ArtworkFilters) bool {
	if f.Style != "" && (a.Style == nil || *a.Style != f.Style) {
		return false
	}
	if f.ArtistID != "" && (a.ArtistID == nil || *a.ArtistID != f.ArtistID) {
		return false
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		v, ok := priceValue(a.Price)
		if !ok {
			return false
		}
		if f.MinPrice != nil && v < *f.MinPrice {
			return false
		}
		if f.MaxPrice != nil && v > *f.MaxPrice {
			return false
		}
	}
	if f.Featured != nil && a.IsFeatured != *f.Featured {
		return false
	}
	return true
}

// ------------------------------
// Artworks
// ------------------------------

func (m *Memory) ListArtworks(_ context.Context, f ArtworkFilters) ([]artworks.Artwork, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []artworks.Artwork{}
	for i := range m.artworks {
		if matchesFilters(&m.artworks[i], f) {
			out = append(out, m.artworks[i])
		}
	}
	return out, nil
}

func (m *Memory) GetArtworkByID(_ context.Context, id uint) (*artworks.Artwork, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.artworks {
		if m.artworks[i].ID == id {
			a := m.artworks[i]
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateArtwork(_ context.Context, in CreateArtworkInput) (*artworks.Artwork, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	a := artworks.Artwork{
		ID:          m.nextID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		ArtistID:    in.ArtistID,
		Style:       in.Style,
		Medium:      in.Medium,
		Width:       in.Width,
		Height:      in.Height,
		Year:        in.Year,
		IsAvailable: true,
		IsFeatured:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsAvailable != nil {
		a.IsAvailable = *in.IsAvailable
	}
	if in.IsFeatured != nil {
		a.IsFeatured = *in.IsFeatured
	}
	m.nextID++

	m.artworks = append([]artworks.Artwork{a}, m.artworks...)
	return &a, nil
}

func (m *Memory) UpdateArtwork(_ context.Context, id uint, in UpdateArtworkInput) (*artworks.Artwork, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.artworks {
		if m.artworks[i].ID != id {
			continue
		}
		a := &m.artworks[i]
		if in.Title != nil {
			a.Title = *in.Title
		}
		if in.Description != nil {
			a.Description = in.Description
		}
		if in.Price != nil {
			a.Price = *in.Price
		}
		if in.ImageURL != nil {
			a.ImageURL = *in.ImageURL
		}
		if in.Style != nil {
			a.Style = in.Style
		}
		if in.Medium != nil {
			a.Medium = in.Medium
		}
		if in.Width != nil {
			a.Width = in.Width
		}
		if in.Height != nil {
			a.Height = in.Height
		}
		if in.Year != nil {
			a.Year = in.Year
		}
		if in.IsAvailable != nil {
			a.IsAvailable = *in.IsAvailable
		}
		if in.IsFeatured != nil {
			a.IsFeatured = *in.IsFeatured
		}
		a.UpdatedAt = time.Now()

		out := *a
		return &out, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) DeleteArtwork(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.artworks {
		if m.artworks[i].ID == id {
			m.artworks = append(m.artworks[:i], m.artworks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) ArtworksByArtist(ctx context.Context, artistID string) ([]artworks.Artwork, error) {
	return m.ListArtworks(ctx, ArtworkFilters{ArtistID: artistID})
}

// ------------------------------
// Users
// ------------------------------

func (m *Memory) GetUser(_ context.Context, id string) (*users.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (*users.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpsertUser(_ context.Context, u users.User) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for i := range m.users {
		if m.users[i].ID != u.ID {
			continue
		}
		existing := &m.users[i]
		existing.Email = u.Email
		existing.FirstName = u.FirstName
		existing.LastName = u.LastName
		existing.ProfileImageURL = u.ProfileImageURL
		existing.Bio = u.Bio
		existing.IsArtist = u.IsArtist
		existing.AuthProvider = u.AuthProvider
		existing.GoogleSub = u.GoogleSub
		existing.UpdatedAt = now

		out := *existing
		return &out, nil
	}

	if u.Role == "" {
		u.Role = users.RoleUser
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	m.users = append([]users.User{u}, m.users...)
	return &u, nil
}

func (m *Memory) UpdateUser(_ context.Context, id string, in UpdateUserInput) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID != id {
			continue
		}
		u := &m.users[i]
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.FirstName != nil {
			u.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			u.LastName = *in.LastName
		}
		if in.ProfileImageURL != nil {
			u.ProfileImageURL = in.ProfileImageURL
		}
		if in.Bio != nil {
			u.Bio = in.Bio
		}
		if in.IsArtist != nil {
			u.IsArtist = *in.IsArtist
		}
		u.UpdatedAt = time.Now()

		out := *u
		return &out, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) ListUsers(_ context.Context) ([]users.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]users.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *Memory) ListArtists(_ context.Context) ([]users.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []users.User{}
	for i := range m.users {
		if m.users[i].IsArtist {
			out = append(out, m.users[i])
		}
	}
	return out, nil
}

func (m *Memory) GetArtistWithArtworks(ctx context.Context, id string) (*ArtistProfile, error) {
	u, err := m.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if !u.IsArtist {
		return nil, ErrNotFound
	}

	owned, err := m.ArtworksByArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ArtistProfile{User: *u, Artworks: owned}, nil
}

func (m *Memory) Stats(_ context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st := &Stats{
		TotalUsers:    int64(len(m.users)),
		TotalArtworks: int64(len(m.artworks)),
	}
	for i := range m.users {
		if m.users[i].IsArtist {
			st.TotalArtists++
		}
	}
	for i := range m.artworks {
		if m.artworks[i].IsAvailable {
			st.AvailableArtworks++
		}
		if m.artworks[i].IsFeatured {
			st.FeaturedArtworks++
		}
	}
	return st, nil
}
