// Package storage exposes the persistence contract of the gallery: a Store
// interface with a database-backed implementation and an in-memory fallback
// used when no database is reachable in development. The implementation is
// chosen once at process start and never switched afterwards.
package storage

import (
	"context"

	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/users"
)

// ArtworkFilters are ANDed together; zero values mean "no constraint".
// Price bounds are inclusive and compared numerically against the stored
// decimal string.
type ArtworkFilters struct {
	Style    string
	ArtistID string
	MinPrice *float64
	MaxPrice *float64
	Featured *bool
}

type CreateArtworkInput struct {
	Title       string
	Description *string
	Price       string
	ImageURL    string
	Style       *string
	Medium      *string
	Width       *int
	Height      *int
	Year        *int
	IsAvailable *bool
	IsFeatured  *bool
	ArtistID    *string
}

// UpdateArtworkInput carries only the fields the caller wants to change.
type UpdateArtworkInput struct {
	Title       *string
	Description *string
	Price       *string
	ImageURL    *string
	Style       *string
	Medium      *string
	Width       *int
	Height      *int
	Year        *int
	IsAvailable *bool
	IsFeatured  *bool
}

type UpdateUserInput struct {
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	Bio             *string
	IsArtist        *bool
}

// ArtistProfile is an artist row together with the artworks they own,
// newest first.
type ArtistProfile struct {
	users.User
	Artworks []artworks.Artwork `json:"artworks"`
}

type Stats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalArtists      int64 `json:"totalArtists"`
	TotalArtworks     int64 `json:"totalArtworks"`
	AvailableArtworks int64 `json:"availableArtworks"`
	FeaturedArtworks  int64 `json:"featuredArtworks"`
}

type ArtworkStore interface {
	// ListArtworks returns the matching subset newest first. An empty result
	// is an empty slice, never an error.
	ListArtworks(ctx context.Context, f ArtworkFilters) ([]artworks.Artwork, error)
	GetArtworkByID(ctx context.Context, id uint) (*artworks.Artwork, error)
	CreateArtwork(ctx context.Context, in CreateArtworkInput) (*artworks.Artwork, error)
	UpdateArtwork(ctx context.Context, id uint, in UpdateArtworkInput) (*artworks.Artwork, error)
	// DeleteArtwork returns ErrNotFound for an absent id; under a concurrent
	// double delete one caller observes ErrNotFound and neither panics.
	DeleteArtwork(ctx context.Context, id uint) error
	ArtworksByArtist(ctx context.Context, artistID string) ([]artworks.Artwork, error)
}

type UserStore interface {
	GetUser(ctx context.Context, id string) (*users.User, error)
	GetUserByEmail(ctx context.Context, email string) (*users.User, error)
	// UpsertUser inserts the row or, on an id conflict, updates the profile
	// fields. Used by login flows that mirror identity-provider claims.
	UpsertUser(ctx context.Context, u users.User) (*users.User, error)
	UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*users.User, error)
	ListUsers(ctx context.Context) ([]users.User, error)
	ListArtists(ctx context.Context) ([]users.User, error)
	GetArtistWithArtworks(ctx context.Context, id string) (*ArtistProfile, error)
}

type Store interface {
	ArtworkStore
	UserStore
	Stats(ctx context.Context) (*Stats, error)
}
