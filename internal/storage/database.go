package storage

import (
	"context"
	"errors"
	"time"

	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/users"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Database is the gorm-backed Store implementation.
type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ------------------------------
// Artworks
// ------------------------------

func artworkFilterQuery(db *gorm.DB, f ArtworkFilters) *gorm.DB {
	q := db.Model(&artworks.Artwork{})
	if f.Style != "" {
		q = q.Where("style = ?", f.Style)
	}
	if f.ArtistID != "" {
		q = q.Where("artist_id = ?", f.ArtistID)
	}
	// The column keeps the exact decimal string; the cast makes the bound
	// comparison numeric on both postgres and sqlite.
	if f.MinPrice != nil {
		q = q.Where("CAST(price AS DECIMAL) >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("CAST(price AS DECIMAL) <= ?", *f.MaxPrice)
	}
	if f.Featured != nil {
		q = q.Where("is_featured = ?", *f.Featured)
	}
	return q
}

func (s *Database) ListArtworks(ctx context.Context, f ArtworkFilters) ([]artworks.Artwork, error) {
	rows := []artworks.Artwork{}
	err := artworkFilterQuery(s.db.WithContext(ctx), f).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Database) GetArtworkByID(ctx context.Context, id uint) (*artworks.Artwork, error) {
	var a artworks.Artwork
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &a, nil
}

func (s *Database) CreateArtwork(ctx context.Context, in CreateArtworkInput) (*artworks.Artwork, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	a := artworks.Artwork{
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
	}
	if in.IsAvailable != nil {
		a.IsAvailable = *in.IsAvailable
	}
	if in.IsFeatured != nil {
		a.IsFeatured = *in.IsFeatured
	}

	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Database) UpdateArtwork(ctx context.Context, id uint, in UpdateArtworkInput) (*artworks.Artwork, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var a artworks.Artwork
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}

	// An empty patch still refreshes updated_at.
	updates := map[string]interface{}{"updated_at": time.Now()}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.Style != nil {
		updates["style"] = *in.Style
	}
	if in.Medium != nil {
		updates["medium"] = *in.Medium
	}
	if in.Width != nil {
		updates["width"] = *in.Width
	}
	if in.Height != nil {
		updates["height"] = *in.Height
	}
	if in.Year != nil {
		updates["year"] = *in.Year
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}
	if in.IsFeatured != nil {
		updates["is_featured"] = *in.IsFeatured
	}

	if err := s.db.WithContext(ctx).Model(&artworks.Artwork{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetArtworkByID(ctx, id)
}

func (s *Database) DeleteArtwork(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&artworks.Artwork{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Database) ArtworksByArtist(ctx context.Context, artistID string) ([]artworks.Artwork, error) {
	rows := []artworks.Artwork{}
	err := s.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ------------------------------
// Users
// ------------------------------

func (s *Database) GetUser(ctx context.Context, id string) (*users.User, error) {
	var u users.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &u, nil
}

func (s *Database) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	var u users.User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &u, nil
}

func (s *Database) UpsertUser(ctx context.Context, u users.User) (*users.User, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url",
			"bio", "is_artist", "auth_provider", "google_sub", "updated_at",
		}),
	}).Create(&u).Error
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, u.ID)
}

func (s *Database) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*users.User, error) {
	var u users.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	if in.ProfileImageURL != nil {
		updates["profile_image_url"] = *in.ProfileImageURL
	}
	if in.Bio != nil {
		updates["bio"] = *in.Bio
	}
	if in.IsArtist != nil {
		updates["is_artist"] = *in.IsArtist
	}

	if err := s.db.WithContext(ctx).Model(&users.User{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetUser(ctx, id)
}

func (s *Database) ListUsers(ctx context.Context) ([]users.User, error) {
	rows := []users.User{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Database) ListArtists(ctx context.Context) ([]users.User, error) {
	rows := []users.User{}
	err := s.db.WithContext(ctx).
		Where("is_artist = ?", true).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Database) GetArtistWithArtworks(ctx context.Context, id string) (*ArtistProfile, error) {
	var u users.User
	err := s.db.WithContext(ctx).
		First(&u, "id = ? AND is_artist = ?", id, true).Error
	if err != nil {
		return nil, notFoundOr(err)
	}

	owned, err := s.ArtworksByArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ArtistProfile{User: u, Artworks: owned}, nil
}

func (s *Database) Stats(ctx context.Context) (*Stats, error) {
	db := s.db.WithContext(ctx)
	var st Stats

	if err := db.Model(&users.User{}).Count(&st.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&users.User{}).Where("is_artist = ?", true).Count(&st.TotalArtists).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&artworks.Artwork{}).Count(&st.TotalArtworks).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&artworks.Artwork{}).Where("is_available = ?", true).Count(&st.AvailableArtworks).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&artworks.Artwork{}).Where("is_featured = ?", true).Count(&st.FeaturedArtworks).Error; err != nil {
		return nil, err
	}
	return &st, nil
}
