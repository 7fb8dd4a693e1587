package artworks

import (
	"encoding/json"
	"strings"
	"time"
)

// MaxImages caps how many image references a single artwork may carry.
const MaxImages = 5

type Artwork struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string  `gorm:"size:255;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`

	// Price is a decimal string ("1250.00"). It is never parsed into a float
	// for storage; range filters cast it inside the query instead.
	Price string `gorm:"size:32;not null" json:"price"`

	// ImageURL holds either a single URL or a JSON-encoded array of up to
	// MaxImages references. Images() returns the normalized list.
	ImageURL string `gorm:"column:image_url;size:500;not null" json:"imageUrl"`

	// ArtistID is nullable: artworks without an owner belong to the house
	// collection and are only mutable by admins.
	ArtistID *string `gorm:"size:64;index" json:"artistId"`

	Style  *string `gorm:"size:100" json:"style"`
	Medium *string `gorm:"size:100" json:"medium"`
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
	Year   *int    `json:"year"`

	IsAvailable bool `gorm:"not null;default:true" json:"isAvailable"`
	IsFeatured  bool `gorm:"not null;default:false" json:"isFeatured"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Images resolves the overloaded image_url column into an ordered list.
func (a *Artwork) Images() []string {
	s := strings.TrimSpace(a.ImageURL)
	if !strings.HasPrefix(s, "[") {
		if s == "" {
			return nil
		}
		return []string{s}
	}

	var refs []string
	if err := json.Unmarshal([]byte(s), &refs); err != nil {
		return []string{a.ImageURL}
	}
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		if r == "" {
			continue
		}
		out = append(out, r)
		if len(out) == MaxImages {
			break
		}
	}
	return out
}
