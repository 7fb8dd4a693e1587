package users

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	// ID is the stable session subject. Locally registered accounts get a
	// generated UUID; OIDC accounts reuse the provider subject.
	ID string `gorm:"primaryKey;size:64" json:"id"`

	Email     string `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`

	ProfileImageURL *string `gorm:"column:profile_image_url;size:500" json:"profileImageUrl"`
	Bio             *string `gorm:"type:text" json:"bio"`

	// IsArtist drives which dashboard the client shows; it does not by itself
	// grant any extra authorization.
	IsArtist bool `gorm:"not null;default:false" json:"isArtist"`

	Role string `gorm:"size:20;not null;default:'user'" json:"role"`

	AuthProvider string  `gorm:"size:20;not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`
	PasswordHash *string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
