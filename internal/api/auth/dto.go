package auth

import "gallery-app/internal/storage"

type UpdateUserRequest struct {
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
	Bio             *string `json:"bio"`
	IsArtist        *bool   `json:"isArtist"`
}

func (r UpdateUserRequest) toInput() storage.UpdateUserInput {
	return storage.UpdateUserInput{
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		ProfileImageURL: r.ProfileImageURL,
		Bio:             r.Bio,
		IsArtist:        r.IsArtist,
	}
}
