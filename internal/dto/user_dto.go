package dto

import "github.com/musiconnect/musiconnect-api/internal/models"

type UserUpdateRequest struct {
	Email       *string  `json:"email"`
	Bio         *string  `json:"bio"`
	Location    *string  `json:"location"`
	Instruments *string  `json:"instruments"`
	Available   *bool    `json:"available"`
	Genres      []string `json:"genres"`
}

type AvailabilityRequest struct {
	Available bool `json:"available"`
}

type UserResponse struct {
	ID           uint64   `json:"id"`
	Email        string   `json:"email"`
	ArtisticName string   `json:"artistic_name"`
	Instruments  string   `json:"instruments"`
	Bio          string   `json:"bio"`
	Location     string   `json:"location"`
	Available    bool     `json:"available"`
	Role         string   `json:"role"`
	Genres       []string `json:"genres"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		ArtisticName: u.ArtisticName,
		Instruments:  u.Instruments,
		Bio:          u.Bio,
		Location:     u.Location,
		Available:    u.Available,
		Role:         string(u.Role.Name),
		Genres:       genreNames(u.Genres),
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = NewUserResponse(&users[i])
	}
	return out
}

func genreNames(genres []models.MusicGenre) []string {
	names := make([]string, len(genres))
	for i := range genres {
		names[i] = string(genres[i].Name)
	}
	return names
}
