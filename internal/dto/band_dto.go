package dto

import "github.com/musiconnect/musiconnect-api/internal/models"

type BandRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	AdminID     uint64   `json:"admin_id"`
}

type BandUpdateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	AdminID     uint64   `json:"admin_id"`
}

type AddMemberRequest struct {
	UserID  uint64 `json:"user_id"`
	AdminID uint64 `json:"admin_id"`
}

type BandResponse struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Admin       string   `json:"admin"`
	Genres      []string `json:"genres"`
	Members     []string `json:"members"`
}

func NewBandResponse(b *models.Band) BandResponse {
	members := make([]string, len(b.Members))
	for i := range b.Members {
		members[i] = b.Members[i].ArtisticName
	}
	return BandResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Admin:       b.Admin.ArtisticName,
		Genres:      genreNames(b.Genres),
		Members:     members,
	}
}

func NewBandResponses(bands []models.Band) []BandResponse {
	out := make([]BandResponse, len(bands))
	for i := range bands {
		out[i] = NewBandResponse(&bands[i])
	}
	return out
}
