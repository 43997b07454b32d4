package dto

import "github.com/musiconnect/musiconnect-api/internal/models"

type ConvocationRequest struct {
	CreatorID   uint64 `json:"creator_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

type ConvocationUpdateRequest struct {
	UserID      uint64 `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

type FavoriteRequest struct {
	UserID        uint64 `json:"user_id"`
	ConvocationID uint64 `json:"convocation_id"`
}

type ConvocationResponse struct {
	ID          uint64 `json:"id"`
	Creator     string `json:"creator"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Active      bool   `json:"active"`
}

func NewConvocationResponse(c *models.Convocation) ConvocationResponse {
	return ConvocationResponse{
		ID:          c.ID,
		Creator:     c.Creator.ArtisticName,
		Title:       c.Title,
		Description: c.Description,
		Deadline:    c.Deadline.Format(DateLayout),
		Active:      c.Active,
	}
}

func NewConvocationResponses(convs []models.Convocation) []ConvocationResponse {
	out := make([]ConvocationResponse, len(convs))
	for i := range convs {
		out[i] = NewConvocationResponse(&convs[i])
	}
	return out
}
