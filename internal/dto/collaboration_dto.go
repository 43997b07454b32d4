package dto

import "github.com/musiconnect/musiconnect-api/internal/models"

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

type CollaborationRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CreatorID   uint64 `json:"creator_id"`
}

type CollaborationUpdateRequest struct {
	UserID      uint64 `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

type AddCollaboratorRequest struct {
	ArtisticName string `json:"artistic_name"`
}

type CollaborationResponse struct {
	ID            uint64   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	Status        string   `json:"status"`
	Creator       string   `json:"creator"`
	Collaborators []string `json:"collaborators"`
}

func NewCollaborationResponse(c *models.Collaboration) CollaborationResponse {
	collaborators := make([]string, len(c.Collaborators))
	for i := range c.Collaborators {
		collaborators[i] = c.Collaborators[i].ArtisticName
	}
	return CollaborationResponse{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		StartDate:     c.StartDate.Format(DateLayout),
		EndDate:       c.EndDate.Format(DateLayout),
		Status:        string(c.Status),
		Creator:       c.Creator.ArtisticName,
		Collaborators: collaborators,
	}
}

func NewCollaborationResponses(collabs []models.Collaboration) []CollaborationResponse {
	out := make([]CollaborationResponse, len(collabs))
	for i := range collabs {
		out[i] = NewCollaborationResponse(&collabs[i])
	}
	return out
}
