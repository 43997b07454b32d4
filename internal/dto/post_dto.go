package dto

import (
	"time"

	"github.com/musiconnect/musiconnect-api/internal/models"
)

type PostRequest struct {
	AuthorID uint64 `json:"author_id"`
	Content  string `json:"content"`
	Type     string `json:"type"`
}

type PostUpdateRequest struct {
	AuthorID uint64 `json:"author_id"`
	Content  string `json:"content"`
}

type CommentRequest struct {
	AuthorID uint64 `json:"author_id"`
	Content  string `json:"content"`
}

type CommentResponse struct {
	ID        uint64    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type PostResponse struct {
	ID          uint64            `json:"id"`
	Author      string            `json:"author"`
	Content     string            `json:"content"`
	Type        string            `json:"type"`
	PublishedAt time.Time         `json:"published_at"`
	Comments    []CommentResponse `json:"comments"`
}

func NewCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Author:    c.Author.ArtisticName,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func NewCommentResponses(comments []models.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = NewCommentResponse(&comments[i])
	}
	return out
}

func NewPostResponse(p *models.Post) PostResponse {
	return PostResponse{
		ID:          p.ID,
		Author:      p.Author.ArtisticName,
		Content:     p.Content,
		Type:        string(p.Type),
		PublishedAt: p.PublishedAt,
		Comments:    NewCommentResponses(p.Comments),
	}
}

func NewPostResponses(posts []models.Post) []PostResponse {
	out := make([]PostResponse, len(posts))
	for i := range posts {
		out[i] = NewPostResponse(&posts[i])
	}
	return out
}
