package dto

import (
	"time"

	"github.com/musiconnect/musiconnect-api/internal/models"
)

type FollowRequest struct {
	FollowerID     uint64  `json:"follower_id"`
	FollowedUserID *uint64 `json:"followed_user_id"`
	FollowedBandID *uint64 `json:"followed_band_id"`
}

type UnfollowRequest struct {
	FollowerID     uint64  `json:"follower_id"`
	FollowedUserID *uint64 `json:"followed_user_id"`
	FollowedBandID *uint64 `json:"followed_band_id"`
}

type FollowResponse struct {
	ID         uint64    `json:"id"`
	Follower   uint64    `json:"follower_id"`
	Followed   string    `json:"followed"`
	Kind       string    `json:"kind"`
	FollowedAt time.Time `json:"followed_at"`
}

func NewFollowResponse(f *models.Follow) FollowResponse {
	resp := FollowResponse{
		ID:         f.ID,
		Follower:   f.FollowerID,
		FollowedAt: f.FollowedAt,
	}
	if f.FollowedUser != nil {
		resp.Followed = f.FollowedUser.ArtisticName
		resp.Kind = string(models.FollowTargetUser)
	} else if f.FollowedBand != nil {
		resp.Followed = f.FollowedBand.Name
		resp.Kind = string(models.FollowTargetBand)
	}
	return resp
}
