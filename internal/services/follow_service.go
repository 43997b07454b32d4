package services

import (
	"fmt"
	"time"

	"github.com/musiconnect/musiconnect-api/internal/apperr"
	"github.com/musiconnect/musiconnect-api/internal/models"
	"github.com/musiconnect/musiconnect-api/internal/repository"
)

// FollowService manages the directed follow graph over users and bands.
type FollowService struct {
	follows repository.FollowRepository
	users   repository.UserRepository
	bands   repository.BandRepository
}

func NewFollowService(follows repository.FollowRepository, users repository.UserRepository, bands repository.BandRepository) *FollowService {
	return &FollowService{follows: follows, users: users, bands: bands}
}

// resolveTarget collapses the two optional wire ids into the tagged union.
// Both-set and neither-set are the same violation.
func resolveTarget(followedUserID, followedBandID *uint64) (models.FollowTarget, error) {
	if (followedUserID == nil) == (followedBandID == nil) {
		return models.FollowTarget{}, apperr.RuleViolation("you must follow either a user or a band, not both")
	}
	if followedUserID != nil {
		return models.FollowTarget{Kind: models.FollowTargetUser, ID: *followedUserID}, nil
	}
	return models.FollowTarget{Kind: models.FollowTargetBand, ID: *followedBandID}, nil
}

func (s *FollowService) Create(followerID uint64, followedUserID, followedBandID *uint64) (*models.Follow, error) {
	target, err := resolveTarget(followedUserID, followedBandID)
	if err != nil {
		return nil, err
	}

	follower, ok, err := s.users.FindByID(followerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("follower not found")
	}

	edge := &models.Follow{FollowerID: follower.ID, FollowedAt: time.Now()}

	switch target.Kind {
	case models.FollowTargetUser:
		if follower.ID == target.ID {
			return nil, apperr.RuleViolation("you cannot follow yourself")
		}
		exists, err := s.follows.ExistsUserEdge(follower.ID, target.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.RuleViolation("you already follow this profile")
		}
		followed, ok, err := s.users.FindByID(target.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.NotFound("user to follow not found")
		}
		edge.FollowedUserID = &followed.ID
		edge.FollowedUser = followed

	case models.FollowTargetBand:
		exists, err := s.follows.ExistsBandEdge(follower.ID, target.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.RuleViolation("you already follow this profile")
		}
		band, ok, err := s.bands.FindByID(target.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.NotFound("band to follow not found")
		}
		edge.FollowedBandID = &band.ID
		edge.FollowedBand = band
	}

	if err := s.follows.Create(edge); err != nil {
		return nil, err
	}
	return edge, nil
}

// FollowedProfile is the polymorphic summary of one outbound edge.
type FollowedProfile struct {
	ID        uint64                  `json:"id"`
	Name      string                  `json:"name"`
	Kind      models.FollowTargetKind `json:"kind"`
	Available *bool                   `json:"available"`
	Location  *string                 `json:"location"`
	Image     *string                 `json:"image"`
}

func (s *FollowService) ListFollowedProfiles(userID uint64) ([]FollowedProfile, error) {
	_, ok, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("user not found")
	}

	edges, err := s.follows.FindByFollower(userID)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, apperr.RuleViolation("you are not following any profile yet")
	}

	profiles := make([]FollowedProfile, 0, len(edges))
	for i := range edges {
		edge := &edges[i]
		if edge.FollowedUser != nil {
			u := edge.FollowedUser
			profiles = append(profiles, FollowedProfile{
				ID:        u.ID,
				Name:      u.ArtisticName,
				Kind:      models.FollowTargetUser,
				Available: &u.Available,
				Location:  &u.Location,
			})
			continue
		}
		// Band summaries carry no availability or location.
		profiles = append(profiles, FollowedProfile{
			ID:   edge.FollowedBand.ID,
			Name: edge.FollowedBand.Name,
			Kind: models.FollowTargetBand,
		})
	}
	return profiles, nil
}

// Unfollow removes the single edge matching the target and names the profile
// in the confirmation.
func (s *FollowService) Unfollow(followerID uint64, followedUserID, followedBandID *uint64) (string, error) {
	target, err := resolveTarget(followedUserID, followedBandID)
	if err != nil {
		return "", err
	}

	var (
		edge *models.Follow
		name string
	)
	switch target.Kind {
	case models.FollowTargetUser:
		found, ok, err := s.follows.FindUserEdge(followerID, target.ID)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", apperr.RuleViolation("you do not follow this profile")
		}
		edge, name = found, found.FollowedUser.ArtisticName
	case models.FollowTargetBand:
		found, ok, err := s.follows.FindBandEdge(followerID, target.ID)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", apperr.RuleViolation("you do not follow this profile")
		}
		edge, name = found, found.FollowedBand.Name
	}

	if err := s.follows.Delete(edge); err != nil {
		return "", err
	}
	return fmt.Sprintf("you have unfollowed %s", name), nil
}
