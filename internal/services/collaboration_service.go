package services

import (
	"strings"
	"time"

	"github.com/musiconnect/musiconnect-api/internal/apperr"
	"github.com/musiconnect/musiconnect-api/internal/catalog"
	"github.com/musiconnect/musiconnect-api/internal/config"
	"github.com/musiconnect/musiconnect-api/internal/models"
	"github.com/musiconnect/musiconnect-api/internal/repository"
)

// CollaborationService manages time-boxed collaboration projects. Creation
// always yields PENDING; the status machine is flat, so an edit may set any
// of the three values, including moving a COMPLETED project back.
type CollaborationService struct {
	collabs repository.CollaborationRepository
	users   repository.UserRepository
	policy  config.Policy
}

func NewCollaborationService(collabs repository.CollaborationRepository, users repository.UserRepository, policy config.Policy) *CollaborationService {
	return &CollaborationService{collabs: collabs, users: users, policy: policy}
}

func (s *CollaborationService) Create(title, description string, start, end time.Time, creatorID uint64) (*models.Collaboration, error) {
	if start.After(end) {
		return nil, apperr.BadRequest("start date cannot be after end date")
	}

	if s.policy.UniqueCollaborationTitles {
		taken, err := s.collabs.ExistsByTitleInsensitive(title)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Conflict("a collaboration with this title already exists")
		}
	}

	creator, ok, err := s.users.FindByID(creatorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("user not found")
	}
	if !creator.Available {
		return nil, apperr.RuleViolation("you cannot create a collaboration while unavailable")
	}

	collab := &models.Collaboration{
		Title:       title,
		Description: description,
		StartDate:   start,
		EndDate:     end,
		Status:      catalog.StatusPending,
		CreatorID:   creator.ID,
		Creator:     *creator,
	}
	if err := s.collabs.Create(collab); err != nil {
		return nil, err
	}
	return collab, nil
}

func (s *CollaborationService) Update(id, actingUserID uint64, title, description string, start, end time.Time, status string) error {
	collab, ok, err := s.collabs.FindByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("collaboration not found")
	}

	if collab.CreatorID != actingUserID {
		return apperr.Forbidden("you are not allowed to edit this collaboration")
	}

	if start.After(end) {
		return apperr.BadRequest("start date cannot be after end date")
	}

	parsed, valid := catalog.ParseCollaborationStatus(status)
	if !valid {
		return apperr.RuleViolation("invalid status")
	}

	collab.Title = title
	collab.Description = description
	collab.StartDate = start
	collab.EndDate = end
	collab.Status = parsed
	return s.collabs.Update(collab)
}

// ListActive returns PENDING and IN_PROGRESS collaborations. An empty result
// is a reportable business condition, not a silent empty list.
func (s *CollaborationService) ListActive() ([]models.Collaboration, error) {
	collabs, err := s.collabs.FindByStatusIn([]catalog.CollaborationStatus{
		catalog.StatusPending, catalog.StatusInProgress,
	})
	if err != nil {
		return nil, err
	}
	if len(collabs) == 0 {
		return nil, apperr.RuleViolation("there are no active collaborations right now")
	}
	return collabs, nil
}

func (s *CollaborationService) ListAll() ([]models.Collaboration, error) {
	return s.collabs.FindAll()
}

func (s *CollaborationService) GetByID(id uint64) (*models.Collaboration, error) {
	collab, ok, err := s.collabs.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("collaboration not found")
	}
	return collab, nil
}

func (s *CollaborationService) ListByCreatorName(artisticName string) ([]models.Collaboration, error) {
	if strings.TrimSpace(artisticName) == "" {
		return nil, apperr.BadRequest("artistic name is required")
	}
	return s.collabs.FindByCreatorArtisticName(artisticName)
}

// AddCollaborator resolves the target by artistic name, trimmed and
// case-insensitive.
func (s *CollaborationService) AddCollaborator(collabID uint64, artisticName string) error {
	collab, ok, err := s.collabs.FindByID(collabID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("collaboration not found")
	}

	if strings.TrimSpace(artisticName) == "" {
		return apperr.BadRequest("a valid artistic name is required")
	}

	user, ok, err := s.users.FindByArtisticName(artisticName)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("no user with that artistic name")
	}

	if !user.Available {
		return apperr.RuleViolation("this user is not available to collaborate")
	}
	if collab.CreatorID == user.ID {
		return apperr.RuleViolation("the creator cannot join as a collaborator")
	}
	if collab.HasCollaborator(user.ID) {
		return apperr.RuleViolation("this user is already part of the collaboration")
	}

	return s.collabs.AddCollaborator(collab, user)
}

func (s *CollaborationService) Remove(id, actingUserID uint64) error {
	if id == 0 || actingUserID == 0 {
		return apperr.BadRequest("collaboration and user ids are required")
	}

	collab, ok, err := s.collabs.FindByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("collaboration not found")
	}

	if collab.CreatorID != actingUserID {
		return apperr.Forbidden("only the creator can delete this collaboration")
	}

	return s.collabs.DeleteCascading(collab)
}

func (s *CollaborationService) ListCollaborators(id uint64) ([]models.User, error) {
	collab, ok, err := s.collabs.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("collaboration not found")
	}
	return collab.Collaborators, nil
}

// ListStatuses returns the fixed status universe in literal order.
func (s *CollaborationService) ListStatuses() []string {
	statuses := catalog.CollaborationStatuses()
	out := make([]string, len(statuses))
	for i, st := range statuses {
		out[i] = string(st)
	}
	return out
}
