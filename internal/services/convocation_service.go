package services

import (
	"time"

	"github.com/musiconnect/musiconnect-api/internal/apperr"
	"github.com/musiconnect/musiconnect-api/internal/models"
	"github.com/musiconnect/musiconnect-api/internal/repository"
)

// ConvocationService manages open calls and the per-user favorites relation.
// Expiry never flips the active flag; it only blocks edits.
type ConvocationService struct {
	convs repository.ConvocationRepository
	favs  repository.FavoriteRepository
	users repository.UserRepository
}

func NewConvocationService(convs repository.ConvocationRepository, favs repository.FavoriteRepository, users repository.UserRepository) *ConvocationService {
	return &ConvocationService{convs: convs, favs: favs, users: users}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *ConvocationService) Create(creatorID uint64, title, description string, deadline time.Time) (*models.Convocation, error) {
	creator, ok, err := s.users.FindByID(creatorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("user not found")
	}

	// Strictly after today, at date granularity. A deadline of "today" is
	// already too late to call for collaborators.
	if !dateOnly(deadline).After(dateOnly(time.Now())) {
		return nil, apperr.RuleViolation("the deadline must be in the future")
	}

	conv := &models.Convocation{
		CreatorID:   creator.ID,
		Creator:     *creator,
		Title:       title,
		Description: description,
		Deadline:    deadline,
		Active:      true,
	}
	if err := s.convs.Create(conv); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *ConvocationService) Edit(id, actingUserID uint64, title, description string, deadline time.Time) error {
	conv, ok, err := s.convs.FindByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("convocation not found")
	}

	if conv.CreatorID != actingUserID {
		return apperr.Forbidden("you are not allowed to edit this convocation")
	}

	// The stored deadline decides editability, not the incoming one.
	if conv.Expired(time.Now()) {
		return apperr.RuleViolation("an expired convocation cannot be edited")
	}

	conv.Title = title
	conv.Description = description
	conv.Deadline = deadline
	return s.convs.Update(conv)
}

func (s *ConvocationService) ListActive() ([]models.Convocation, error) {
	convs, err := s.convs.FindAllActive()
	if err != nil {
		return nil, err
	}
	if len(convs) == 0 {
		return nil, apperr.RuleViolation("there are no open convocations right now")
	}
	return convs, nil
}

// ListFavoritesOf returns the user's favorited convocations that are still
// active. Favorites on inactive convocations stay stored but are filtered
// out here.
func (s *ConvocationService) ListFavoritesOf(userID uint64) ([]models.Convocation, error) {
	_, ok, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("user not found")
	}

	favorites, err := s.favs.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	active := make([]models.Convocation, 0, len(favorites))
	for i := range favorites {
		if favorites[i].Convocation.Active {
			active = append(active, favorites[i].Convocation)
		}
	}
	if len(active) == 0 {
		return nil, apperr.RuleViolation("you have no active favorite convocations")
	}
	return active, nil
}

func (s *ConvocationService) MarkFavorite(userID, convocationID uint64) error {
	_, ok, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("user not found")
	}

	conv, ok, err := s.convs.FindByID(convocationID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("convocation not found")
	}

	if !conv.Active {
		return apperr.RuleViolation("an inactive convocation cannot be favorited")
	}

	exists, err := s.favs.ExistsPair(userID, convocationID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.RuleViolation("this convocation is already in your favorites")
	}

	return s.favs.Create(&models.ConvocationFavorite{
		UserID:        userID,
		ConvocationID: convocationID,
	})
}

func (s *ConvocationService) UnmarkFavorite(userID, convocationID uint64) error {
	_, ok, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("user not found")
	}

	_, ok, err = s.convs.FindByID(convocationID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("convocation not found")
	}

	fav, ok, err := s.favs.FindPair(userID, convocationID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.RuleViolation("this convocation is not in your favorites")
	}

	return s.favs.Delete(fav)
}

func (s *ConvocationService) GetByID(id uint64) (*models.Convocation, error) {
	conv, ok, err := s.convs.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("convocation not found")
	}
	return conv, nil
}

func (s *ConvocationService) ListAll() ([]models.Convocation, error) {
	return s.convs.FindAll()
}

func (s *ConvocationService) Delete(id, actingUserID uint64) error {
	conv, ok, err := s.convs.FindByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("convocation not found")
	}

	if conv.CreatorID != actingUserID {
		return apperr.Forbidden("you are not allowed to delete this convocation")
	}

	return s.convs.DeleteCascading(conv)
}
