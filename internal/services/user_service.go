package services

import (
	"fmt"

	"github.com/musiconnect/musiconnect-api/internal/apperr"
	"github.com/musiconnect/musiconnect-api/internal/models"
	"github.com/musiconnect/musiconnect-api/internal/repository"
)

// UserService owns profile reads and mutations. Registration lives in
// AuthService; this service picks up after the account exists.
type UserService struct {
	users    repository.UserRepository
	bands    repository.BandRepository
	catalogs repository.CatalogRepository
}

func NewUserService(users repository.UserRepository, bands repository.BandRepository, catalogs repository.CatalogRepository) *UserService {
	return &UserService{users: users, bands: bands, catalogs: catalogs}
}

func (s *UserService) GetByID(id uint64) (*models.User, error) {
	user, ok, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("profile not found")
	}
	return user, nil
}

func (s *UserService) ListAll() ([]models.User, error) {
	return s.users.FindAll()
}

// ProfileUpdate carries the optional profile fields; nil means "leave as is".
type ProfileUpdate struct {
	Email       *string
	Bio         *string
	Location    *string
	Instruments *string
	Available   *bool
	Genres      []string
}

func (s *UserService) UpdateProfile(userID uint64, upd ProfileUpdate) error {
	user, ok, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("profile not found")
	}

	if upd.Email != nil && *upd.Email != "" {
		taken, err := s.users.ExistsByEmailExcept(*upd.Email, userID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Conflict("a profile with this email already exists")
		}
		user.Email = *upd.Email
	}
	if upd.Bio != nil && *upd.Bio != "" {
		user.Bio = *upd.Bio
	}
	if upd.Location != nil && *upd.Location != "" {
		user.Location = *upd.Location
	}
	if upd.Instruments != nil && *upd.Instruments != "" {
		user.Instruments = *upd.Instruments
	}
	if upd.Available != nil {
		user.Available = *upd.Available
	}

	if len(upd.Genres) > 0 {
		genres, err := resolveGenres(s.catalogs, upd.Genres)
		if err != nil {
			return err
		}
		if err := s.users.ReplaceGenres(user, genres); err != nil {
			return err
		}
	}

	return s.users.Save(user)
}

// UpdateAvailability flips the availability flag and reports the new state.
func (s *UserService) UpdateAvailability(userID uint64, available bool) (string, error) {
	user, ok, err := s.users.FindByID(userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperr.NotFound("profile not found")
	}

	user.Available = available
	if err := s.users.Save(user); err != nil {
		return "", err
	}

	state := "available"
	if !available {
		state = "unavailable"
	}
	return fmt.Sprintf("availability updated to %s", state), nil
}

// Delete removes the account. Everything referencing the user is detached or
// removed in the same transaction, including the collaborations and
// convocations the user created; a band administered by the user blocks the
// delete because bands cannot outlive their administrator.
func (s *UserService) Delete(userID uint64) error {
	user, ok, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("profile not found")
	}

	administers, err := s.bands.ExistsAdministeredBy(userID)
	if err != nil {
		return err
	}
	if administers {
		return apperr.RuleViolation("delete or transfer your bands before removing the account")
	}

	return s.users.DeleteCascading(user)
}
