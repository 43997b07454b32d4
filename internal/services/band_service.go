package services

import (
	"strings"

	"github.com/musiconnect/musiconnect-api/internal/apperr"
	"github.com/musiconnect/musiconnect-api/internal/catalog"
	"github.com/musiconnect/musiconnect-api/internal/config"
	"github.com/musiconnect/musiconnect-api/internal/models"
	"github.com/musiconnect/musiconnect-api/internal/repository"
)

// BandService manages band lifecycle and roster. The administrator is fixed
// at creation; there is no ownership transfer operation.
type BandService struct {
	bands    repository.BandRepository
	users    repository.UserRepository
	catalogs repository.CatalogRepository
	policy   config.Policy
}

func NewBandService(bands repository.BandRepository, users repository.UserRepository, catalogs repository.CatalogRepository, policy config.Policy) *BandService {
	return &BandService{bands: bands, users: users, catalogs: catalogs, policy: policy}
}

func (s *BandService) Create(name, description string, genreNames []string, adminID uint64) (*models.Band, error) {
	taken, err := s.bands.ExistsByNameInsensitive(name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("a band with this name already exists")
	}

	admin, ok, err := s.users.FindByID(adminID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("administrator not found")
	}

	if s.policy.ProducerOnlyBandCreation && admin.Role.Name != catalog.RoleProducer {
		return nil, apperr.RuleViolation("only PRODUCER users can create a band")
	}
	if !admin.Available {
		return nil, apperr.RuleViolation("you cannot create a band while unavailable")
	}

	genres, err := resolveGenres(s.catalogs, genreNames)
	if err != nil {
		return nil, err
	}

	band := &models.Band{
		Name:        name,
		Description: description,
		AdminID:     admin.ID,
		Admin:       *admin,
		Genres:      genres,
	}
	if err := s.bands.Create(band); err != nil {
		return nil, err
	}
	return band, nil
}

func (s *BandService) AddMember(bandID, userID, actingAdminID uint64) error {
	band, ok, err := s.bands.FindByID(bandID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("band not found")
	}

	if band.AdminID != actingAdminID {
		return apperr.Forbidden("you are not allowed to add members to this band")
	}

	user, ok, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("user not found")
	}

	// One PRODUCER per band: the administrator.
	if s.policy.SingleProducerPerBand && user.Role.Name == catalog.RoleProducer {
		return apperr.RuleViolation("a band can only have one PRODUCER (its creator)")
	}
	if !user.Available {
		return apperr.RuleViolation("this user is not available to join a band")
	}
	if band.HasMember(user.ID) {
		return apperr.RuleViolation("this user is already a member of the band")
	}

	return s.bands.AddMember(band, user)
}

func (s *BandService) Update(bandID uint64, name, description string, genreNames []string, actingAdminID uint64) error {
	band, ok, err := s.bands.FindByID(bandID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("band not found")
	}

	if band.AdminID != actingAdminID {
		return apperr.Forbidden("you are not allowed to edit this band")
	}

	if !strings.EqualFold(band.Name, name) {
		taken, err := s.bands.ExistsByNameInsensitive(name)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Conflict("that band name is already registered")
		}
	}

	genres, err := resolveGenres(s.catalogs, genreNames)
	if err != nil {
		return err
	}

	band.Name = name
	band.Description = description
	band.Genres = genres
	return s.bands.Update(band)
}

func (s *BandService) ListAll() ([]models.Band, error) {
	return s.bands.FindAll()
}

func (s *BandService) GetByID(id uint64) (*models.Band, error) {
	band, ok, err := s.bands.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("band not found")
	}
	return band, nil
}

// ListMembers returns the artistic names on the roster. The administrator is
// not part of the roster list.
func (s *BandService) ListMembers(id uint64) ([]string, error) {
	band, ok, err := s.bands.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("band not found")
	}

	names := make([]string, 0, len(band.Members))
	for i := range band.Members {
		names = append(names, band.Members[i].ArtisticName)
	}
	return names, nil
}

func (s *BandService) GetMember(bandID, memberID uint64) (string, error) {
	band, ok, err := s.bands.FindByID(bandID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperr.NotFound("band not found")
	}

	for i := range band.Members {
		if band.Members[i].ID == memberID {
			return band.Members[i].ArtisticName, nil
		}
	}
	return "", apperr.NotFound("member does not belong to the band")
}

func (s *BandService) Delete(id, actingAdminID uint64) error {
	band, ok, err := s.bands.FindByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("band not found")
	}

	if band.AdminID != actingAdminID {
		return apperr.Forbidden("you are not allowed to delete this band")
	}

	return s.bands.DeleteCascading(band)
}
