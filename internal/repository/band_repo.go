package repository

import (
	"github.com/musiconnect/musiconnect-api/internal/models"
	"gorm.io/gorm"
)

type BandRepository interface {
	FindByID(id uint64) (*models.Band, bool, error)
	ExistsByNameInsensitive(name string) (bool, error)
	FindAll() ([]models.Band, error)
	ExistsAdministeredBy(userID uint64) (bool, error)
	Create(band *models.Band) error
	Update(band *models.Band) error
	AddMember(band *models.Band, user *models.User) error
	// DeleteCascading removes the band, its roster and genre rows, and all
	// follow edges targeting it, in one transaction.
	DeleteCascading(band *models.Band) error
}

type GormBandRepository struct {
	db *gorm.DB
}

func NewBandRepository(db *gorm.DB) *GormBandRepository {
	return &GormBandRepository{db: db}
}

func (r *GormBandRepository) FindByID(id uint64) (*models.Band, bool, error) {
	var band models.Band
	err := r.db.Preload("Admin").Preload("Members").Preload("Members.Role").
		Preload("Genres").First(&band, id).Error
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &band, true, nil
}

func (r *GormBandRepository) ExistsByNameInsensitive(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Band{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	return count > 0, err
}

func (r *GormBandRepository) FindAll() ([]models.Band, error) {
	var bands []models.Band
	err := r.db.Preload("Admin").Preload("Members").Preload("Genres").
		Order("id").Find(&bands).Error
	return bands, err
}

func (r *GormBandRepository) ExistsAdministeredBy(userID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Band{}).Where("admin_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *GormBandRepository) Create(band *models.Band) error {
	return r.db.Create(band).Error
}

func (r *GormBandRepository) Update(band *models.Band) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(band).Association("Genres").Replace(band.Genres); err != nil {
			return err
		}
		return tx.Omit("Genres", "Members", "Admin").Save(band).Error
	})
}

func (r *GormBandRepository) AddMember(band *models.Band, user *models.User) error {
	return r.db.Model(band).Association("Members").Append(user)
}

func (r *GormBandRepository) DeleteCascading(band *models.Band) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("followed_band_id = ?", band.ID).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM band_members WHERE band_id = ?", band.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM band_music_genres WHERE band_id = ?", band.ID).Error; err != nil {
			return err
		}
		return tx.Delete(band).Error
	})
}
