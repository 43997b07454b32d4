package repository

import (
	"github.com/musiconnect/musiconnect-api/internal/catalog"
	"github.com/musiconnect/musiconnect-api/internal/models"
	"gorm.io/gorm"
)

// CatalogRepository reads the seeded genre and role tables. It is read-only
// once the process is serving traffic.
type CatalogRepository interface {
	FindGenresByName(names []catalog.MusicGenre) ([]models.MusicGenre, error)
	FindRoleByID(id uint64) (*models.Role, bool, error)
}

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) FindGenresByName(names []catalog.MusicGenre) ([]models.MusicGenre, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var rows []models.MusicGenre
	err := r.db.Where("name IN ?", names).Find(&rows).Error
	return rows, err
}

func (r *GormCatalogRepository) FindRoleByID(id uint64) (*models.Role, bool, error) {
	var role models.Role
	err := r.db.First(&role, id).Error
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &role, true, nil
}
