package repository

import (
	"strings"

	"github.com/musiconnect/musiconnect-api/internal/catalog"
	"github.com/musiconnect/musiconnect-api/internal/models"
	"gorm.io/gorm"
)

type CollaborationRepository interface {
	FindByID(id uint64) (*models.Collaboration, bool, error)
	ExistsByTitleInsensitive(title string) (bool, error)
	FindAll() ([]models.Collaboration, error)
	FindByStatusIn(statuses []catalog.CollaborationStatus) ([]models.Collaboration, error)
	FindByCreatorArtisticName(name string) ([]models.Collaboration, error)
	Create(collab *models.Collaboration) error
	Update(collab *models.Collaboration) error
	AddCollaborator(collab *models.Collaboration, user *models.User) error
	// DeleteCascading removes the collaboration and its roster rows in one
	// transaction.
	DeleteCascading(collab *models.Collaboration) error
}

type GormCollaborationRepository struct {
	db *gorm.DB
}

func NewCollaborationRepository(db *gorm.DB) *GormCollaborationRepository {
	return &GormCollaborationRepository{db: db}
}

func (r *GormCollaborationRepository) FindByID(id uint64) (*models.Collaboration, bool, error) {
	var collab models.Collaboration
	err := r.db.Preload("Creator").Preload("Collaborators").Preload("Collaborators.Role").
		First(&collab, id).Error
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &collab, true, nil
}

func (r *GormCollaborationRepository) ExistsByTitleInsensitive(title string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Collaboration{}).
		Where("LOWER(title) = LOWER(?)", title).
		Count(&count).Error
	return count > 0, err
}

func (r *GormCollaborationRepository) FindAll() ([]models.Collaboration, error) {
	var collabs []models.Collaboration
	err := r.db.Preload("Creator").Preload("Collaborators").Order("id").Find(&collabs).Error
	return collabs, err
}

func (r *GormCollaborationRepository) FindByStatusIn(statuses []catalog.CollaborationStatus) ([]models.Collaboration, error) {
	var collabs []models.Collaboration
	err := r.db.Preload("Creator").Preload("Collaborators").
		Where("status IN ?", statuses).Order("id").Find(&collabs).Error
	return collabs, err
}

func (r *GormCollaborationRepository) FindByCreatorArtisticName(name string) ([]models.Collaboration, error) {
	var collabs []models.Collaboration
	err := r.db.Preload("Creator").Preload("Collaborators").
		Joins("JOIN users ON users.id = collaborations.creator_id").
		Where("LOWER(users.artistic_name) = LOWER(?)", strings.TrimSpace(name)).
		Order("collaborations.id").Find(&collabs).Error
	return collabs, err
}

func (r *GormCollaborationRepository) Create(collab *models.Collaboration) error {
	return r.db.Create(collab).Error
}

func (r *GormCollaborationRepository) Update(collab *models.Collaboration) error {
	return r.db.Omit("Collaborators", "Creator").Save(collab).Error
}

func (r *GormCollaborationRepository) AddCollaborator(collab *models.Collaboration, user *models.User) error {
	return r.db.Model(collab).Association("Collaborators").Append(user)
}

func (r *GormCollaborationRepository) DeleteCascading(collab *models.Collaboration) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM collaboration_members WHERE collaboration_id = ?", collab.ID).Error; err != nil {
			return err
		}
		return tx.Delete(collab).Error
	})
}
