package repository

import (
	"github.com/musiconnect/musiconnect-api/internal/models"
	"gorm.io/gorm"
)

type ConvocationRepository interface {
	FindByID(id uint64) (*models.Convocation, bool, error)
	FindAll() ([]models.Convocation, error)
	FindAllActive() ([]models.Convocation, error)
	Create(conv *models.Convocation) error
	Update(conv *models.Convocation) error
	// DeleteCascading removes the convocation and its favorite rows in one
	// transaction.
	DeleteCascading(conv *models.Convocation) error
}

type FavoriteRepository interface {
	FindByUser(userID uint64) ([]models.ConvocationFavorite, error)
	FindPair(userID, convocationID uint64) (*models.ConvocationFavorite, bool, error)
	ExistsPair(userID, convocationID uint64) (bool, error)
	Create(fav *models.ConvocationFavorite) error
	Delete(fav *models.ConvocationFavorite) error
}

type GormConvocationRepository struct {
	db *gorm.DB
}

func NewConvocationRepository(db *gorm.DB) *GormConvocationRepository {
	return &GormConvocationRepository{db: db}
}

func (r *GormConvocationRepository) FindByID(id uint64) (*models.Convocation, bool, error) {
	var conv models.Convocation
	err := r.db.Preload("Creator").First(&conv, id).Error
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &conv, true, nil
}

func (r *GormConvocationRepository) FindAll() ([]models.Convocation, error) {
	var convs []models.Convocation
	err := r.db.Preload("Creator").Order("id").Find(&convs).Error
	return convs, err
}

func (r *GormConvocationRepository) FindAllActive() ([]models.Convocation, error) {
	var convs []models.Convocation
	err := r.db.Preload("Creator").Where("active = true").Order("id").Find(&convs).Error
	return convs, err
}

func (r *GormConvocationRepository) Create(conv *models.Convocation) error {
	return r.db.Create(conv).Error
}

func (r *GormConvocationRepository) Update(conv *models.Convocation) error {
	return r.db.Omit("Creator").Save(conv).Error
}

func (r *GormConvocationRepository) DeleteCascading(conv *models.Convocation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("convocation_id = ?", conv.ID).
			Delete(&models.ConvocationFavorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(conv).Error
	})
}

type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

func (r *GormFavoriteRepository) FindByUser(userID uint64) ([]models.ConvocationFavorite, error) {
	var favs []models.ConvocationFavorite
	err := r.db.Preload("Convocation").Preload("Convocation.Creator").
		Where("user_id = ?", userID).Order("id").Find(&favs).Error
	return favs, err
}

func (r *GormFavoriteRepository) FindPair(userID, convocationID uint64) (*models.ConvocationFavorite, bool, error) {
	var fav models.ConvocationFavorite
	err := r.db.Where("user_id = ? AND convocation_id = ?", userID, convocationID).
		First(&fav).Error
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &fav, true, nil
}

func (r *GormFavoriteRepository) ExistsPair(userID, convocationID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.ConvocationFavorite{}).
		Where("user_id = ? AND convocation_id = ?", userID, convocationID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormFavoriteRepository) Create(fav *models.ConvocationFavorite) error {
	return r.db.Create(fav).Error
}

func (r *GormFavoriteRepository) Delete(fav *models.ConvocationFavorite) error {
	return r.db.Delete(fav).Error
}
