package repository

import (
	"github.com/musiconnect/musiconnect-api/internal/models"
	"gorm.io/gorm"
)

type FollowRepository interface {
	FindByFollower(followerID uint64) ([]models.Follow, error)
	ExistsUserEdge(followerID, followedUserID uint64) (bool, error)
	ExistsBandEdge(followerID, followedBandID uint64) (bool, error)
	FindUserEdge(followerID, followedUserID uint64) (*models.Follow, bool, error)
	FindBandEdge(followerID, followedBandID uint64) (*models.Follow, bool, error)
	Create(follow *models.Follow) error
	Delete(follow *models.Follow) error
}

type GormFollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

func (r *GormFollowRepository) FindByFollower(followerID uint64) ([]models.Follow, error) {
	var edges []models.Follow
	err := r.db.Preload("FollowedUser").Preload("FollowedBand").
		Where("follower_id = ?", followerID).Order("id").Find(&edges).Error
	return edges, err
}

func (r *GormFollowRepository) ExistsUserEdge(followerID, followedUserID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_user_id = ?", followerID, followedUserID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormFollowRepository) ExistsBandEdge(followerID, followedBandID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_band_id = ?", followerID, followedBandID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormFollowRepository) FindUserEdge(followerID, followedUserID uint64) (*models.Follow, bool, error) {
	var edge models.Follow
	err := r.db.Preload("FollowedUser").
		Where("follower_id = ? AND followed_user_id = ?", followerID, followedUserID).
		First(&edge).Error
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &edge, true, nil
}

func (r *GormFollowRepository) FindBandEdge(followerID, followedBandID uint64) (*models.Follow, bool, error) {
	var edge models.Follow
	err := r.db.Preload("FollowedBand").
		Where("follower_id = ? AND followed_band_id = ?", followerID, followedBandID).
		First(&edge).Error
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &edge, true, nil
}

func (r *GormFollowRepository) Create(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

func (r *GormFollowRepository) Delete(follow *models.Follow) error {
	return r.db.Delete(follow).Error
}
