package repository

import (
	"strings"

	"github.com/musiconnect/musiconnect-api/internal/models"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(id uint64) (*models.User, bool, error)
	FindByEmail(email string) (*models.User, bool, error)
	FindByArtisticName(name string) (*models.User, bool, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByEmailExcept(email string, userID uint64) (bool, error)
	FindAll() ([]models.User, error)
	Save(user *models.User) error
	ReplaceGenres(user *models.User, genres []models.MusicGenre) error
	// DeleteCascading removes the user and everything hanging off the
	// account in one transaction: follow edges in both directions,
	// favorites, comments, posts with their comments, roster rows in
	// bands and collaborations, and the collaborations and convocations
	// the user created (with their rosters and favorites); the creator
	// FKs would otherwise reject the final delete. Bands administered by
	// the user are the caller's problem; the service rejects the delete
	// while any exist.
	DeleteCascading(user *models.User) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByID(id uint64) (*models.User, bool, error) {
	var user models.User
	err := r.db.Preload("Role").Preload("Genres").First(&user, id).Error
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func (r *GormUserRepository) FindByEmail(email string) (*models.User, bool, error) {
	var user models.User
	err := r.db.Preload("Role").Preload("Genres").Where("email = ?", email).First(&user).Error
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func (r *GormUserRepository) FindByArtisticName(name string) (*models.User, bool, error) {
	var user models.User
	err := r.db.Preload("Role").Preload("Genres").
		Where("LOWER(artistic_name) = LOWER(?)", strings.TrimSpace(name)).
		First(&user).Error
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func (r *GormUserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *GormUserRepository) ExistsByEmailExcept(email string, userID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormUserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Role").Preload("Genres").Order("id").Find(&users).Error
	return users, err
}

func (r *GormUserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *GormUserRepository) ReplaceGenres(user *models.User, genres []models.MusicGenre) error {
	return r.db.Model(user).Association("Genres").Replace(genres)
}

func (r *GormUserRepository) DeleteCascading(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("follower_id = ? OR followed_user_id = ?", user.ID, user.ID).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).
			Delete(&models.ConvocationFavorite{}).Error; err != nil {
			return err
		}
		var convIDs []uint64
		if err := tx.Model(&models.Convocation{}).Where("creator_id = ?", user.ID).
			Pluck("id", &convIDs).Error; err != nil {
			return err
		}
		if len(convIDs) > 0 {
			if err := tx.Where("convocation_id IN ?", convIDs).
				Delete(&models.ConvocationFavorite{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", convIDs).
				Delete(&models.Convocation{}).Error; err != nil {
				return err
			}
		}
		var createdCollabIDs []uint64
		if err := tx.Model(&models.Collaboration{}).Where("creator_id = ?", user.ID).
			Pluck("id", &createdCollabIDs).Error; err != nil {
			return err
		}
		if len(createdCollabIDs) > 0 {
			if err := tx.Exec("DELETE FROM collaboration_members WHERE collaboration_id IN ?", createdCollabIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", createdCollabIDs).
				Delete(&models.Collaboration{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("author_id = ?", user.ID).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		var postIDs []uint64
		if err := tx.Model(&models.Post{}).Where("author_id = ?", user.ID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).
				Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", postIDs).
				Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM band_members WHERE user_id = ?", user.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM collaboration_members WHERE user_id = ?", user.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM user_music_genres WHERE user_id = ?", user.ID).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}
