package repository

import (
	"github.com/musiconnect/musiconnect-api/internal/models"
	"gorm.io/gorm"
)

type PostRepository interface {
	FindByID(id uint64) (*models.Post, bool, error)
	FindAll() ([]models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	// DeleteCascading removes the post and all its comments in one
	// transaction.
	DeleteCascading(post *models.Post) error
}

type CommentRepository interface {
	FindByID(id uint64) (*models.Comment, bool, error)
	FindByPost(postID uint64) ([]models.Comment, error)
	Create(comment *models.Comment) error
	Update(comment *models.Comment) error
	Delete(comment *models.Comment) error
}

type GormPostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) FindByID(id uint64) (*models.Post, bool, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Comments").Preload("Comments.Author").
		First(&post, id).Error
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &post, true, nil
}

func (r *GormPostRepository) FindAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Preload("Comments").Preload("Comments.Author").
		Order("id").Find(&posts).Error
	return posts, err
}

func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Omit("Author", "Comments").Save(post).Error
}

func (r *GormPostRepository) DeleteCascading(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}

type GormCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) FindByID(id uint64) (*models.Comment, bool, error) {
	var comment models.Comment
	err := r.db.Preload("Author").First(&comment, id).Error
	if notFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &comment, true, nil
}

func (r *GormCommentRepository) FindByPost(postID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").Where("post_id = ?", postID).Order("id").Find(&comments).Error
	return comments, err
}

func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *GormCommentRepository) Update(comment *models.Comment) error {
	return r.db.Omit("Author").Save(comment).Error
}

func (r *GormCommentRepository) Delete(comment *models.Comment) error {
	return r.db.Delete(comment).Error
}
