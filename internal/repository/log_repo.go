package repository

import (
	"github.com/musiconnect/musiconnect-api/internal/models"
	"gorm.io/gorm"
)

type LogRepository interface {
	FindRecent(level string, limit int) ([]models.SystemLog, error)
}

type GormLogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *GormLogRepository {
	return &GormLogRepository{db: db}
}

func (r *GormLogRepository) FindRecent(level string, limit int) ([]models.SystemLog, error) {
	q := r.db.Order("timestamp DESC").Limit(limit)
	if level != "" {
		q = q.Where("level = ?", level)
	}
	var logs []models.SystemLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
