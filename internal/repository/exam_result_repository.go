package repository

import (
	"context"

	"github.com/lshigami/examprep/internal/model"
	"gorm.io/gorm"
)

type ExamResultRepository interface {
	Create(ctx context.Context, result *model.ExamResult) error
	FindBySessionID(ctx context.Context, sessionID string) (*model.ExamResult, error)
	FindAllByUser(ctx context.Context, userID string, limit int) ([]model.ExamResult, error)
}

type examResultRepository struct {
	db *gorm.DB
}

func NewExamResultRepository(db *gorm.DB) ExamResultRepository {
	return &examResultRepository{db: db}
}

func (r *examResultRepository) Create(ctx context.Context, result *model.ExamResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *examResultRepository) FindBySessionID(ctx context.Context, sessionID string) (*model.ExamResult, error) {
	var result model.ExamResult
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// FindAllByUser lists a user's results, newest first. A non-positive limit
// returns everything.
func (r *examResultRepository) FindAllByUser(ctx context.Context, userID string, limit int) ([]model.ExamResult, error) {
	var results []model.ExamResult
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("submitted_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&results).Error
	return results, err
}
