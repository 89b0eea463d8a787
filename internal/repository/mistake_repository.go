package repository

import (
	"context"

	"github.com/lshigami/examprep/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MistakeRepository interface {
	AddAll(ctx context.Context, userID string, questionIDs []uint) error
	FindQuestionIDsByUser(ctx context.Context, userID string) ([]uint, error)
}

type mistakeRepository struct {
	db *gorm.DB
}

func NewMistakeRepository(db *gorm.DB) MistakeRepository {
	return &mistakeRepository{db: db}
}

// AddAll records the questions as mistakes for userID. Questions already on
// the user's list are left untouched.
func (r *mistakeRepository) AddAll(ctx context.Context, userID string, questionIDs []uint) error {
	if len(questionIDs) == 0 {
		return nil
	}
	rows := make([]model.Mistake, 0, len(questionIDs))
	for _, qid := range questionIDs {
		rows = append(rows, model.Mistake{UserID: userID, QuestionID: qid})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
			DoNothing: true,
		}).
		Create(&rows).Error
}

func (r *mistakeRepository) FindQuestionIDsByUser(ctx context.Context, userID string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Mistake{}).
		Where("user_id = ?", userID).
		Order("question_id ASC").
		Pluck("question_id", &ids).Error
	return ids, err
}
