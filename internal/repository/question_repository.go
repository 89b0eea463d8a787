package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/lshigami/examprep/internal/exam"
	"github.com/lshigami/examprep/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindByFilter(ctx context.Context, filter exam.Filter) ([]model.Question, error)
	FindMetadata(ctx context.Context) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByFilter matches subject and year exactly. The tag match is a coarse
// text search on the JSON column; callers re-check decoded tags.
func (r *questionRepository) FindByFilter(ctx context.Context, filter exam.Filter) ([]model.Question, error) {
	query := r.db.WithContext(ctx).Model(&model.Question{})
	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.Year != "" {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.Tag != "" {
		query = query.Where(`tags LIKE ? ESCAPE '\'`, tagPattern(filter.Tag))
	}
	if filter.MistakesOf != "" {
		mistakes := r.db.Model(&model.Mistake{}).Select("question_id").Where("user_id = ?", filter.MistakesOf)
		query = query.Where("id IN (?)", mistakes)
	}

	var questions []model.Question
	if err := query.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// FindMetadata loads only the columns the filter facets need.
func (r *questionRepository) FindMetadata(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).Select("id", "subject", "year", "tags").Order("id ASC").Find(&questions).Error
	return questions, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func tagPattern(tag string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(tag)
	quoted := strings.TrimSpace(buf.String())
	return "%" + likeEscaper.Replace(quoted) + "%"
}
