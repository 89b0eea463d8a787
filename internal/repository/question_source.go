package repository

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	"github.com/lshigami/examprep/internal/exam"
	"github.com/lshigami/examprep/internal/model"
	"github.com/rs/zerolog/log"
)

type questionSource struct {
	repo QuestionRepository
}

// NewQuestionSource adapts the question table to the exam package. Stored
// options and tags are decoded here, once, so nothing downstream sees the raw
// column encodings.
func NewQuestionSource(repo QuestionRepository) exam.QuestionSource {
	return &questionSource{repo: repo}
}

func (s *questionSource) Fetch(ctx context.Context, filter exam.Filter) ([]exam.Question, error) {
	rows, err := s.repo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]exam.Question, 0, len(rows))
	for _, row := range rows {
		q := ToExamQuestion(row)
		if filter.Tag != "" && !slices.Contains(q.Tags, filter.Tag) {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// ToExamQuestion normalizes a stored row. Undecodable options leave the
// question with no options and OptionsLost set.
func ToExamQuestion(row model.Question) exam.Question {
	q := exam.Question{
		ID:          row.ID,
		Content:     row.Content,
		Type:        exam.TypeChoice,
		Answer:      row.Answer,
		Explanation: row.Explanation,
		Subject:     row.Subject,
		Year:        row.Year,
		Tags:        DecodeTags(row.Tags),
	}
	if strings.EqualFold(strings.TrimSpace(row.Type), string(exam.TypeEssay)) {
		q.Type = exam.TypeEssay
	}

	opts, err := exam.DecodeOptions(row.Options)
	if err != nil {
		log.Warn().Err(err).Uint("question_id", row.ID).Msg("Question options could not be decoded")
		q.OptionsLost = true
	}
	q.Options = opts
	return q
}

// DecodeTags reads the JSON tags column. Anything unreadable yields no tags.
func DecodeTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{}
	}
	out := tags[:0]
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
