package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lshigami/examprep/internal/exam"
	"github.com/lshigami/examprep/internal/model"
)

type resultSink struct {
	results  ExamResultRepository
	mistakes MistakeRepository
}

func NewResultSink(results ExamResultRepository, mistakes MistakeRepository) exam.ResultSink {
	return &resultSink{results: results, mistakes: mistakes}
}

func (s *resultSink) PersistResult(ctx context.Context, userID string, result exam.Result) error {
	ids, err := json.Marshal(result.IncorrectQuestionIDs)
	if err != nil {
		return fmt.Errorf("encode incorrect question ids: %w", err)
	}
	row := &model.ExamResult{
		SessionID:            result.SessionID,
		UserID:               userID,
		ScorePercent:         result.ScorePercent,
		CorrectCount:         result.CorrectCount,
		TotalCount:           result.TotalCount,
		IncorrectQuestionIDs: string(ids),
		DurationSeconds:      result.DurationSeconds,
		Trigger:              string(result.Trigger),
	}
	if err := s.results.Create(ctx, row); err != nil {
		return fmt.Errorf("save exam result: %w", err)
	}
	return nil
}

func (s *resultSink) PersistMistakes(ctx context.Context, userID string, questionIDs []uint) error {
	if err := s.mistakes.AddAll(ctx, userID, questionIDs); err != nil {
		return fmt.Errorf("save mistakes: %w", err)
	}
	return nil
}
