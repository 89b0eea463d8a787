package service

import (
	"testing"

	"github.com/lshigami/examprep/config"
	"github.com/lshigami/examprep/internal/exam"
	"github.com/lshigami/examprep/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDisplayScore(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{75, "75.00"},
		{100.0 / 3.0, "33.33"},
		{200.0 / 3.0, "66.67"},
		{0, "0.00"},
		{100, "100.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayScore(tt.in))
	}
}

func TestScoreReport(t *testing.T) {
	svc := NewScoreReportService(&config.Config{Exam: config.Exam{PassMark: 75}})
	report := svc.Report(exam.Result{
		SessionID:    "s",
		ScorePercent: 75,
		CorrectCount: 3,
		TotalCount:   4,
		Trigger:      exam.TriggerManual,
	})
	assert.True(t, report.Passed)
	assert.Equal(t, 1, report.IncorrectCount)
	assert.Equal(t, []uint{}, report.IncorrectQuestionIDs)
	assert.Equal(t, 75.0, report.PassMark)
	assert.False(t, svc.Passed(74.99))
}

func TestScoreReportPassMarkOutOfRange(t *testing.T) {
	svc := NewScoreReportService(&config.Config{Exam: config.Exam{PassMark: 140}})
	assert.True(t, svc.Passed(60))
}

func TestFromRecordWithBrokenIDs(t *testing.T) {
	svc := NewScoreReportService(&config.Config{Exam: config.Exam{PassMark: 60}})
	out := svc.FromRecord(model.ExamResult{ID: 3, ScorePercent: 80, IncorrectQuestionIDs: "oops"})
	assert.Equal(t, uint(3), out.ID)
	assert.Equal(t, []uint{}, out.IncorrectQuestionIDs)
	assert.True(t, out.Passed)
}
