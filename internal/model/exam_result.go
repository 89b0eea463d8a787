package model

import (
	"time"
)

// ExamResult is the persisted outcome of one submitted mock exam.
type ExamResult struct {
	ID                   uint      `gorm:"primarykey" json:"id"`
	SessionID            string    `json:"session_id" gorm:"size:36;uniqueIndex"`
	UserID               string    `json:"user_id" gorm:"size:64;not null;index"`
	ScorePercent         float64   `json:"score_percent" gorm:"not null"`
	CorrectCount         int       `json:"correct_count" gorm:"not null"`
	TotalCount           int       `json:"total_count" gorm:"not null"`
	IncorrectQuestionIDs string    `json:"incorrect_question_ids" gorm:"type:text"` // JSON array of question ids
	DurationSeconds      int       `json:"duration_seconds"`
	Trigger              string    `json:"trigger" gorm:"size:16"` // "manual", "timeout"
	SubmittedAt          time.Time `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
