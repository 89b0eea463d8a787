package model

import (
	"time"
)

// Mistake marks a question the user got wrong in a mock exam. A user holds
// at most one row per question.
type Mistake struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     string    `json:"user_id" gorm:"size:64;not null;uniqueIndex:idx_wrong_answers_user_question"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_wrong_answers_user_question"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Mistake) TableName() string {
	return "wrong_answers"
}
