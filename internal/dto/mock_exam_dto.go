package dto

import "time"

// MockExamSessionDTO is the current state of a session. Result is set once
// the session has been submitted.
type MockExamSessionDTO struct {
	SessionID        string            `json:"session_id"`
	Questions        []ExamQuestionDTO `json:"questions"`
	Answers          map[uint]string   `json:"answers"`
	AnsweredCount    int               `json:"answered_count"`
	TotalCount       int               `json:"total_count"`
	TimeLimitMinutes int               `json:"time_limit_minutes"`
	SecondsRemaining int               `json:"seconds_remaining"`
	ClockState       string            `json:"clock_state"` // "running", "stopped", "expired"
	Submitted        bool              `json:"submitted"`
	StartedAt        time.Time         `json:"started_at"`
	Result           *ScoreReportDTO   `json:"result,omitempty"`
	// GuestToken is set only when an anonymous visitor starts a session; it
	// must be sent back in the X-Guest-Token header.
	GuestToken string `json:"guest_token,omitempty"`
}

type SelectAnswerResponse struct {
	QuestionID       uint   `json:"question_id"`
	Choice           string `json:"choice"`
	Applied          bool   `json:"applied"`
	SecondsRemaining int    `json:"seconds_remaining"`
}

// ScoreReportDTO presents a scored session. ScorePercent is unrounded;
// DisplayScore carries two decimals.
type ScoreReportDTO struct {
	SessionID            string  `json:"session_id"`
	ScorePercent         float64 `json:"score_percent"`
	DisplayScore         string  `json:"display_score"`
	CorrectCount         int     `json:"correct_count"`
	IncorrectCount       int     `json:"incorrect_count"`
	TotalCount           int     `json:"total_count"`
	IncorrectQuestionIDs []uint  `json:"incorrect_question_ids"`
	DurationSeconds      int     `json:"duration_seconds"`
	Trigger              string  `json:"trigger"`
	PassMark             float64 `json:"pass_mark"`
	Passed               bool    `json:"passed"`
}

type ReviewOptionDTO struct {
	Label     string `json:"label"`
	Text      string `json:"text"`
	Canonical bool   `json:"canonical"`
	Selected  bool   `json:"selected"`
}

type ReviewItemDTO struct {
	Position           int               `json:"position"`
	QuestionID         uint              `json:"question_id"`
	Content            string            `json:"content"`
	Options            []ReviewOptionDTO `json:"options"`
	OptionsUnavailable bool              `json:"options_unavailable"`
	CanonicalAnswer    string            `json:"canonical_answer"`
	Selected           string            `json:"selected,omitempty"`
	Answered           bool              `json:"answered"`
	Correct            bool              `json:"correct"`
	Explanation        string            `json:"explanation,omitempty"`
}

type MockExamReviewDTO struct {
	SessionID            string          `json:"session_id"`
	Result               ScoreReportDTO  `json:"result"`
	Items                []ReviewItemDTO `json:"items"`
	ExplanationsIncluded bool            `json:"explanations_included"`
}

// ExamResultDTO is one persisted result in the viewer's history.
type ExamResultDTO struct {
	ID                   uint      `json:"id"`
	SessionID            string    `json:"session_id"`
	ScorePercent         float64   `json:"score_percent"`
	DisplayScore         string    `json:"display_score"`
	CorrectCount         int       `json:"correct_count"`
	TotalCount           int       `json:"total_count"`
	IncorrectQuestionIDs []uint    `json:"incorrect_question_ids" copier:"-"`
	DurationSeconds      int       `json:"duration_seconds"`
	Trigger              string    `json:"trigger"`
	Passed               bool      `json:"passed"`
	SubmittedAt          time.Time `json:"submitted_at"`
}
