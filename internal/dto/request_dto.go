package dto

// StartMockExamRequest selects the pool for a new mock exam. Empty filters
// match everything; zero count and time limit fall back to server defaults.
type StartMockExamRequest struct {
	Subject          string `json:"subject"`
	Year             string `json:"year"`
	Tag              string `json:"tag"`
	MistakesOnly     bool   `json:"mistakes_only"`
	Count            int    `json:"count" binding:"omitempty,min=1"`
	TimeLimitMinutes int    `json:"time_limit_minutes" binding:"omitempty,min=1,max=600"`
}

type SelectAnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Choice     string `json:"choice" binding:"required"`
}
