package dto

// ExamQuestionDTO is a question as shown while a session is running. The
// canonical answer and explanation are withheld until review.
type ExamQuestionDTO struct {
	ID                 uint     `json:"id"`
	Position           int      `json:"position"`
	Content            string   `json:"content"`
	Type               string   `json:"type"`
	Options            []string `json:"options"`
	OptionsUnavailable bool     `json:"options_unavailable"`
	Subject            string   `json:"subject,omitempty"`
	Year               string   `json:"year,omitempty"`
	Tags               []string `json:"tags"`
}

// QuestionFacetsResponse lists the values a mock exam can be filtered by.
type QuestionFacetsResponse struct {
	Years    []string `json:"years"`
	Subjects []string `json:"subjects"`
	Tags     []string `json:"tags"`
}
