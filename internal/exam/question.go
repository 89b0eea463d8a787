package exam

import "context"

// QuestionType distinguishes auto-scored choice items from essay items.
type QuestionType string

const (
	TypeChoice QuestionType = "choice"
	TypeEssay  QuestionType = "essay"
)

// Question is the in-memory view of a question bank item. Options are always
// normalized before a Question reaches this package.
type Question struct {
	ID          uint
	Content     string
	Type        QuestionType
	Options     []string
	OptionsLost bool // options were present upstream but could not be decoded
	Answer      string
	Explanation string
	Subject     string
	Year        string
	Tags        []string
}

// IsEssay reports whether q is an open-response item. Anything that is not
// explicitly an essay is treated as a choice question.
func (q Question) IsEssay() bool {
	return q.Type == TypeEssay
}

// Filter narrows the candidate pool. Empty fields match everything.
// MistakesOf restricts the pool to questions that user previously got wrong.
type Filter struct {
	Subject    string
	Year       string
	Tag        string
	MistakesOf string
	Count      int
}

// QuestionSource is the read side of the question store.
type QuestionSource interface {
	Fetch(ctx context.Context, filter Filter) ([]Question, error)
}

// ResultSink is the write side used once a session has been scored.
type ResultSink interface {
	PersistResult(ctx context.Context, userID string, result Result) error
	PersistMistakes(ctx context.Context, userID string, questionIDs []uint) error
}
