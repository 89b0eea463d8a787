package exam

// Trigger records what ended a session.
type Trigger string

const (
	TriggerManual  Trigger = "manual"
	TriggerTimeout Trigger = "timeout"
)

// Result is produced once per session at submission.
type Result struct {
	SessionID            string
	ScorePercent         float64
	CorrectCount         int
	TotalCount           int
	IncorrectQuestionIDs []uint
	DurationSeconds      int
	Trigger              Trigger
}

func (r Result) IncorrectCount() int {
	return r.TotalCount - r.CorrectCount
}

// Score grades every question against the recorded answers. Unanswered
// questions count as incorrect. ScorePercent is left unrounded.
func Score(questions []Question, answers map[uint]string) Result {
	res := Result{
		TotalCount:           len(questions),
		IncorrectQuestionIDs: []uint{},
	}
	for _, q := range questions {
		selected, ok := answers[q.ID]
		if ok && SameAnswer(selected, q.Answer) {
			res.CorrectCount++
			continue
		}
		res.IncorrectQuestionIDs = append(res.IncorrectQuestionIDs, q.ID)
	}
	if res.TotalCount > 0 {
		res.ScorePercent = 100 * float64(res.CorrectCount) / float64(res.TotalCount)
	}
	return res
}
