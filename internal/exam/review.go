package exam

// OptionMark flags one option of a choice question in review.
type OptionMark struct {
	Label     string // A, B, C...
	Text      string
	Canonical bool
	Selected  bool
}

// ReviewItem is the read-only view of one question after submission.
type ReviewItem struct {
	Position int
	Question Question
	Selected string
	Answered bool
	Correct  bool
	Options  []OptionMark
}

// BuildReview re-presents questions in session order with the canonical
// answer and the user's selection marked.
func BuildReview(questions []Question, answers map[uint]string) []ReviewItem {
	items := make([]ReviewItem, 0, len(questions))
	for i, q := range questions {
		selected, answered := answers[q.ID]
		item := ReviewItem{
			Position: i + 1,
			Question: q,
			Selected: selected,
			Answered: answered,
			Correct:  answered && SameAnswer(selected, q.Answer),
		}
		if !q.IsEssay() {
			item.Options = make([]OptionMark, len(q.Options))
			for j, opt := range q.Options {
				item.Options[j] = OptionMark{
					Label:     OptionLabel(j),
					Text:      opt,
					Canonical: SameAnswer(opt, q.Answer),
					Selected:  answered && SameAnswer(opt, selected),
				}
			}
		}
		items = append(items, item)
	}
	return items
}

// OptionLabel maps 0 -> "A", 1 -> "B", ...
func OptionLabel(i int) string {
	if i < 0 || i >= 26 {
		return ""
	}
	return string(rune('A' + i))
}
