package model

// All lists the tables owned by this service, in migration order.
func All() []any {
	return []any{
		&Question{},
		&Profile{},
		&ExamResult{},
		&Mistake{},
	}
}
