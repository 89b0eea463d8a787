package exam

import (
	"context"
	"fmt"
)

// Selector draws mock exam pools from a QuestionSource.
type Selector struct {
	source  QuestionSource
	shuffle func([]Question) []Question
}

func NewSelector(source QuestionSource) *Selector {
	return &Selector{source: source, shuffle: Shuffle[Question]}
}

// Draw returns at most filter.Count shuffled choice questions matching the
// filter. A non-positive Count takes every match. No match yields an empty,
// non-nil slice and no error.
func (s *Selector) Draw(ctx context.Context, filter Filter) ([]Question, error) {
	candidates, err := s.source.Fetch(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch question pool: %w", err)
	}

	choice, _ := Partition(candidates)
	pool := s.shuffle(choice)
	if filter.Count > 0 && filter.Count < len(pool) {
		pool = pool[:filter.Count]
	}
	return pool, nil
}

// Partition splits questions into choice and essay items, keeping order.
func Partition(questions []Question) (choice, essay []Question) {
	choice = make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.IsEssay() {
			essay = append(essay, q)
			continue
		}
		choice = append(choice, q)
	}
	return choice, essay
}
