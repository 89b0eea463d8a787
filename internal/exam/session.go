package exam

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrEmptyPool       = errors.New("no questions available")
	ErrUnknownQuestion = errors.New("question is not part of this session")
	ErrNotSubmitted    = errors.New("session has not been submitted")
	ErrInvalidLimit    = errors.New("time limit must be at least one minute")
)

// SubmitFunc receives the result of the single scoring run of a session.
type SubmitFunc func(s *Session, result Result)

// Session is one timed mock exam. Answers, the clock and the submitted flag
// are guarded so that a manual submit racing the clock expiry scores once.
type Session struct {
	ID               string
	UserID           string
	Questions        []Question
	TimeLimitMinutes int
	StartedAt        time.Time

	index map[uint]int
	clock *Clock

	mu        sync.Mutex
	answers   map[uint]string
	submitted bool
	result    Result
	onSubmit  SubmitFunc
}

// NewSession refuses an empty pool; callers show an empty state instead.
func NewSession(id, userID string, questions []Question, timeLimitMinutes int, startedAt time.Time, onSubmit SubmitFunc) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyPool
	}
	if timeLimitMinutes < 1 {
		return nil, ErrInvalidLimit
	}
	s := &Session{
		ID:               id,
		UserID:           userID,
		Questions:        questions,
		TimeLimitMinutes: timeLimitMinutes,
		StartedAt:        startedAt,
		index:            make(map[uint]int, len(questions)),
		answers:          make(map[uint]string),
		onSubmit:         onSubmit,
	}
	for i, q := range questions {
		s.index[q.ID] = i
	}
	s.clock = NewClock(timeLimitMinutes, func() { s.Submit(TriggerTimeout) })
	return s, nil
}

// Clock exposes the countdown so a driver goroutine can Run it.
func (s *Session) Clock() *Clock {
	return s.clock
}

// Tick advances the session clock by one second.
func (s *Session) Tick() ClockState {
	return s.clock.Tick()
}

// Select records choice for questionID, replacing any earlier choice. After
// submission it does nothing and reports false.
func (s *Session) Select(questionID uint, choice string) (bool, error) {
	if _, ok := s.index[questionID]; !ok {
		return false, ErrUnknownQuestion
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return false, nil
	}
	s.answers[questionID] = choice
	return true, nil
}

// Submit scores the session the first time it is called. Later calls return
// the stored result with first == false and run no side effects.
func (s *Session) Submit(trigger Trigger) (result Result, first bool) {
	s.mu.Lock()
	if s.submitted {
		result = s.result
		s.mu.Unlock()
		return result, false
	}
	s.submitted = true
	s.clock.Stop()
	result = Score(s.Questions, s.answers)
	result.SessionID = s.ID
	result.Trigger = trigger
	result.DurationSeconds = s.TimeLimitMinutes*60 - s.clock.Remaining()
	s.result = result
	onSubmit := s.onSubmit
	s.mu.Unlock()

	if onSubmit != nil {
		onSubmit(s, result)
	}
	return result, true
}

func (s *Session) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}

// Result returns the stored result and whether the session was submitted.
func (s *Session) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.submitted
}

// Answers returns a copy of the recorded selections.
func (s *Session) Answers() map[uint]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uint]string, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

func (s *Session) SecondsRemaining() int {
	return s.clock.Remaining()
}

// Review is only available once the session has been submitted.
func (s *Session) Review() ([]ReviewItem, error) {
	if !s.Submitted() {
		return nil, ErrNotSubmitted
	}
	return BuildReview(s.Questions, s.Answers()), nil
}
