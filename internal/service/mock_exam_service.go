package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/examprep/config"
	"github.com/lshigami/examprep/internal/auth"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/exam"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/rs/zerolog/log"
)

var (
	ErrLoginRequired  = errors.New("login required")
	ErrServiceStopped = errors.New("mock exam service is shutting down")
)

const persistTimeout = 15 * time.Second

// MockExamService runs timed mock exams. Sessions live in memory; only the
// scored result and the mistake list are persisted.
type MockExamService interface {
	Start(ctx context.Context, viewer auth.Viewer, req dto.StartMockExamRequest) (*dto.MockExamSessionDTO, error)
	Get(viewer auth.Viewer, sessionID string) (*dto.MockExamSessionDTO, error)
	Select(viewer auth.Viewer, sessionID string, req dto.SelectAnswerRequest) (*dto.SelectAnswerResponse, error)
	Submit(viewer auth.Viewer, sessionID string) (*dto.ScoreReportDTO, error)
	Review(viewer auth.Viewer, sessionID string) (*dto.MockExamReviewDTO, error)
	Exit(viewer auth.Viewer, sessionID string) error
	Results(ctx context.Context, viewer auth.Viewer, limit int) ([]dto.ExamResultDTO, error)
	RunJanitor(ctx context.Context, interval time.Duration)
	Shutdown(ctx context.Context) error
}

type mockExamService struct {
	selector *exam.Selector
	sink     exam.ResultSink
	results  repository.ExamResultRepository
	reports  ScoreReportService
	registry *exam.Registry
	cfg      config.Exam

	newTicker func() exam.Ticker
	now       func() time.Time

	clockCtx   context.Context
	stopClocks context.CancelFunc
	persistMu  sync.Mutex
	persistWG  sync.WaitGroup
	stopped    bool
}

func NewMockExamService(
	source exam.QuestionSource,
	sink exam.ResultSink,
	results repository.ExamResultRepository,
	reports ScoreReportService,
	cfg *config.Config,
) MockExamService {
	return newMockExamService(source, sink, results, reports, cfg.Exam, exam.NewSecondTicker)
}

func newMockExamService(
	source exam.QuestionSource,
	sink exam.ResultSink,
	results repository.ExamResultRepository,
	reports ScoreReportService,
	cfg config.Exam,
	newTicker func() exam.Ticker,
) *mockExamService {
	ctx, cancel := context.WithCancel(context.Background())
	return &mockExamService{
		selector:   exam.NewSelector(source),
		sink:       sink,
		results:    results,
		reports:    reports,
		registry:   exam.NewRegistry(),
		cfg:        cfg,
		newTicker:  newTicker,
		now:        time.Now,
		clockCtx:   ctx,
		stopClocks: cancel,
	}
}

func (s *mockExamService) Start(ctx context.Context, viewer auth.Viewer, req dto.StartMockExamRequest) (*dto.MockExamSessionDTO, error) {
	if req.MistakesOnly && viewer.IsAnonymous() {
		return nil, ErrLoginRequired
	}

	count := req.Count
	if count <= 0 {
		count = s.cfg.DefaultCount
	}
	if s.cfg.MaxCount > 0 && count > s.cfg.MaxCount {
		count = s.cfg.MaxCount
	}
	limit := req.TimeLimitMinutes
	if limit <= 0 {
		limit = s.cfg.DefaultTimeLimitMinutes
	}

	filter := exam.Filter{Subject: req.Subject, Year: req.Year, Tag: req.Tag, Count: count}
	if req.MistakesOnly {
		filter.MistakesOf = viewer.UserID
	}

	pool, err := s.selector.Draw(ctx, filter)
	if err != nil {
		log.Error().Err(err).Interface("filter", filter).Msg("StartMockExam: Failed to draw question pool")
		return nil, fmt.Errorf("draw mock exam: %w", err)
	}

	sess, err := exam.NewSession(s.registry.NewID(), viewer.UserID, pool, limit, s.now(), s.onSubmit)
	if err != nil {
		if errors.Is(err, exam.ErrEmptyPool) {
			log.Info().Interface("filter", filter).Msg("StartMockExam: No questions match the filter")
		}
		return nil, err
	}

	if viewer.Owner() == "" {
		viewer.GuestToken = s.registry.NewID()
	}

	clockCtx, cancel := context.WithCancel(s.clockCtx)
	s.registry.Put(sess, viewer.Owner(), cancel)
	go sess.Clock().Run(clockCtx, s.newTicker())

	log.Info().
		Str("sessionID", sess.ID).
		Str("userID", viewer.UserID).
		Int("questionCount", len(pool)).
		Int("timeLimitMinutes", limit).
		Msg("StartMockExam: Session started")
	out := s.sessionDTO(sess)
	if viewer.IsAnonymous() {
		out.GuestToken = viewer.GuestToken
	}
	return out, nil
}

func (s *mockExamService) Get(viewer auth.Viewer, sessionID string) (*dto.MockExamSessionDTO, error) {
	sess, err := s.registry.Get(sessionID, viewer.Owner())
	if err != nil {
		return nil, err
	}
	return s.sessionDTO(sess), nil
}

func (s *mockExamService) Select(viewer auth.Viewer, sessionID string, req dto.SelectAnswerRequest) (*dto.SelectAnswerResponse, error) {
	sess, err := s.registry.Get(sessionID, viewer.Owner())
	if err != nil {
		return nil, err
	}
	applied, err := sess.Select(req.QuestionID, req.Choice)
	if err != nil {
		return nil, err
	}
	return &dto.SelectAnswerResponse{
		QuestionID:       req.QuestionID,
		Choice:           req.Choice,
		Applied:          applied,
		SecondsRemaining: sess.SecondsRemaining(),
	}, nil
}

// Submit scores the session on its first call. Repeated calls, or a call
// after the clock already expired, return the stored result.
func (s *mockExamService) Submit(viewer auth.Viewer, sessionID string) (*dto.ScoreReportDTO, error) {
	sess, err := s.registry.Get(sessionID, viewer.Owner())
	if err != nil {
		return nil, err
	}
	result, first := sess.Submit(exam.TriggerManual)
	if !first {
		log.Info().Str("sessionID", sessionID).Msg("SubmitMockExam: Session already submitted, returning stored result")
	}
	report := s.reports.Report(result)
	return &report, nil
}

func (s *mockExamService) Review(viewer auth.Viewer, sessionID string) (*dto.MockExamReviewDTO, error) {
	sess, err := s.registry.Get(sessionID, viewer.Owner())
	if err != nil {
		return nil, err
	}
	items, err := sess.Review()
	if err != nil {
		return nil, err
	}
	result, _ := sess.Result()

	out := &dto.MockExamReviewDTO{
		SessionID:            sess.ID,
		Result:               s.reports.Report(result),
		Items:                make([]dto.ReviewItemDTO, 0, len(items)),
		ExplanationsIncluded: viewer.IsVIP,
	}
	for _, item := range items {
		out.Items = append(out.Items, reviewItemDTO(item, viewer.IsVIP))
	}
	return out, nil
}

func (s *mockExamService) Exit(viewer auth.Viewer, sessionID string) error {
	if err := s.registry.Remove(sessionID, viewer.Owner()); err != nil {
		return err
	}
	log.Info().Str("sessionID", sessionID).Msg("ExitMockExam: Session discarded")
	return nil
}

func (s *mockExamService) Results(ctx context.Context, viewer auth.Viewer, limit int) ([]dto.ExamResultDTO, error) {
	if viewer.IsAnonymous() {
		return nil, ErrLoginRequired
	}
	records, err := s.results.FindAllByUser(ctx, viewer.UserID, limit)
	if err != nil {
		log.Error().Err(err).Str("userID", viewer.UserID).Msg("GetMockExamResults: Failed to load results")
		return nil, fmt.Errorf("load exam results: %w", err)
	}
	out := make([]dto.ExamResultDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, s.reports.FromRecord(rec))
	}
	return out, nil
}

// RunJanitor evicts idle sessions every interval until ctx ends.
func (s *mockExamService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.registry.Sweep(s.cfg.SessionTTL); n > 0 {
				log.Info().Int("evicted", n).Int("live", s.registry.Len()).Msg("Mock exam janitor evicted idle sessions")
			}
		}
	}
}

// Shutdown stops every clock and waits for in-flight persistence.
func (s *mockExamService) Shutdown(ctx context.Context) error {
	s.persistMu.Lock()
	s.stopped = true
	s.persistMu.Unlock()

	s.stopClocks()
	s.registry.Close()

	done := make(chan struct{})
	go func() {
		s.persistWG.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for pending exam results: %w", ctx.Err())
	}
}

// onSubmit runs once per session, from a request or from the clock goroutine.
func (s *mockExamService) onSubmit(sess *exam.Session, result exam.Result) {
	log.Info().
		Str("sessionID", sess.ID).
		Str("trigger", string(result.Trigger)).
		Float64("scorePercent", result.ScorePercent).
		Int("correct", result.CorrectCount).
		Int("total", result.TotalCount).
		Msg("Mock exam scored")

	if sess.UserID == "" {
		return
	}
	s.persist(sess.UserID, result)
}

// persist writes the result and mistakes in the background. Failures are
// logged and not retried.
func (s *mockExamService) persist(userID string, result exam.Result) {
	s.persistMu.Lock()
	if s.stopped {
		s.persistMu.Unlock()
		log.Warn().Str("sessionID", result.SessionID).Err(ErrServiceStopped).Msg("Mock exam result dropped")
		return
	}
	s.persistWG.Add(1)
	s.persistMu.Unlock()

	go func() {
		defer s.persistWG.Done()
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := s.sink.PersistResult(ctx, userID, result); err != nil {
			log.Error().Err(err).Str("sessionID", result.SessionID).Str("userID", userID).Msg("Failed to persist mock exam result")
		}
		if len(result.IncorrectQuestionIDs) == 0 {
			return
		}
		if err := s.sink.PersistMistakes(ctx, userID, result.IncorrectQuestionIDs); err != nil {
			log.Error().Err(err).Str("sessionID", result.SessionID).Str("userID", userID).Msg("Failed to persist mistakes")
		}
	}()
}

func (s *mockExamService) sessionDTO(sess *exam.Session) *dto.MockExamSessionDTO {
	answers := sess.Answers()
	out := &dto.MockExamSessionDTO{
		SessionID:        sess.ID,
		Questions:        make([]dto.ExamQuestionDTO, 0, len(sess.Questions)),
		Answers:          answers,
		AnsweredCount:    len(answers),
		TotalCount:       len(sess.Questions),
		TimeLimitMinutes: sess.TimeLimitMinutes,
		SecondsRemaining: sess.SecondsRemaining(),
		ClockState:       sess.Clock().State().String(),
		StartedAt:        sess.StartedAt,
	}
	for i, q := range sess.Questions {
		out.Questions = append(out.Questions, examQuestionDTO(i+1, q))
	}
	if result, submitted := sess.Result(); submitted {
		out.Submitted = true
		report := s.reports.Report(result)
		out.Result = &report
	}
	return out
}

func examQuestionDTO(position int, q exam.Question) dto.ExamQuestionDTO {
	var out dto.ExamQuestionDTO
	if err := copier.Copy(&out, &q); err != nil {
		log.Error().Err(err).Uint("questionID", q.ID).Msg("examQuestionDTO: Error copying question")
	}
	out.Position = position
	out.OptionsUnavailable = q.OptionsLost || (!q.IsEssay() && len(q.Options) == 0)
	if out.Options == nil {
		out.Options = []string{}
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}

func reviewItemDTO(item exam.ReviewItem, withExplanation bool) dto.ReviewItemDTO {
	q := item.Question
	out := dto.ReviewItemDTO{
		Position:           item.Position,
		QuestionID:         q.ID,
		Content:            q.Content,
		Options:            make([]dto.ReviewOptionDTO, 0, len(item.Options)),
		OptionsUnavailable: q.OptionsLost || (!q.IsEssay() && len(q.Options) == 0),
		CanonicalAnswer:    exam.CleanText(q.Answer),
		Selected:           item.Selected,
		Answered:           item.Answered,
		Correct:            item.Correct,
	}
	for _, opt := range item.Options {
		out.Options = append(out.Options, dto.ReviewOptionDTO{
			Label:     opt.Label,
			Text:      opt.Text,
			Canonical: opt.Canonical,
			Selected:  opt.Selected,
		})
	}
	if withExplanation {
		out.Explanation = q.Explanation
	}
	return out
}
