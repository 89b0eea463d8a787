package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/config"
	"github.com/lshigami/examprep/internal/auth"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/lshigami/examprep/internal/service"
	"github.com/lshigami/examprep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router   *gin.Engine
	db       *gorm.DB
	verifier *auth.Verifier
	exams    service.MockExamService
	bank     []model.Question
}

func setup(t *testing.T) *testServer {
	t.Helper()
	db := testutil.PrepareDB(t)
	bank := testutil.SeedQuestions(t, db,
		model.Question{Content: "Who founded psychoanalysis?", Type: "choice", Options: `["Freud","Jung","Adler","Rogers"]`, Answer: "Freud", Explanation: "Vienna", Subject: "心理學", Year: "112", Tags: `["人格"]`},
		model.Question{Content: "Client-centred therapy?", Type: "choice", Options: `"[\"Freud\",\"Jung\",\"Adler\",\"Rogers\"]"`, Answer: `"Rogers"`, Subject: "心理學", Year: "112", Tags: `["諮商"]`},
		model.Question{Content: "Analytical psychology?", Type: "choice", Options: `["Freud","Jung","Adler","Rogers"]`, Answer: "Jung", Subject: "心理學", Year: "111", Tags: `["人格"]`},
		model.Question{Content: "Individual psychology?", Type: "choice", Options: `["Freud","Jung","Adler","Rogers"]`, Answer: "Adler", Subject: "心理學", Year: "111", Tags: `[]`},
		model.Question{Content: "Discuss ethics.", Type: "essay", Subject: "心理學", Year: "112"},
	)
	require.NoError(t, db.Create(&model.Profile{ID: "vip-user", IsVIP: true}).Error)

	cfg := &config.Config{
		Auth: config.Auth{JWTSecret: "test-secret"},
		Exam: config.Exam{DefaultCount: 50, DefaultTimeLimitMinutes: 30, MaxCount: 100, SessionTTL: time.Hour, PassMark: 60},
	}
	questions := repository.NewQuestionRepository(db)
	results := repository.NewExamResultRepository(db)
	sink := repository.NewResultSink(results, repository.NewMistakeRepository(db))
	exams := service.NewMockExamService(repository.NewQuestionSource(questions), sink, results, service.NewScoreReportService(cfg), cfg)
	t.Cleanup(func() { _ = exams.Shutdown(context.Background()) })

	verifier := auth.NewVerifier(cfg)
	router := gin.New()
	api := router.Group("/api/v1", auth.Middleware(verifier, repository.NewProfileRepository(db)))
	NewMockExamController(exams).RegisterRoutes(api)
	NewQuestionController(service.NewQuestionService(questions)).RegisterRoutes(api)

	return &testServer{router: router, db: db, verifier: verifier, exams: exams, bank: bank}
}

func (s *testServer) token(t *testing.T, sub string) string {
	t.Helper()
	tok, err := s.verifier.Issue(sub, time.Hour)
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return s.doWith(t, method, path, token, "", body)
}

func (s *testServer) doWith(t *testing.T, method, path, token, guest string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if guest != "" {
		req.Header.Set(auth.GuestTokenHeader, guest)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestMockExamHTTPFlow(t *testing.T) {
	srv := setup(t)
	tok := srv.token(t, "alice")

	rec := srv.do(t, http.MethodPost, "/api/v1/mock-exams", tok, dto.StartMockExamRequest{Subject: "心理學", Count: 10})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	started := decode[dto.MockExamSessionDTO](t, rec)
	require.Len(t, started.Questions, 4, "essay question must be excluded")
	for _, q := range started.Questions {
		assert.Equal(t, []string{"Freud", "Jung", "Adler", "Rogers"}, q.Options)
		assert.Equal(t, "choice", q.Type)
	}
	assert.Equal(t, 1800, started.SecondsRemaining)

	// answers: Freud (right), Freud (wrong), Jung (right), Adler (right)
	choices := map[uint]string{
		srv.bank[0].ID: "Freud",
		srv.bank[1].ID: "Freud",
		srv.bank[2].ID: "Jung",
		srv.bank[3].ID: "Adler",
	}
	path := "/api/v1/mock-exams/" + started.SessionID
	for qid, choice := range choices {
		rec = srv.do(t, http.MethodPut, path+"/answers", tok, dto.SelectAnswerRequest{QuestionID: qid, Choice: choice})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.True(t, decode[dto.SelectAnswerResponse](t, rec).Applied)
	}

	rec = srv.do(t, http.MethodGet, path+"/review", tok, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, http.MethodPost, path+"/submit", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := decode[dto.ScoreReportDTO](t, rec)
	assert.Equal(t, 75.0, report.ScorePercent)
	assert.Equal(t, "75.00", report.DisplayScore)
	assert.Equal(t, []uint{srv.bank[1].ID}, report.IncorrectQuestionIDs)

	rec = srv.do(t, http.MethodPost, path+"/submit", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report, decode[dto.ScoreReportDTO](t, rec))

	rec = srv.do(t, http.MethodGet, path+"/review", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	review := decode[dto.MockExamReviewDTO](t, rec)
	require.Len(t, review.Items, 4)
	assert.False(t, review.ExplanationsIncluded)
	for i, item := range review.Items {
		assert.Equal(t, started.Questions[i].ID, item.QuestionID, "review keeps exam order")
		assert.Empty(t, item.Explanation)
	}

	// persistence is asynchronous; Shutdown drains it
	require.NoError(t, srv.exams.Shutdown(context.Background()))

	var stored model.ExamResult
	require.NoError(t, srv.db.Where("session_id = ?", started.SessionID).First(&stored).Error)
	assert.Equal(t, "alice", stored.UserID)
	assert.Equal(t, 75.0, stored.ScorePercent)

	var mistakes []model.Mistake
	require.NoError(t, srv.db.Where("user_id = ?", "alice").Find(&mistakes).Error)
	require.Len(t, mistakes, 1)
	assert.Equal(t, srv.bank[1].ID, mistakes[0].QuestionID)

	rec = srv.do(t, http.MethodGet, "/api/v1/mock-exams/results", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	history := decode[[]dto.ExamResultDTO](t, rec)
	require.Len(t, history, 1)
	assert.Equal(t, started.SessionID, history[0].SessionID)
	assert.True(t, history[0].Passed)
}

func TestMockExamHTTPErrors(t *testing.T) {
	srv := setup(t)
	tok := srv.token(t, "alice")

	rec := srv.do(t, http.MethodPost, "/api/v1/mock-exams", tok, dto.StartMockExamRequest{Subject: "天文學"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no questions available", decode[dto.ErrorResponse](t, rec).Message)

	rec = srv.do(t, http.MethodPost, "/api/v1/mock-exams", tok, map[string]any{"count": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/mock-exams", "", dto.StartMockExamRequest{MistakesOnly: true})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/mock-exams", "not-a-jwt", dto.StartMockExamRequest{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/mock-exams/does-not-exist", tok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/mock-exams/results", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/mock-exams/results?limit=zero", tok, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/mock-exams", tok, dto.StartMockExamRequest{})
	require.Equal(t, http.StatusCreated, rec.Code)
	started := decode[dto.MockExamSessionDTO](t, rec)
	path := "/api/v1/mock-exams/" + started.SessionID

	rec = srv.do(t, http.MethodPut, path+"/answers", tok, dto.SelectAnswerRequest{QuestionID: 99999, Choice: "Freud"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPut, path+"/answers", tok, map[string]any{"question_id": srv.bank[0].ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// another user cannot see or end the session
	other := srv.token(t, "mallory")
	assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodGet, path, other, nil).Code)
	assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodDelete, path, other, nil).Code)

	assert.Equal(t, http.StatusNoContent, srv.do(t, http.MethodDelete, path, tok, nil).Code)
	assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodGet, path, tok, nil).Code)
}

func TestMockExamHTTPVipReview(t *testing.T) {
	srv := setup(t)
	tok := srv.token(t, "vip-user")

	rec := srv.do(t, http.MethodPost, "/api/v1/mock-exams", tok, dto.StartMockExamRequest{Year: "112", Tag: "人格"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	started := decode[dto.MockExamSessionDTO](t, rec)
	require.Len(t, started.Questions, 1)

	path := "/api/v1/mock-exams/" + started.SessionID
	require.Equal(t, http.StatusOK, srv.do(t, http.MethodPost, path+"/submit", tok, nil).Code)

	rec = srv.do(t, http.MethodGet, path+"/review", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	review := decode[dto.MockExamReviewDTO](t, rec)
	assert.True(t, review.ExplanationsIncluded)
	assert.Equal(t, "Vienna", review.Items[0].Explanation)
	assert.False(t, review.Items[0].Answered)
	assert.Equal(t, 0.0, review.Result.ScorePercent)
}

func TestMockExamHTTPMistakesOnly(t *testing.T) {
	srv := setup(t)
	tok := srv.token(t, "alice")
	require.NoError(t, repository.NewMistakeRepository(srv.db).AddAll(context.Background(), "alice", []uint{srv.bank[2].ID}))

	rec := srv.do(t, http.MethodPost, "/api/v1/mock-exams", tok, dto.StartMockExamRequest{MistakesOnly: true})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	started := decode[dto.MockExamSessionDTO](t, rec)
	require.Len(t, started.Questions, 1)
	assert.Equal(t, srv.bank[2].ID, started.Questions[0].ID)
}

func TestQuestionFacetsHTTP(t *testing.T) {
	srv := setup(t)
	rec := srv.do(t, http.MethodGet, "/api/v1/questions/facets", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	facets := decode[dto.QuestionFacetsResponse](t, rec)
	assert.Equal(t, []string{"112", "111"}, facets.Years)
	assert.Equal(t, []string{"心理學"}, facets.Subjects)
	assert.Equal(t, []string{"人格", "諮商"}, facets.Tags)
}

func TestMockExamHTTPGuestSession(t *testing.T) {
	srv := setup(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/mock-exams", "", dto.StartMockExamRequest{Count: 2})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	started := decode[dto.MockExamSessionDTO](t, rec)
	require.NotEmpty(t, started.GuestToken)
	path := "/api/v1/mock-exams/" + started.SessionID

	// Without the token, or with another visitor's, the session does not exist.
	rec = srv.do(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = srv.doWith(t, http.MethodPost, path+"/submit", "", "not-mine", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = srv.doWith(t, http.MethodDelete, path, "", "not-mine", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.doWith(t, http.MethodPost, path+"/submit", "", started.GuestToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = srv.doWith(t, http.MethodGet, path, "", started.GuestToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[dto.MockExamSessionDTO](t, rec)
	assert.True(t, state.Submitted)
	assert.Equal(t, "stopped", state.ClockState)
	assert.Empty(t, state.GuestToken)

	require.NoError(t, srv.exams.Shutdown(context.Background()))
	var persisted int64
	require.NoError(t, srv.db.Model(&model.ExamResult{}).Count(&persisted).Error)
	assert.Zero(t, persisted)
}
