package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/internal/auth"
	"github.com/lshigami/examprep/internal/controller"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/service"
	"github.com/rs/zerolog/log"
)

const defaultResultsLimit = 20

type MockExamController struct {
	mockExamService service.MockExamService
}

func NewMockExamController(mes service.MockExamService) *MockExamController {
	return &MockExamController{mockExamService: mes}
}

// StartMockExam godoc
// @Summary Start a timed mock exam
// @Description Draws a shuffled pool of choice questions matching the filters and starts the countdown. Essay questions are never included. Anonymous visitors receive a guest_token to send back in X-Guest-Token.
// @Tags Mock Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StartMockExamRequest true "Pool filters, question count and time limit"
// @Success 201 {object} dto.MockExamSessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Login required for mistakes-only exams"
// @Failure 404 {object} dto.ErrorResponse "No questions available"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mock-exams [post]
func (c *MockExamController) StartMockExam(ctx *gin.Context) {
	var req dto.StartMockExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartMockExam: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	session, err := c.mockExamService.Start(ctx.Request.Context(), auth.FromContext(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to start mock exam")
		return
	}
	ctx.JSON(http.StatusCreated, session)
}

// GetMockExam godoc
// @Summary Get the current state of a mock exam
// @Description Questions, recorded answers and remaining time. Includes the score once submitted.
// @Tags Mock Exams
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Param X-Guest-Token header string false "Guest token from start, for anonymous sessions"
// @Success 200 {object} dto.MockExamSessionDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /mock-exams/{session_id} [get]
func (c *MockExamController) GetMockExam(ctx *gin.Context) {
	session, err := c.mockExamService.Get(auth.FromContext(ctx), ctx.Param("session_id"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load mock exam")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// SelectAnswer godoc
// @Summary Record an answer
// @Description Replaces any earlier choice for the question. After submission the call is ignored and applied is false.
// @Tags Mock Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Param X-Guest-Token header string false "Guest token from start, for anonymous sessions"
// @Param request body dto.SelectAnswerRequest true "Question and chosen option"
// @Success 200 {object} dto.SelectAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or question not in this session"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /mock-exams/{session_id}/answers [put]
func (c *MockExamController) SelectAnswer(ctx *gin.Context) {
	var req dto.SelectAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.mockExamService.Select(auth.FromContext(ctx), ctx.Param("session_id"), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to record answer")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitMockExam godoc
// @Summary Submit a mock exam for scoring
// @Description Scores the session once. Submitting again, or after the timer ran out, returns the same result.
// @Tags Mock Exams
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Param X-Guest-Token header string false "Guest token from start, for anonymous sessions"
// @Success 200 {object} dto.ScoreReportDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /mock-exams/{session_id}/submit [post]
func (c *MockExamController) SubmitMockExam(ctx *gin.Context) {
	report, err := c.mockExamService.Submit(auth.FromContext(ctx), ctx.Param("session_id"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to submit mock exam")
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// ReviewMockExam godoc
// @Summary Review a submitted mock exam
// @Description Every question in exam order with the correct answer and the user's choice marked. Explanations are included for VIP members.
// @Tags Mock Exams
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Param X-Guest-Token header string false "Guest token from start, for anonymous sessions"
// @Success 200 {object} dto.MockExamReviewDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session not submitted yet"
// @Router /mock-exams/{session_id}/review [get]
func (c *MockExamController) ReviewMockExam(ctx *gin.Context) {
	review, err := c.mockExamService.Review(auth.FromContext(ctx), ctx.Param("session_id"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load review")
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// ExitMockExam godoc
// @Summary Leave a mock exam
// @Description Discards the session. An unsubmitted session is abandoned without a result.
// @Tags Mock Exams
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Param X-Guest-Token header string false "Guest token from start, for anonymous sessions"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /mock-exams/{session_id} [delete]
func (c *MockExamController) ExitMockExam(ctx *gin.Context) {
	if err := c.mockExamService.Exit(auth.FromContext(ctx), ctx.Param("session_id")); err != nil {
		controller.RespondError(ctx, err, "Failed to exit mock exam")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetMyResults godoc
// @Summary List my mock exam results
// @Description Persisted results of the signed-in user, newest first.
// @Tags Mock Exams
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of results (default 20)"
// @Success 200 {array} dto.ExamResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 401 {object} dto.ErrorResponse "Login required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mock-exams/results [get]
func (c *MockExamController) GetMyResults(ctx *gin.Context) {
	limit := defaultResultsLimit
	if limitStr := ctx.Query("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit"})
			return
		}
		limit = val
	}

	results, err := c.mockExamService.Results(ctx.Request.Context(), auth.FromContext(ctx), limit)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve results")
		return
	}
	ctx.JSON(http.StatusOK, results)
}

func (c *MockExamController) RegisterRoutes(rg *gin.RouterGroup) {
	exams := rg.Group("/mock-exams")
	exams.POST("", c.StartMockExam)
	exams.GET("/results", auth.RequireUser(), c.GetMyResults)
	exams.GET("/:session_id", c.GetMockExam)
	exams.PUT("/:session_id/answers", c.SelectAnswer)
	exams.POST("/:session_id/submit", c.SubmitMockExam)
	exams.GET("/:session_id/review", c.ReviewMockExam)
	exams.DELETE("/:session_id", c.ExitMockExam)
}
