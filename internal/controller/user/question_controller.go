package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/internal/controller"
	"github.com/lshigami/examprep/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(qs service.QuestionService) *QuestionController {
	return &QuestionController{questionService: qs}
}

// GetFacets godoc
// @Summary List question filter values
// @Description Distinct years (newest first), subjects and tags available in the question bank, used to build mock exam filters.
// @Tags Questions
// @Produce json
// @Success 200 {object} dto.QuestionFacetsResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/facets [get]
func (c *QuestionController) GetFacets(ctx *gin.Context) {
	facets, err := c.questionService.GetFacets(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load question filters")
		return
	}
	ctx.JSON(http.StatusOK, facets)
}

func (c *QuestionController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions/facets", c.GetFacets)
}
