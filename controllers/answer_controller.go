package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/cppla/qaserver/services"
	"github.com/cppla/qaserver/utils"
)

// AnswerController serves the answer endpoints.
type AnswerController struct {
	answers *services.AnswerService
}

// NewAnswerController creates a new AnswerController instance.
func NewAnswerController(answers *services.AnswerService) *AnswerController {
	return &AnswerController{answers: answers}
}

// CreateAnswer handles POST /questions/:question_id/answers.
func (a *AnswerController) CreateAnswer(ctx *gin.Context) {
	questionID, err := parseID(ctx, "question_id")
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	var req services.AnswerCreate
	if err := bindJSON(ctx, &req); err != nil {
		utils.Fail(ctx, err)
		return
	}
	answer, err := a.answers.CreateAnswer(ctx.Request.Context(), questionID, req)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Created(ctx, answer)
}

// ListAnswers handles GET /questions/:question_id/answers.
func (a *AnswerController) ListAnswers(ctx *gin.Context) {
	questionID, err := parseID(ctx, "question_id")
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	offset, limit, err := parsePagination(ctx)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	page, err := a.answers.GetAnswers(ctx.Request.Context(), questionID, offset, limit)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, page)
}

// GetAnswer handles GET /answers/:answer_id.
func (a *AnswerController) GetAnswer(ctx *gin.Context) {
	id, err := parseID(ctx, "answer_id")
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	answer, err := a.answers.GetAnswer(ctx.Request.Context(), id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, answer)
}

// DeleteAnswer handles DELETE /answers/:answer_id.
func (a *AnswerController) DeleteAnswer(ctx *gin.Context) {
	id, err := parseID(ctx, "answer_id")
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	if err := a.answers.DeleteAnswer(ctx.Request.Context(), id); err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.NoContent(ctx)
}
