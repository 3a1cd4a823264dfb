package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/cppla/qaserver/services"
	"github.com/cppla/qaserver/utils"
)

// QuestionController serves the question endpoints.
type QuestionController struct {
	questions *services.QuestionService
}

// NewQuestionController creates a new QuestionController instance.
func NewQuestionController(questions *services.QuestionService) *QuestionController {
	return &QuestionController{questions: questions}
}

// CreateQuestion handles POST /questions.
func (q *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req services.QuestionCreate
	if err := bindJSON(ctx, &req); err != nil {
		utils.Fail(ctx, err)
		return
	}
	question, err := q.questions.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Created(ctx, question)
}

// ListQuestions handles GET /questions.
func (q *QuestionController) ListQuestions(ctx *gin.Context) {
	offset, limit, err := parsePagination(ctx)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	page, err := q.questions.GetAllQuestions(ctx.Request.Context(), offset, limit)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, page)
}

// GetQuestion handles GET /questions/:question_id; offset and limit page the embedded answers.
func (q *QuestionController) GetQuestion(ctx *gin.Context) {
	id, err := parseID(ctx, "question_id")
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	offset, limit, err := parsePagination(ctx)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	question, err := q.questions.GetQuestion(ctx.Request.Context(), id, offset, limit)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.Success(ctx, question)
}

// DeleteQuestion handles DELETE /questions/:question_id.
func (q *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, err := parseID(ctx, "question_id")
	if err != nil {
		utils.Fail(ctx, err)
		return
	}
	if err := q.questions.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		utils.Fail(ctx, err)
		return
	}
	utils.NoContent(ctx)
}
