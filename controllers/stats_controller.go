package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/qaserver/models"
	"github.com/cppla/qaserver/utils"
)

// StatsController reports row counts for the three tables.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// StatsResponse is the body of GET /stats.
type StatsResponse struct {
	QuestionCount int64 `json:"question_count"`
	AnswerCount   int64 `json:"answer_count"`
	UserCount     int64 `json:"user_count"`
}

// GetStats returns aggregate counts.
func (s *StatsController) GetStats(ctx *gin.Context) {
	db := s.db.WithContext(ctx.Request.Context())
	var stats StatsResponse

	counts := []struct {
		model any
		dst   *int64
	}{
		{&models.Question{}, &stats.QuestionCount},
		{&models.Answer{}, &stats.AnswerCount},
		{&models.User{}, &stats.UserCount},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			utils.Fail(ctx, fmt.Errorf("count %T: %w", c.model, err))
			return
		}
	}
	utils.Success(ctx, stats)
}
