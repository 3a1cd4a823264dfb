package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cppla/qaserver/errorz"
	"github.com/cppla/qaserver/models"
)

// QuestionRepository issues statements against the questions table. It holds no state; every call
// runs on the session it is given, which is a transaction for writes.
type QuestionRepository struct{}

// NewQuestionRepository creates a QuestionRepository.
func NewQuestionRepository() QuestionRepository {
	return QuestionRepository{}
}

// Create inserts a question.
func (QuestionRepository) Create(db *gorm.DB, text string) (*models.Question, error) {
	question := models.Question{Text: text}
	if err := db.Create(&question).Error; err != nil {
		return nil, questionWriteError(err, "Can't create question")
	}
	return &question, nil
}

// GetByID returns the question or nil when it does not exist.
func (QuestionRepository) GetByID(db *gorm.DB, id int64) (*models.Question, error) {
	var question models.Question
	if err := db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load question %d: %w", id, err)
	}
	return &question, nil
}

// GetAll returns one clamped page of questions and the total number of questions.
func (QuestionRepository) GetAll(db *gorm.DB, offset, limit int) ([]models.Question, int64, error) {
	page := Clamp(offset, limit)

	var questions []models.Question
	if err := db.Order("id ASC").Offset(page.Offset).Limit(page.Limit).Find(&questions).Error; err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}

	var total int64
	if err := db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}
	return questions, total, nil
}

// Delete removes the question; the engine deletes its answers in the same statement.
func (QuestionRepository) Delete(db *gorm.DB, question *models.Question) error {
	res := db.Delete(&models.Question{}, question.ID)
	if res.Error != nil {
		return questionWriteError(res.Error, "Can't delete question")
	}
	if res.RowsAffected == 0 {
		return errorz.NotFound("Question with id %d not found", question.ID)
	}
	return nil
}

// questionWriteError is the single translation point from raw integrity failures on questions.
func questionWriteError(err error, message string) error {
	if kind, _ := inspect(err); kind != noViolation {
		return errorz.Conflict(err, "%s", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}
