package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cppla/qaserver/errorz"
	"github.com/cppla/qaserver/models"
)

// AnswerRepository issues statements against the answers table.
type AnswerRepository struct{}

// NewAnswerRepository creates an AnswerRepository.
func NewAnswerRepository() AnswerRepository {
	return AnswerRepository{}
}

// errUnknownReference marks a foreign key failure whose constraint the engine did not name.
var errUnknownReference = errors.New("unnamed foreign key violation")

// Create inserts an answer. A missing question is reported as NotFound; any other integrity
// failure, an unknown user included, is a Conflict.
func (AnswerRepository) Create(db *gorm.DB, questionID int64, userID uuid.UUID, text string) (*models.Answer, error) {
	answer := models.Answer{QuestionID: questionID, UserID: userID, Text: text}
	err := db.Create(&answer).Error
	if err == nil {
		return &answer, nil
	}

	classified := answerWriteError(err, questionID, "Can't create answer")
	if !errors.Is(classified, errUnknownReference) {
		return nil, classified
	}

	// SQLite does not say which reference failed. Its transaction stays usable after a failed
	// statement, so look at the question on the same session.
	var n int64
	if cerr := db.Model(&models.Question{}).Where("id = ?", questionID).Count(&n).Error; cerr != nil {
		return nil, fmt.Errorf("check question %d: %w", questionID, cerr)
	}
	if n == 0 {
		return nil, errorz.NotFound("Question with id %d not found", questionID)
	}
	return nil, errorz.Conflict(err, "Can't create answer: user %s does not exist", userID)
}

// GetByID returns the answer or nil when it does not exist.
func (AnswerRepository) GetByID(db *gorm.DB, id int64) (*models.Answer, error) {
	var answer models.Answer
	if err := db.First(&answer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load answer %d: %w", id, err)
	}
	return &answer, nil
}

// GetByQuestionID returns one clamped page of a question's answers and their total count.
func (AnswerRepository) GetByQuestionID(db *gorm.DB, questionID int64, offset, limit int) ([]models.Answer, int64, error) {
	page := Clamp(offset, limit)

	var answers []models.Answer
	if err := db.Where("question_id = ?", questionID).
		Order("id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&answers).Error; err != nil {
		return nil, 0, fmt.Errorf("list answers of question %d: %w", questionID, err)
	}

	var total int64
	if err := db.Model(&models.Answer{}).Where("question_id = ?", questionID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count answers of question %d: %w", questionID, err)
	}
	return answers, total, nil
}

// Delete removes the answer.
func (AnswerRepository) Delete(db *gorm.DB, answer *models.Answer) error {
	res := db.Delete(&models.Answer{}, answer.ID)
	if res.Error != nil {
		return answerWriteError(res.Error, answer.QuestionID, "Can't delete answer")
	}
	if res.RowsAffected == 0 {
		return errorz.NotFound("Answer with id %d not found", answer.ID)
	}
	return nil
}

// answerWriteError is the single translation point from raw integrity failures on answers.
func answerWriteError(err error, questionID int64, message string) error {
	kind, constraint := inspect(err)
	switch kind {
	case foreignKeyViolation:
		name := strings.ToLower(constraint)
		switch {
		case name == "":
			return fmt.Errorf("%s: %w: %w", message, errUnknownReference, err)
		case strings.Contains(name, "question"):
			return errorz.NotFound("Question with id %d not found", questionID)
		default:
			return errorz.Conflict(err, "%s", message)
		}
	case uniqueViolation:
		return errorz.Conflict(err, "%s", message)
	default:
		return fmt.Errorf("%s: %w", message, err)
	}
}
