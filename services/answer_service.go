package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cppla/qaserver/errorz"
	"github.com/cppla/qaserver/models"
	"github.com/cppla/qaserver/repository"
	"github.com/cppla/qaserver/utils"
)

// AnswerStore is the storage contract the answer service depends on.
type AnswerStore interface {
	Create(db *gorm.DB, questionID int64, userID uuid.UUID, text string) (*models.Answer, error)
	GetByID(db *gorm.DB, id int64) (*models.Answer, error)
	GetByQuestionID(db *gorm.DB, questionID int64, offset, limit int) ([]models.Answer, int64, error)
	Delete(db *gorm.DB, answer *models.Answer) error
}

// AnswerService holds answer business logic.
type AnswerService struct {
	db      *gorm.DB
	answers AnswerStore
}

// NewAnswerService creates an AnswerService.
func NewAnswerService(db *gorm.DB, answers AnswerStore) *AnswerService {
	return &AnswerService{db: db, answers: answers}
}

// CreateAnswer adds an answer to a question. A missing question is NotFound, any other rejected
// reference is a Conflict; both come from storage unchanged.
func (s *AnswerService) CreateAnswer(ctx context.Context, questionID int64, payload AnswerCreate) (*AnswerResponse, error) {
	text, err := cleanText("answer text", payload.Text)
	if err != nil {
		return nil, err
	}
	userID, err := ParseUserID(payload.UserID)
	if err != nil {
		return nil, err
	}

	var created *models.Answer
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := s.answers.Create(tx, questionID, userID, text)
		if err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Sugar.Debugw("answer created", "answer_id", created.ID, "question_id", questionID)
	resp := newAnswerResponse(created)
	return &resp, nil
}

// GetAnswers returns one page of a question's answers. It does not check that the question exists.
func (s *AnswerService) GetAnswers(ctx context.Context, questionID int64, offset, limit int) (*Pagination[AnswerResponse], error) {
	page := repository.Clamp(offset, limit)

	rows, total, err := s.answers.GetByQuestionID(s.db.WithContext(ctx), questionID, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]AnswerResponse, 0, len(rows))
	for i := range rows {
		items = append(items, newAnswerResponse(&rows[i]))
	}
	return &Pagination[AnswerResponse]{
		Total:  total,
		Items:  items,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// GetAnswer returns one answer.
func (s *AnswerService) GetAnswer(ctx context.Context, id int64) (*AnswerResponse, error) {
	answer, err := s.answers.GetByID(s.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, errorz.NotFound("Answer with id %d not found", id)
	}
	resp := newAnswerResponse(answer)
	return &resp, nil
}

// DeleteAnswer removes an answer after confirming it exists.
func (s *AnswerService) DeleteAnswer(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		answer, err := s.answers.GetByID(tx, id)
		if err != nil {
			return err
		}
		if answer == nil {
			return errorz.NotFound("Answer with id %d not found", id)
		}
		return s.answers.Delete(tx, answer)
	})
	if err != nil {
		return err
	}
	utils.Sugar.Debugw("answer deleted", "answer_id", id)
	return nil
}
