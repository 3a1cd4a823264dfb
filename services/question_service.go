package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/cppla/qaserver/errorz"
	"github.com/cppla/qaserver/models"
	"github.com/cppla/qaserver/repository"
	"github.com/cppla/qaserver/utils"
)

// QuestionStore is the storage contract the question service depends on.
type QuestionStore interface {
	Create(db *gorm.DB, text string) (*models.Question, error)
	GetByID(db *gorm.DB, id int64) (*models.Question, error)
	GetAll(db *gorm.DB, offset, limit int) ([]models.Question, int64, error)
	Delete(db *gorm.DB, question *models.Question) error
}

// AnswerLister supplies the answers page embedded in a question.
type AnswerLister interface {
	GetAnswers(ctx context.Context, questionID int64, offset, limit int) (*Pagination[AnswerResponse], error)
}

// QuestionService holds question business logic.
type QuestionService struct {
	db        *gorm.DB
	questions QuestionStore
	answers   AnswerLister
}

// NewQuestionService creates a QuestionService.
func NewQuestionService(db *gorm.DB, questions QuestionStore, answers AnswerLister) *QuestionService {
	return &QuestionService{db: db, questions: questions, answers: answers}
}

// CreateQuestion stores a new question.
func (s *QuestionService) CreateQuestion(ctx context.Context, payload QuestionCreate) (*QuestionResponse, error) {
	text, err := cleanText("question text", payload.Text)
	if err != nil {
		return nil, err
	}

	var created *models.Question
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q, err := s.questions.Create(tx, text)
		if err != nil {
			return err
		}
		created = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Sugar.Debugw("question created", "question_id", created.ID)
	resp := newQuestionResponse(created)
	return &resp, nil
}

// GetQuestion returns the question with one page of its answers.
func (s *QuestionService) GetQuestion(ctx context.Context, id int64, offset, limit int) (*QuestionDetailResponse, error) {
	question, err := s.questions.GetByID(s.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, errorz.NotFound("Question with id %d not found", id)
	}

	answers, err := s.answers.GetAnswers(ctx, id, offset, limit)
	if err != nil {
		return nil, err
	}

	return &QuestionDetailResponse{
		QuestionResponse: newQuestionResponse(question),
		Answers:          answers,
	}, nil
}

// GetAllQuestions returns one page of questions.
func (s *QuestionService) GetAllQuestions(ctx context.Context, offset, limit int) (*Pagination[QuestionResponse], error) {
	page := repository.Clamp(offset, limit)

	rows, total, err := s.questions.GetAll(s.db.WithContext(ctx), page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]QuestionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, newQuestionResponse(&rows[i]))
	}
	return &Pagination[QuestionResponse]{
		Total:  total,
		Items:  items,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// DeleteQuestion removes a question and, through the cascade, its answers.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		question, err := s.questions.GetByID(tx, id)
		if err != nil {
			return err
		}
		if question == nil {
			return errorz.NotFound("Question with id %d not found", id)
		}
		return s.questions.Delete(tx, question)
	})
	if err != nil {
		return err
	}
	utils.Sugar.Debugw("question deleted", "question_id", id)
	return nil
}
