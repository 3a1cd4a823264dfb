package services

import (
	"time"

	"github.com/cppla/qaserver/models"
)

// QuestionCreate is the body of a create question request.
type QuestionCreate struct {
	Text string `json:"text" binding:"required"`
}

// AnswerCreate is the body of a create answer request.
type AnswerCreate struct {
	UserID string `json:"user_id" binding:"required,uuid4"`
	Text   string `json:"text" binding:"required"`
}

// UserCreate is the body of a create user request. ID is optional; the server assigns a v4 UUID when empty.
type UserCreate struct {
	ID       string `json:"id" binding:"omitempty,uuid4"`
	Username string `json:"username" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type QuestionResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type AnswerResponse struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	UserID     string `json:"user_id"`
	Text       string `json:"text"`
	CreatedAt  string `json:"created_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// Pagination is the envelope for every list. Total counts the whole matching set; Limit and Offset
// are the clamped values actually used.
type Pagination[T any] struct {
	Total  int64 `json:"total"`
	Items  []T   `json:"items"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// QuestionDetailResponse is a question together with one page of its answers.
type QuestionDetailResponse struct {
	QuestionResponse
	Answers *Pagination[AnswerResponse] `json:"answers"`
}

func newQuestionResponse(q *models.Question) QuestionResponse {
	return QuestionResponse{ID: q.ID, Text: q.Text, CreatedAt: timestamp(q.CreatedAt)}
}

func newAnswerResponse(a *models.Answer) AnswerResponse {
	return AnswerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		UserID:     a.UserID.String(),
		Text:       a.Text,
		CreatedAt:  timestamp(a.CreatedAt),
	}
}

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: timestamp(u.CreatedAt),
	}
}

// timestamp renders ISO-8601, or "unknown" when the row carries no time.
func timestamp(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format(time.RFC3339Nano)
}
