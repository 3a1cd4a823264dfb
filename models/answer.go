package models

import (
	"time"

	"github.com/google/uuid"
)

// Answer is a reply to a question written by a user.
// Both references are declared as engine constraints: the question side cascades, the user side restricts.
type Answer struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	QuestionID int64     `gorm:"index;not null"`
	UserID     uuid.UUID `gorm:"type:char(36);index;not null"`
	Text       string    `gorm:"size:255;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null"`
	Question   *Question `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User       *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

// Constraint names generated by gorm for the two references above.
const (
	AnswerQuestionConstraint = "fk_answers_question"
	AnswerUserConstraint     = "fk_answers_user"
)
