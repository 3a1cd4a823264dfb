package models

import "time"

// Question is a prompt that users answer. Deleting it removes its answers through the
// answers.question_id foreign key.
type Question struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Text      string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null"`
}
