package models

import (
	"time"

	"gorm.io/datatypes"
)

// PracticeQuestion is a generated variant of an ErrorQuestion. Options holds
// a JSON list of strings, or NULL when the variant has none.
type PracticeQuestion struct {
	ID           string         `gorm:"primaryKey;size:36"`
	ErrorID      string         `gorm:"size:36;not null;index"`
	QuestionText string         `gorm:"type:text;not null"`
	Options      datatypes.JSON `gorm:"column:options"`
	Difficulty   Difficulty     `gorm:"size:16;not null"`
	Category     string         `gorm:"size:100;index"`
	Subject      Subject        `gorm:"size:32;not null;index"`
	CreatedAt    time.Time      `gorm:"not null;index"`
}

func (PracticeQuestion) TableName() string {
	return "practice_questions"
}

// PracticeQuestionColumns selects every column of practice_questions, with
// NULL options read as JSON null.
const PracticeQuestionColumns = "id, error_id, question_text, COALESCE(options, 'null') AS options, difficulty, category, subject, created_at"
