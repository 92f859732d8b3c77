package models

import (
	"time"

	"gorm.io/datatypes"
)

type Subject string

const (
	SubjectMath       Subject = "Math"
	SubjectScience    Subject = "Science"
	SubjectHistory    Subject = "History"
	SubjectLiterature Subject = "Literature"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ErrorQuestion is a question the student previously answered incorrectly.
type ErrorQuestion struct {
	ID               string         `gorm:"primaryKey;size:36"`
	Subject          Subject        `gorm:"size:32;not null;index"`
	Difficulty       Difficulty     `gorm:"size:16;not null"`
	OriginalQuestion string         `gorm:"type:text;not null"`
	Options          datatypes.JSON `gorm:"column:options"`
	CorrectAnswer    string         `gorm:"type:text;not null"`
	Category         string         `gorm:"size:100;index"`
	CreatedAt        time.Time      `gorm:"not null"`
}

func (ErrorQuestion) TableName() string {
	return "errors"
}

// ErrorQuestionColumns selects every column of errors. NULL options come
// back as JSON null because datatypes.JSON cannot scan NULL.
const ErrorQuestionColumns = "id, subject, difficulty, original_question, COALESCE(options, 'null') AS options, correct_answer, category, created_at"
