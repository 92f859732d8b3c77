package models

import "time"

type PracticeRecord struct {
	ID            string    `gorm:"primaryKey;size:36"`
	ErrorID       string    `gorm:"size:36;not null;index"`
	QuestionIndex int       `gorm:"not null"`
	UserAnswer    string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

func (PracticeRecord) TableName() string {
	return "practice_records"
}
