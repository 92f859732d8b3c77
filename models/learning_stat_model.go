package models

// LearningStat is a row of the learning_stats view. It is never written.
type LearningStat struct {
	ErrorID               string     `json:"error_id"`
	Subject               Subject    `json:"subject"`
	Category              string     `json:"category"`
	Difficulty            Difficulty `json:"difficulty"`
	PracticeQuestionCount int64      `json:"practice_question_count"`
	PracticeRecordCount   int64      `json:"practice_record_count"`
}

func (LearningStat) TableName() string {
	return "learning_stats"
}
