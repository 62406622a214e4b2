package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

type InterviewQuestion struct {
	ID               string          `json:"id" gorm:"primaryKey;type:uuid"`
	QuestionText     string          `json:"question_text" gorm:"type:text;not null"`
	CategoryID       *string         `json:"category_id" gorm:"index"`
	StageID          *string         `json:"stage_id" gorm:"index"`
	DifficultyLevel  DifficultyLevel `json:"difficulty_level" gorm:"size:20"`
	ExpectedAnswer   *string         `json:"expected_answer" gorm:"type:text"`
	ReferenceAnswer  *string         `json:"reference_answer" gorm:"type:text"`
	AnswerSuggestion *string         `json:"answer_suggestion" gorm:"type:text"`
	Keywords         datatypes.JSON  `json:"keywords" gorm:"type:jsonb"`
	TimeLimit        *int            `json:"time_limit"` // seconds

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (InterviewQuestion) TableName() string {
	return "interview_questions"
}

// KeywordList decodes Keywords. A plain string column value is returned as a single keyword.
func (q *InterviewQuestion) KeywordList() []string {
	if len(q.Keywords) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(q.Keywords, &list); err == nil {
		return list
	}

	var single string
	if err := json.Unmarshal(q.Keywords, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}

// Reference returns the expected answer, falling back to the reference answer
func (q *InterviewQuestion) Reference() string {
	if q.ExpectedAnswer != nil && *q.ExpectedAnswer != "" {
		return *q.ExpectedAnswer
	}
	if q.ReferenceAnswer != nil {
		return *q.ReferenceAnswer
	}
	return ""
}
