package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// PracticeSession is one attempt at one interview question.
// Sessions answered in the same sitting share a SessionID (the practice group).
type PracticeSession struct {
	ID         string  `json:"id" gorm:"primaryKey;type:uuid"`
	UserID     string  `json:"user_id" gorm:"not null;index"`
	QuestionID string  `json:"question_id" gorm:"index"`
	StageID    *string `json:"stage_id"`
	CategoryID *string `json:"category_id"`
	SessionID  string  `json:"session_id" gorm:"index"`

	UserAnswer string  `json:"user_answer" gorm:"type:text"`
	AudioURL   *string `json:"audio_url" gorm:"size:500"`

	// AI evaluation
	OverallScore     *float64       `json:"overall_score"`
	ContentScore     *float64       `json:"content_score"`
	LogicScore       *float64       `json:"logic_score"`
	ExpressionScore  *float64       `json:"expression_score"`
	CompetencyScores datatypes.JSON `json:"competency_scores" gorm:"type:jsonb"`
	AIFeedback       *string        `json:"ai_feedback" gorm:"column:ai_feedback;type:text"`
	SessionSummary   *string        `json:"session_summary" gorm:"type:text"`

	PracticeDuration *int `json:"practice_duration"` // seconds

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Profile  *Profile           `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Question *InterviewQuestion `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
}

func (PracticeSession) TableName() string {
	return "practice_sessions"
}

// CompetencyMap decodes CompetencyScores, ignoring malformed payloads
func (s *PracticeSession) CompetencyMap() map[string]float64 {
	if len(s.CompetencyScores) == 0 {
		return nil
	}
	var scores map[string]float64
	if err := json.Unmarshal(s.CompetencyScores, &scores); err != nil {
		return nil
	}
	return scores
}
