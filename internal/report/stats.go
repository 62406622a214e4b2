package report

import (
	"strings"
	"time"
)

// Session is the read-only view of a practice session used by report calculations
type Session struct {
	ID         string
	UserID     string
	GroupID    string
	QuestionID string
	StageID    string
	UserAnswer string

	// Scores are optional; missing values count as 0
	OverallScore    *float64
	ContentScore    *float64
	LogicScore      *float64
	ExpressionScore *float64
	Competencies    map[Competency]float64

	CreatedAt time.Time
}

// Answered reports whether the user actually submitted an answer
func (s Session) Answered() bool {
	return strings.TrimSpace(s.UserAnswer) != ""
}

// Stats summarises the answered sessions of a practice set
type Stats struct {
	TotalSessions int     `json:"total_sessions"`
	AverageScore  float64 `json:"average_score"`
	HighestScore  float64 `json:"highest_score"`
}

// FilterAnswered returns the sessions with a non-blank answer, preserving order.
func FilterAnswered(sessions []Session) []Session {
	answered := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Answered() {
			answered = append(answered, s)
		}
	}
	return answered
}

// Aggregate computes count, mean and maximum overall score. Empty input yields zeroed stats.
func Aggregate(sessions []Session) Stats {
	if len(sessions) == 0 {
		return Stats{}
	}

	var sum float64
	highest := scoreOrZero(sessions[0].OverallScore)
	for _, s := range sessions {
		score := scoreOrZero(s.OverallScore)
		sum += score
		if score > highest {
			highest = score
		}
	}

	return Stats{
		TotalSessions: len(sessions),
		AverageScore:  sum / float64(len(sessions)),
		HighestScore:  highest,
	}
}

// Summarize filters out unanswered sessions and aggregates the rest
func Summarize(sessions []Session) Stats {
	return Aggregate(FilterAnswered(sessions))
}

func scoreOrZero(score *float64) float64 {
	if score == nil {
		return 0
	}
	return *score
}
