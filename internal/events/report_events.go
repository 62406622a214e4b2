package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents different types of practice events
type EventType string

const (
	EventReportGenerated EventType = "report.generated"
	EventExportCompleted EventType = "export.completed"
)

const (
	eventSource  = "practice-service"
	eventVersion = "1.0"
)

// Event is the envelope for everything published by this service
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// NewEvent wraps data in an envelope with a fresh ID
func NewEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

type ReportGeneratedEvent struct {
	GroupID       string  `json:"group_id"`
	UserID        string  `json:"user_id"`
	TotalSessions int     `json:"total_sessions"`
	AverageScore  float64 `json:"average_score"`
	HighestScore  float64 `json:"highest_score"`
	Tier          string  `json:"tier"`
}

type ExportCompletedEvent struct {
	Filename  string         `json:"filename"`
	SizeBytes int            `json:"size_bytes"`
	RowCounts map[string]int `json:"row_counts"`
}
