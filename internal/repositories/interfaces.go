package repositories

import (
	"context"
	"time"

	"github.com/interviewprep/practice-service/internal/models"
)

// Repository groups the read-side repositories used by the service layer
type Repository interface {
	Session() PracticeSessionRepository
	Profile() ProfileRepository
	Question() QuestionRepository
}

// ===== SHARED FILTER STRUCTS =====

type SessionFilters struct {
	UserID       *string    `json:"user_id"`
	GroupID      *string    `json:"group_id"`
	Stage        *string    `json:"stage"`
	DateFrom     *time.Time `json:"date_from"`
	DateTo       *time.Time `json:"date_to"` // exclusive
	AnsweredOnly bool       `json:"answered_only"`
	Limit        int        `json:"limit"`
	Offset       int        `json:"offset"`
	SortBy       string     `json:"sort_by"`    // "created_at", "overall_score"
	SortOrder    string     `json:"sort_order"` // "asc", "desc"
}

// ===== REPOSITORIES =====

type PracticeSessionRepository interface {
	GetByID(ctx context.Context, id string) (*models.PracticeSession, error)
	// GetByGroup returns every session of a practice group, oldest first, with its question preloaded
	GetByGroup(ctx context.Context, groupID string) ([]*models.PracticeSession, error)
	GetByUser(ctx context.Context, userID string, filters SessionFilters) ([]*models.PracticeSession, int64, error)
	// List returns sessions with profile and question preloaded
	List(ctx context.Context, filters SessionFilters) ([]*models.PracticeSession, int64, error)
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
}

type QuestionRepository interface {
	List(ctx context.Context) ([]*models.InterviewQuestion, error)
}
