package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/interviewprep/practice-service/internal/cache"
	"github.com/interviewprep/practice-service/internal/events"
	"github.com/interviewprep/practice-service/internal/models"
	"github.com/interviewprep/practice-service/internal/report"
	"github.com/interviewprep/practice-service/internal/repositories"
)

// ReportService builds the practice reports shown to learners
type ReportService interface {
	GetGroupReport(ctx context.Context, groupID string) (*GroupReport, error)
	GetLearningReport(ctx context.Context, req *LearningReportRequest) (*LearningReport, error)
	GetCompetencyRadar(ctx context.Context, sessionID string) (*CompetencyReport, error)
	InvalidateGroup(ctx context.Context, groupID string) error
}

type reportService struct {
	repo      repositories.Repository
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    *slog.Logger
	opLogger  *ServiceLogger
	cacheTTL  time.Duration
}

func NewReportService(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	cacheTTL time.Duration,
) ReportService {
	return &reportService{
		repo:      repo,
		cache:     cacheService,
		publisher: publisher,
		logger:    logger,
		opLogger:  NewServiceLogger(logger, "report"),
		cacheTTL:  cacheTTL,
	}
}

// ===== DATA STRUCTURES =====

type GroupReport struct {
	GroupID     string        `json:"group_id"`
	UserID      string        `json:"user_id"`
	PracticedAt time.Time     `json:"practiced_at"`
	Stats       report.Stats  `json:"stats"`
	Evaluation  *Evaluation   `json:"evaluation,omitempty"`
	Sessions    []SessionItem `json:"sessions"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// Evaluation is only present when at least one session was answered
type Evaluation struct {
	Tier        report.Tier     `json:"tier"`
	AverageTier report.Tier     `json:"average_tier"`
	HighestTier report.Tier     `json:"highest_tier"`
	Feedback    report.Feedback `json:"feedback"`
}

type SessionItem struct {
	ID              string       `json:"id"`
	QuestionID      string       `json:"question_id"`
	QuestionText    string       `json:"question_text"`
	ReferenceAnswer string       `json:"reference_answer"`
	Stage           report.Stage `json:"stage"`
	UserAnswer      string       `json:"user_answer"`
	Answered        bool         `json:"answered"`
	OverallScore    *float64     `json:"overall_score"`
	ScoreBadge      *report.Tier `json:"score_badge,omitempty"`
	AIFeedback      *string      `json:"ai_feedback,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// LearningReportRequest selects the sessions a learning report covers.
// Stage narrows the whole report; SortOrder, Limit and Offset page the session list only.
type LearningReportRequest struct {
	UserID    string     `json:"user_id" validate:"required"`
	From      *time.Time `json:"from" form:"from" time_format:"2006-01-02" time_utc:"1"`
	To        *time.Time `json:"to" form:"to" time_format:"2006-01-02" time_utc:"1"`
	Stage     string     `json:"stage" form:"stage" validate:"omitempty,practice_stage"`
	SortOrder string     `json:"sort_order" form:"sort_order" validate:"omitempty,sort_order"`
	Limit     int        `json:"limit" form:"limit" validate:"omitempty,min=1,max=100"`
	Offset    int        `json:"offset" form:"offset" validate:"omitempty,min=0"`
}

const defaultSessionPageSize = 20

type LearningReport struct {
	UserID        string               `json:"user_id"`
	TotalSessions int                  `json:"total_sessions"`
	Stats         report.Stats         `json:"stats"`
	Tier          report.Tier          `json:"tier"`
	Abilities     []report.Ability     `json:"abilities"`
	GrowthPath    []report.GrowthPoint `json:"growth_path"`
	LatestScores  []float64            `json:"latest_scores"`
	Sessions      []SessionItem        `json:"sessions"`
	SessionsTotal int64                `json:"sessions_total"`
	GeneratedAt   time.Time            `json:"generated_at"`
}

type CompetencyReport struct {
	SessionID    string              `json:"session_id"`
	QuestionID   string              `json:"question_id"`
	QuestionText string              `json:"question_text"`
	OverallScore *float64            `json:"overall_score"`
	ScoreBadge   *report.Tier        `json:"score_badge,omitempty"`
	Points       []report.RadarPoint `json:"points"`
}

// ===== GROUP REPORT =====

func groupCacheKey(groupID string) string {
	return "group_report:" + groupID
}

func (s *reportService) GetGroupReport(ctx context.Context, groupID string) (*GroupReport, error) {
	op := s.opLogger.WithOperation(ctx, "get_group_report")

	result, err := cache.CacheOrExecute(ctx, s.cache, s.logger, groupCacheKey(groupID), s.cacheTTL, func() (*GroupReport, error) {
		return s.buildGroupReport(ctx, groupID)
	})
	op.LogResult(groupID, "practice_group", err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *reportService) buildGroupReport(ctx context.Context, groupID string) (*GroupReport, error) {
	rows, err := s.repo.Session().GetByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load practice group: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrGroupNotFound
	}

	sessions := toReportSessions(rows)
	answered := report.FilterAnswered(sessions)
	stats := report.Aggregate(answered)

	result := &GroupReport{
		GroupID:     groupID,
		UserID:      rows[0].UserID,
		PracticedAt: rows[0].CreatedAt,
		Stats:       stats,
		Sessions:    make([]SessionItem, 0, len(rows)),
		GeneratedAt: time.Now().UTC(),
	}

	for i, row := range rows {
		result.Sessions = append(result.Sessions, toSessionItem(row, sessions[i]))
	}

	if len(answered) > 0 {
		tier := report.Classify(stats.AverageScore)
		result.Evaluation = &Evaluation{
			Tier:        tier,
			AverageTier: tier,
			HighestTier: report.Classify(stats.HighestScore),
			Feedback:    report.Present(tier),
		}
	}

	s.publishReportGenerated(ctx, result)
	return result, nil
}

func (s *reportService) publishReportGenerated(ctx context.Context, r *GroupReport) {
	tier := ""
	if r.Evaluation != nil {
		tier = r.Evaluation.Tier.String()
	}

	event := events.NewEvent(events.EventReportGenerated, events.ReportGeneratedEvent{
		GroupID:       r.GroupID,
		UserID:        r.UserID,
		TotalSessions: r.Stats.TotalSessions,
		AverageScore:  r.Stats.AverageScore,
		HighestScore:  r.Stats.HighestScore,
		Tier:          tier,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish report event", "group_id", r.GroupID, "error", err)
	}
}

func (s *reportService) InvalidateGroup(ctx context.Context, groupID string) error {
	if err := s.cache.Delete(ctx, groupCacheKey(groupID)); err != nil {
		return fmt.Errorf("failed to invalidate group report: %w", err)
	}
	return nil
}

// ===== LEARNING REPORT =====

func (s *reportService) GetLearningReport(ctx context.Context, req *LearningReportRequest) (*LearningReport, error) {
	op := s.opLogger.WithOperation(ctx, "get_learning_report")

	result, err := s.buildLearningReport(ctx, req)
	op.LogResult(req.UserID, "profile", err)
	return result, err
}

func (s *reportService) buildLearningReport(ctx context.Context, req *LearningReportRequest) (*LearningReport, error) {
	if req.From != nil && req.To != nil && req.From.After(*req.To) {
		return nil, ValidationErrors{*NewValidationError("from", "must not be after to", "date_range", req.From)}
	}

	if _, err := s.repo.Profile().GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	filters := learningFilters(req)
	filters.SortBy = "created_at"
	filters.SortOrder = "asc"

	rows, _, err := s.repo.Session().GetByUser(ctx, req.UserID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load practice sessions: %w", err)
	}

	sessions := toReportSessions(rows)
	stats := report.Summarize(sessions)
	path := report.GrowthPath(sessions)
	abilities := append([]report.Ability(nil), report.Abilities...)

	page, total, err := s.sessionPage(ctx, req)
	if err != nil {
		return nil, err
	}

	return &LearningReport{
		UserID:        req.UserID,
		TotalSessions: stats.TotalSessions,
		Stats:         stats,
		Tier:          report.Classify(stats.AverageScore),
		Abilities:     abilities,
		GrowthPath:    path,
		LatestScores:  report.LatestAbilityScores(path, abilities),
		Sessions:      page,
		SessionsTotal: total,
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

// learningFilters restricts to the user's answered sessions in range and stage
func learningFilters(req *LearningReportRequest) repositories.SessionFilters {
	filters := repositories.SessionFilters{
		DateFrom:     req.From,
		AnsweredOnly: true,
	}
	if req.To != nil {
		// the "to" day itself is included
		end := req.To.AddDate(0, 0, 1)
		filters.DateTo = &end
	}
	if req.Stage != "" {
		stage := string(report.ParseStage(req.Stage))
		filters.Stage = &stage
	}
	return filters
}

// sessionPage lists answered sessions with their questions, newest first unless asked otherwise
func (s *reportService) sessionPage(ctx context.Context, req *LearningReportRequest) ([]SessionItem, int64, error) {
	filters := learningFilters(req)
	userID := req.UserID
	filters.UserID = &userID
	filters.SortBy = "created_at"
	filters.SortOrder = "desc"
	if req.SortOrder != "" {
		filters.SortOrder = req.SortOrder
	}
	filters.Limit = defaultSessionPageSize
	if req.Limit > 0 {
		filters.Limit = req.Limit
	}
	filters.Offset = req.Offset

	rows, total, err := s.repo.Session().List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list practice sessions: %w", err)
	}

	items := make([]SessionItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toSessionItem(row, toReportSession(row)))
	}
	return items, total, nil
}

// ===== COMPETENCY RADAR =====

func (s *reportService) GetCompetencyRadar(ctx context.Context, sessionID string) (*CompetencyReport, error) {
	op := s.opLogger.WithOperation(ctx, "get_competency_radar")

	row, err := s.repo.Session().GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = ErrSessionNotFound
		} else {
			err = fmt.Errorf("failed to load practice session: %w", err)
		}
		op.LogResult(sessionID, "practice_session", err)
		return nil, err
	}

	session := toReportSession(row)
	result := &CompetencyReport{
		SessionID:    row.ID,
		QuestionID:   row.QuestionID,
		OverallScore: row.OverallScore,
		ScoreBadge:   report.ScoreBadge(row.OverallScore),
		Points:       report.CompetencyRadar(session.Competencies),
	}
	if row.Question != nil {
		result.QuestionText = row.Question.QuestionText
	}

	op.LogResult(sessionID, "practice_session", nil)
	return result, nil
}

// ===== CONVERSION HELPERS =====

func toReportSessions(rows []*models.PracticeSession) []report.Session {
	sessions := make([]report.Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, toReportSession(row))
	}
	return sessions
}

func toReportSession(row *models.PracticeSession) report.Session {
	s := report.Session{
		ID:              row.ID,
		UserID:          row.UserID,
		GroupID:         row.SessionID,
		QuestionID:      row.QuestionID,
		UserAnswer:      row.UserAnswer,
		OverallScore:    row.OverallScore,
		ContentScore:    row.ContentScore,
		LogicScore:      row.LogicScore,
		ExpressionScore: row.ExpressionScore,
		CreatedAt:       row.CreatedAt,
	}
	if row.StageID != nil {
		s.StageID = *row.StageID
	}

	if raw := row.CompetencyMap(); len(raw) > 0 {
		s.Competencies = make(map[report.Competency]float64, len(raw))
		for key, value := range raw {
			if c, ok := report.ParseCompetency(key); ok {
				s.Competencies[c] = value
			}
		}
	}
	return s
}

func toSessionItem(row *models.PracticeSession, s report.Session) SessionItem {
	item := SessionItem{
		ID:           row.ID,
		QuestionID:   row.QuestionID,
		Stage:        report.ParseStage(s.StageID),
		UserAnswer:   row.UserAnswer,
		Answered:     s.Answered(),
		OverallScore: row.OverallScore,
		ScoreBadge:   report.ScoreBadge(row.OverallScore),
		AIFeedback:   row.AIFeedback,
		CreatedAt:    row.CreatedAt,
	}
	if row.Question != nil {
		item.QuestionText = row.Question.QuestionText
		item.ReferenceAnswer = row.Question.Reference()
	}
	return item
}
