package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/interviewprep/practice-service/internal/models"
	"github.com/interviewprep/practice-service/internal/repositories"
)

type PracticeSessionPostgreSQL struct {
	db *gorm.DB
}

func NewPracticeSessionPostgreSQL(db *gorm.DB) repositories.PracticeSessionRepository {
	return &PracticeSessionPostgreSQL{db: db}
}

func (p *PracticeSessionPostgreSQL) GetByID(ctx context.Context, id string) (*models.PracticeSession, error) {
	var session models.PracticeSession
	if err := p.db.WithContext(ctx).
		Preload("Question").
		First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (p *PracticeSessionPostgreSQL) GetByGroup(ctx context.Context, groupID string) ([]*models.PracticeSession, error) {
	var sessions []*models.PracticeSession
	if err := p.groupQuery(p.db.WithContext(ctx), groupID).Preload("Question").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (p *PracticeSessionPostgreSQL) groupQuery(db *gorm.DB, groupID string) *gorm.DB {
	query := applySessionFilters(db.Model(&models.PracticeSession{}), repositories.SessionFilters{GroupID: &groupID})
	return applyPaginationAndSort(query, "created_at", "asc", 0, 0)
}

func (p *PracticeSessionPostgreSQL) GetByUser(ctx context.Context, userID string, filters repositories.SessionFilters) ([]*models.PracticeSession, int64, error) {
	filters.UserID = &userID
	return p.list(ctx, filters, false)
}

func (p *PracticeSessionPostgreSQL) List(ctx context.Context, filters repositories.SessionFilters) ([]*models.PracticeSession, int64, error) {
	return p.list(ctx, filters, true)
}

func (p *PracticeSessionPostgreSQL) list(ctx context.Context, filters repositories.SessionFilters, withRelations bool) ([]*models.PracticeSession, int64, error) {
	var sessions []*models.PracticeSession
	var total int64

	// apply filter first
	query := p.db.WithContext(ctx).Model(&models.PracticeSession{})
	query = applySessionFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// then apply pagination and sorting
	query = applyPaginationAndSort(query, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset)
	if withRelations {
		query = query.Preload("Profile").Preload("Question")
	}

	if err := query.Find(&sessions).Error; err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}
