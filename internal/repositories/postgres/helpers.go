package postgres

import (
	"strings"

	"gorm.io/gorm"

	"github.com/interviewprep/practice-service/internal/repositories"
)

var sessionSortColumns = map[string]string{
	"created_at":    "created_at",
	"overall_score": "overall_score",
}

// applySessionFilters applies the non-pagination parts of SessionFilters
func applySessionFilters(query *gorm.DB, filters repositories.SessionFilters) *gorm.DB {
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.GroupID != nil {
		query = query.Where("session_id = ?", *filters.GroupID)
	}
	if filters.Stage != nil {
		query = query.Where("LOWER(TRIM(stage_id)) = ?", strings.ToLower(strings.TrimSpace(*filters.Stage)))
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at < ?", *filters.DateTo)
	}
	if filters.AnsweredOnly {
		query = query.Where("TRIM(COALESCE(user_answer, '')) <> ''")
	}
	return query
}

// applyPaginationAndSort orders by a whitelisted column (default created_at desc) and paginates
func applyPaginationAndSort(query *gorm.DB, sortBy, sortOrder string, limit, offset int) *gorm.DB {
	column, ok := sessionSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}

	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	query = query.Order(column + " " + direction)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}
