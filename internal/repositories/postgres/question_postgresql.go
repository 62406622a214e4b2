package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/interviewprep/practice-service/internal/models"
	"github.com/interviewprep/practice-service/internal/repositories"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

func (q *QuestionPostgreSQL) List(ctx context.Context) ([]*models.InterviewQuestion, error) {
	var questions []*models.InterviewQuestion
	if err := q.db.WithContext(ctx).Order("category_id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
