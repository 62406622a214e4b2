package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/interviewprep/practice-service/internal/models"
	"github.com/interviewprep/practice-service/internal/repositories"
)

type ProfilePostgreSQL struct {
	db *gorm.DB
}

func NewProfilePostgreSQL(db *gorm.DB) repositories.ProfileRepository {
	return &ProfilePostgreSQL{db: db}
}

func (p *ProfilePostgreSQL) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := p.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p *ProfilePostgreSQL) List(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	if err := p.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
