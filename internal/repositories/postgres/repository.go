package postgres

import (
	"gorm.io/gorm"

	"github.com/interviewprep/practice-service/internal/repositories"
)

type repository struct {
	session  repositories.PracticeSessionRepository
	profile  repositories.ProfileRepository
	question repositories.QuestionRepository
}

// NewRepository wires the PostgreSQL implementations behind repositories.Repository
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		session:  NewPracticeSessionPostgreSQL(db),
		profile:  NewProfilePostgreSQL(db),
		question: NewQuestionPostgreSQL(db),
	}
}

func (r *repository) Session() repositories.PracticeSessionRepository { return r.session }
func (r *repository) Profile() repositories.ProfileRepository         { return r.profile }
func (r *repository) Question() repositories.QuestionRepository       { return r.question }
