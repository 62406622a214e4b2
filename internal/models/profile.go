package models

import (
	"time"
)

type MembershipStatus string

const (
	MembershipFree    MembershipStatus = "free"
	MembershipPremium MembershipStatus = "premium"
)

// Profile is a learner account. The service only reads profiles; they are owned by the auth backend.
type Profile struct {
	ID               string           `json:"id" gorm:"primaryKey;type:uuid"`
	Email            string           `json:"email" gorm:"uniqueIndex;size:255"`
	FullName         *string          `json:"full_name" gorm:"size:100"`
	Username         *string          `json:"username" gorm:"size:100"`
	MembershipStatus MembershipStatus `json:"membership_status" gorm:"size:20;default:free"`
	CurrentStage     *string          `json:"current_stage" gorm:"size:50"`

	// Career info
	YearsOfExperience *int    `json:"years_of_experience"`
	LinkedInURL       *string `json:"linkedin_url" gorm:"column:linkedin_url;size:500"`
	PortfolioURL      *string `json:"portfolio_url" gorm:"size:500"`
	ResumeURL         *string `json:"resume_url" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
