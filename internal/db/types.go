package db

import (
	"time"

	"github.com/google/uuid"
)

// Job lifecycle statuses. Only PUBLISHED jobs are visible to non-HR callers.
const (
	JobDraft     = "DRAFT"
	JobPublished = "PUBLISHED"
	JobClosed    = "CLOSED"
)

// ApplicationStatuses is the fixed status vocabulary, in lifecycle order.
// REJECTED is reachable from any non-terminal state; all transitions are
// HR-initiated writes.
var ApplicationStatuses = []string{
	"APPLIED", "SHORTLISTED", "INTERVIEW", "OFFERED", "ACCEPTED", "REJECTED",
}

// IsValidApplicationStatus reports whether s is part of the status vocabulary.
func IsValidApplicationStatus(s string) bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Referral statuses. A referral moves PENDING -> COMPLETED at most once.
const (
	ReferralPending   = "PENDING"
	ReferralCompleted = "COMPLETED"
)

// HRAdmin is a careers-portal administrator credential record.
type HRAdmin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// Candidate is a careers-portal account. A candidate owns zero-or-more
// applications and at most one referral code.
type Candidate struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	LinkedInURL  string    `json:"linkedInUrl,omitempty"`
	PortfolioURL string    `json:"portfolioUrl,omitempty"`
	ResumePath   string    `json:"resumePath,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// ApplicationCount is populated on HR listings.
	ApplicationCount int `json:"applicationCount"`
}

// Job is a posted position.
type Job struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Department   string     `json:"department"`
	Location     string     `json:"location"`
	Type         string     `json:"type"`
	Description  string     `json:"description"`
	Requirements []string   `json:"requirements,omitempty"`
	Benefits     []string   `json:"benefits,omitempty"`
	MinSalary    *int       `json:"minSalary,omitempty"`
	MaxSalary    *int       `json:"maxSalary,omitempty"`
	Status       string     `json:"status"`
	ClosingDate  *time.Time `json:"closingDate,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	ApplicationCount int `json:"applicationCount"`
}

// Application links a candidate to a job. One per (job, candidate) pair.
type Application struct {
	ID           uuid.UUID `json:"id"`
	JobID        uuid.UUID `json:"jobId"`
	CandidateID  uuid.UUID `json:"candidateId"`
	CoverLetter  string    `json:"coverLetter,omitempty"`
	ResumePath   string    `json:"resumePath,omitempty"`
	ReferralCode string    `json:"referralCode,omitempty"`
	Status       string    `json:"status"`
	Rating       *int      `json:"rating,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	AppliedAt    time.Time `json:"appliedAt"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined display fields, populated on reads.
	CandidateName  string `json:"candidateName,omitempty"`
	CandidateEmail string `json:"candidateEmail,omitempty"`
	JobTitle       string `json:"jobTitle,omitempty"`
	JobDepartment  string `json:"jobDepartment,omitempty"`
	JobLocation    string `json:"jobLocation,omitempty"`
}

// Referral is a candidate's referral code record. It is created once on
// first code generation and completed at most once, when a new application
// supplies a matching code.
type Referral struct {
	ID          uuid.UUID  `json:"id"`
	ReferrerID  uuid.UUID  `json:"referrerId"`
	Code        string     `json:"code"`
	Status      string     `json:"status"`
	JobID       *uuid.UUID `json:"jobId,omitempty"`
	JobTitle    string     `json:"jobTitle,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
