// Package types provides the request and response shapes of the site HTTP API.
package types

import "encoding/json"

// SiteLoginRequest is the site-admin login body. The admin signs in with the
// HR credential record's email as username.
type SiteLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HRLoginRequest is the careers-admin login body.
type HRLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CandidateRegisterRequest creates a candidate account.
type CandidateRegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name,omitempty"`
}

// CandidateLoginRequest is the candidate login body.
type CandidateLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest replaces a candidate's editable profile fields.
type UpdateProfileRequest struct {
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Bio          string `json:"bio,omitempty"`
	LinkedInURL  string `json:"linkedInUrl,omitempty"`
	PortfolioURL string `json:"portfolioUrl,omitempty"`
}

// UpdateContentRequest replaces one page's subtree in the content document.
type UpdateContentRequest struct {
	Page string          `json:"page" validate:"required"`
	Data json.RawMessage `json:"data" validate:"required"`
}

// CreateJobRequest creates a job posting.
type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required"`
	Department   string   `json:"department" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements,omitempty"`
	Benefits     []string `json:"benefits,omitempty"`
	MinSalary    *int     `json:"minSalary,omitempty"`
	MaxSalary    *int     `json:"maxSalary,omitempty"`
	Status       string   `json:"status,omitempty"`
	ClosingDate  string   `json:"closingDate,omitempty"`
}

// UpdateJobRequest carries a partial job update; nil fields keep their
// stored values.
type UpdateJobRequest struct {
	Title        *string   `json:"title,omitempty"`
	Department   *string   `json:"department,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Requirements *[]string `json:"requirements,omitempty"`
	Benefits     *[]string `json:"benefits,omitempty"`
	MinSalary    *int      `json:"minSalary,omitempty"`
	MaxSalary    *int      `json:"maxSalary,omitempty"`
	Status       *string   `json:"status,omitempty"`
	ClosingDate  *string   `json:"closingDate,omitempty"`
}

// SubmitApplicationRequest applies a signed-in candidate to a job.
type SubmitApplicationRequest struct {
	JobID        string `json:"jobId" validate:"required,uuid"`
	CoverLetter  string `json:"coverLetter,omitempty"`
	ResumePath   string `json:"resumePath,omitempty"`
	ReferralCode string `json:"referralCode,omitempty"`
}

// UpdateApplicationRequest carries an HR review update; nil fields keep
// their stored values.
type UpdateApplicationRequest struct {
	Status *string `json:"status,omitempty"`
	Rating *int    `json:"rating,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// GenerateJobRequest asks for an AI-drafted job posting.
type GenerateJobRequest struct {
	Title    string `json:"title,omitempty"`
	Keywords string `json:"keywords,omitempty"`
}
