// Package careers provides the business logic of the careers portal: accounts,
// job postings, applications, and referrals, over narrow store interfaces.
package careers

import "fmt"

// ErrEmailTaken indicates the email is already registered
type ErrEmailTaken struct {
	Email string
}

func (e *ErrEmailTaken) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrNotFound indicates a record does not exist or is not visible to the caller
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrDuplicateApplication indicates the candidate already applied to the job
type ErrDuplicateApplication struct{}

func (e *ErrDuplicateApplication) Error() string {
	return "you have already applied to this job"
}

// ErrJobNotOpen indicates an application against a job that is not published
type ErrJobNotOpen struct {
	JobID string
}

func (e *ErrJobNotOpen) Error() string {
	return fmt.Sprintf("job is not accepting applications: %s", e.JobID)
}

// ErrInvalidField indicates a request field with a value outside its vocabulary
type ErrInvalidField struct {
	Field   string
	Message string
}

func (e *ErrInvalidField) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
