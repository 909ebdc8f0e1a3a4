package types

// VerifyResponse answers the per-kind token verification endpoints.
type VerifyResponse struct {
	Authenticated bool `json:"authenticated"`
	User          any  `json:"user,omitempty"`
}

// GeneratedJob is the AI-drafted posting returned by generate-job, validated
// against schemas/generated_job.schema.json before it reaches the client.
type GeneratedJob struct {
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// UploadResponse returns the public path of a stored resume.
type UploadResponse struct {
	URL string `json:"url"`
}
