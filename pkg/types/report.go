package types

import (
	"time"

	"github.com/google/uuid"
)

// Report summarizes one validation run for output or archival by callers.
type Report struct {
	ReportID    string    `json:"report_id"` // UUID v7, generated on creation.
	Subject     string    `json:"subject"`   // The document the run validated, usually a file path.
	GeneratedAt time.Time `json:"generated_at"`
	Valid       bool      `json:"valid"`
	Issues      []Issue   `json:"issues"`
}

// NewReport builds a report around the issues found for subject. Issues is
// never nil in the result, so JSON output always carries an array.
func NewReport(subject string, issues []Issue) *Report {
	if issues == nil {
		issues = []Issue{}
	}
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4
		// rather than failing a pure reporting step.
		id = uuid.New()
	}
	return &Report{
		ReportID:    id.String(),
		Subject:     subject,
		GeneratedAt: time.Now().UTC(),
		Valid:       len(issues) == 0,
		Issues:      issues,
	}
}
