package domain

import (
	"time"

	"github.com/google/uuid"
)

// Improvement statuses.
const (
	StatusSucceeded = "succeeded"
	StatusRejected  = "rejected"
	StatusFailed    = "failed"
)

// ImprovementRecord is the audit row written for each improvement call. It
// holds sizes and outcome only, never the résumé text itself.
type ImprovementRecord struct {
	ID          uuid.UUID     `json:"id"`
	FieldType   string        `json:"field_type"`
	Provider    string        `json:"provider"`
	Status      string        `json:"status"`
	InputChars  int           `json:"input_chars"`
	OutputChars int           `json:"output_chars"`
	Duration    time.Duration `json:"duration"`
	Error       string        `json:"error,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
