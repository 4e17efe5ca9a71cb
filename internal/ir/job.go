package ir

import (
	"github.com/go-playground/validator/v10"
)

// JobMetadata records the cost and cache status of one parsing run. It is
// pure telemetry produced by the parsing driver and carries no structural
// link into the document it describes.
type JobMetadata struct {
	CreditsUsed     float64 `json:"credits_used" validate:"gte=0"`
	CreditsMax      int     `json:"credits_max" validate:"gte=0"`
	JobCreditsUsage int     `json:"job_credits_usage" validate:"gte=0"`
	JobPages        int     `json:"job_pages" validate:"gte=0"`
	JobIsCacheHit   bool    `json:"job_is_cache_hit"`
}

// Validate checks that all counters are non-negative.
func (m *JobMetadata) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}
