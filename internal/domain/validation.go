package domain

import (
	"go-interview-tracker/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom tags used by domain structs and
// request payloads: not_blank and candidate_status.
func RegisterValidators(v *validator.Validate) error {
	validation.RegisterValidators(v)

	statuses := make([]string, len(CandidateStatuses))
	for i, s := range CandidateStatuses {
		statuses[i] = string(s)
	}
	return validation.RegisterEnum(v, "candidate_status", statuses...)
}
