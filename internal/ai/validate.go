package ai

import (
	"encoding/json"
	"fmt"

	"careersie/internal/errors"
	"careersie/internal/types"
)

// parsedJobKeys lists every key a model response must contain. A
// response missing any of them is rejected outright rather than
// silently defaulted, so degraded extractions never reach scoring.
var parsedJobKeys = []string{
	"role",
	"seniority",
	"hard_skills",
	"soft_skills",
	"tools",
	"responsibilities",
	"requirements",
	"keywords",
	"nice_to_have",
}

// validateParsedJob parses and strictly validates a model response
// against the ParsedJobData shape.
func validateParsedJob(raw []byte) (types.ParsedJobData, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return types.ParsedJobData{}, errors.NewAIError(errors.ErrCodeSchemaInvalid,
			"Model response is not valid JSON", err)
	}

	for _, key := range parsedJobKeys {
		value, ok := fields[key]
		if !ok || string(value) == "null" {
			return types.ParsedJobData{}, errors.NewAIError(errors.ErrCodeSchemaInvalid,
				fmt.Sprintf("Model response is missing required field '%s'", key), nil).
				WithContext("field", key)
		}
	}

	var parsed types.ParsedJobData
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return types.ParsedJobData{}, errors.NewAIError(errors.ErrCodeSchemaInvalid,
			"Model response does not match the expected schema", err)
	}

	normalizeParsedJob(&parsed)
	return parsed, nil
}

// normalizeParsedJob guarantees every sequence field is non-nil.
func normalizeParsedJob(parsed *types.ParsedJobData) {
	fields := []*[]string{
		&parsed.HardSkills,
		&parsed.SoftSkills,
		&parsed.Tools,
		&parsed.Responsibilities,
		&parsed.Requirements,
		&parsed.Keywords,
		&parsed.NiceToHave,
	}
	for _, field := range fields {
		if *field == nil {
			*field = []string{}
		}
	}
}
