package models

import (
	"encoding/json"
	"fmt"
)

// MatchStatus describes how a candidate attribute aligns with a job
// requirement. The set of values is closed; anything else coming back from
// the model is a contract violation.
type MatchStatus string

const (
	StatusExceeds      MatchStatus = "Exceeds"
	StatusMeets        MatchStatus = "Meets"
	StatusPartial      MatchStatus = "Partial"
	StatusInsufficient MatchStatus = "Insufficient"
)

var ErrInvalidStatus = fmt.Errorf("invalid match status")

func ParseMatchStatus(s string) (MatchStatus, error) {
	switch MatchStatus(s) {
	case StatusExceeds, StatusMeets, StatusPartial, StatusInsufficient:
		return MatchStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (m *MatchStatus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	status, err := ParseMatchStatus(s)
	if err != nil {
		return err
	}
	*m = status
	return nil
}

// MatchAnalysis is the structured outcome of the first LLM call. It is built
// once per analysis and never mutated afterwards.
type MatchAnalysis struct {
	MatchingSkills            []string    `json:"matching_skills"`
	MissingSkills             []string    `json:"missing_skills"`
	MinimumEducationRequired  string      `json:"minimum_education_required"`
	CandidateEducation        string      `json:"candidate_education"`
	EducationMatch            MatchStatus `json:"education_match"`
	MinimumExperienceRequired string      `json:"minimum_experience_required"`
	CandidateExperience       string      `json:"candidate_experience"`
	ExperienceMatch           MatchStatus `json:"experience_match"`
	ExperienceGapExplanation  *string     `json:"experience_gap_explanation,omitempty"`
	OverallMatchScore         int         `json:"overall_match_score"`
	Recommendations           []string    `json:"recommendations"`
}

func (a *MatchAnalysis) Validate() error {
	if a.OverallMatchScore < 0 || a.OverallMatchScore > 100 {
		return fmt.Errorf("overall_match_score out of range: %d", a.OverallMatchScore)
	}
	if _, err := ParseMatchStatus(string(a.EducationMatch)); err != nil {
		return fmt.Errorf("education_match: %w", err)
	}
	if _, err := ParseMatchStatus(string(a.ExperienceMatch)); err != nil {
		return fmt.Errorf("experience_match: %w", err)
	}
	return nil
}
