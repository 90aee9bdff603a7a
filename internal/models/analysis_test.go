package models

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestParseMatchStatus(t *testing.T) {
	for _, valid := range []string{"Exceeds", "Meets", "Partial", "Insufficient"} {
		status, err := ParseMatchStatus(valid)
		if err != nil {
			t.Fatalf("ParseMatchStatus(%q) returned error: %v", valid, err)
		}
		if string(status) != valid {
			t.Errorf("ParseMatchStatus(%q) = %q", valid, status)
		}
	}

	for _, invalid := range []string{"", "exceeds", "Unknown", "Strong Match"} {
		if _, err := ParseMatchStatus(invalid); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("ParseMatchStatus(%q) expected ErrInvalidStatus, got %v", invalid, err)
		}
	}
}

func TestMatchStatusUnmarshalRejectsUnknownLabel(t *testing.T) {
	var analysis MatchAnalysis
	payload := `{
		"matching_skills": [], "missing_skills": [],
		"minimum_education_required": "Bachelor's", "candidate_education": "Master's",
		"education_match": "Somewhat",
		"minimum_experience_required": "3 years", "candidate_experience": "5 years",
		"experience_match": "Meets",
		"overall_match_score": 70, "recommendations": []
	}`

	if err := json.Unmarshal([]byte(payload), &analysis); err == nil {
		t.Fatal("expected unmarshal to reject unknown education_match label")
	}
}

func TestMatchAnalysisValidate(t *testing.T) {
	valid := MatchAnalysis{
		EducationMatch:    StatusMeets,
		ExperienceMatch:   StatusExceeds,
		OverallMatchScore: 85,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid analysis rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(a *MatchAnalysis)
	}{
		{"score below range", func(a *MatchAnalysis) { a.OverallMatchScore = -1 }},
		{"score above range", func(a *MatchAnalysis) { a.OverallMatchScore = 101 }},
		{"bad education status", func(a *MatchAnalysis) { a.EducationMatch = "Great" }},
		{"bad experience status", func(a *MatchAnalysis) { a.ExperienceMatch = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			if err := a.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestMatchAnalysisRoundTrip(t *testing.T) {
	gap := "Two years short of the stated requirement"
	original := MatchAnalysis{
		MatchingSkills:            []string{"Python", "SQL"},
		MissingSkills:             []string{"AWS"},
		MinimumEducationRequired:  "Bachelor's",
		CandidateEducation:        "Master's in Computer Science",
		EducationMatch:            StatusExceeds,
		MinimumExperienceRequired: "5 years",
		CandidateExperience:       "3 years",
		ExperienceMatch:           StatusPartial,
		ExperienceGapExplanation:  &gap,
		OverallMatchScore:         67,
		Recommendations:           []string{"Add cloud projects", "Quantify impact"},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded MatchAnalysis
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip changed the record:\n got %+v\nwant %+v", decoded, original)
	}
	if decoded.EducationMatch != StatusExceeds || decoded.ExperienceMatch != StatusPartial {
		t.Error("enumeration literals not preserved exactly")
	}
	if decoded.OverallMatchScore != 67 {
		t.Errorf("score changed: got %d", decoded.OverallMatchScore)
	}
}
