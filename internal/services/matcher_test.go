package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"

	"resume-match-pro/internal/models"
)

type fakeGemini struct {
	response string
	err      error
	calls    int
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeGemini) GenerateStructured(ctx context.Context, systemInstruction, prompt string, schema *genai.Schema, temperature float32) (string, error) {
	f.calls++
	return f.response, f.err
}

const validAnalysisJSON = `{
	"matching_skills": ["Python", "SQL"],
	"missing_skills": ["AWS"],
	"minimum_education_required": "Bachelor's",
	"candidate_education": "Master's in Computer Science",
	"education_match": "Exceeds",
	"minimum_experience_required": "5 years",
	"candidate_experience": "3 years",
	"experience_match": "Partial",
	"overall_match_score": 67,
	"recommendations": ["Add cloud projects"]
}`

func TestAnalyzeMatchParsesStructuredResponse(t *testing.T) {
	gemini := &fakeGemini{response: validAnalysisJSON}
	matcher := NewMatcherService(gemini, 0.3)

	analysis, err := matcher.AnalyzeMatch(context.Background(), "resume text", "job text")
	if err != nil {
		t.Fatalf("AnalyzeMatch failed: %v", err)
	}

	if gemini.calls != 1 {
		t.Errorf("expected exactly one remote call, got %d", gemini.calls)
	}
	if analysis.OverallMatchScore != 67 {
		t.Errorf("score = %d, want 67", analysis.OverallMatchScore)
	}
	if analysis.EducationMatch != models.StatusExceeds {
		t.Errorf("education_match = %q", analysis.EducationMatch)
	}
	if analysis.ExperienceMatch != models.StatusPartial {
		t.Errorf("experience_match = %q", analysis.ExperienceMatch)
	}
}

func TestAnalyzeMatchAcceptsFencedResponse(t *testing.T) {
	gemini := &fakeGemini{response: "```json\n" + validAnalysisJSON + "\n```"}
	matcher := NewMatcherService(gemini, 0.3)

	if _, err := matcher.AnalyzeMatch(context.Background(), "resume", "job"); err != nil {
		t.Fatalf("fenced response should still parse: %v", err)
	}
}

func TestAnalyzeMatchNoRetryOnFailure(t *testing.T) {
	gemini := &fakeGemini{err: fmt.Errorf("api unavailable")}
	matcher := NewMatcherService(gemini, 0.3)

	_, err := matcher.AnalyzeMatch(context.Background(), "resume", "job")
	if !errors.Is(err, ErrNoResult) {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
	if gemini.calls != 1 {
		t.Errorf("failed call must not be retried, got %d calls", gemini.calls)
	}
}

func TestAnalyzeMatchRejectsMalformedResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "the candidate looks great"},
		{"unknown status label", `{
			"matching_skills": [], "missing_skills": [],
			"minimum_education_required": "", "candidate_education": "",
			"education_match": "Adequate",
			"minimum_experience_required": "", "candidate_experience": "",
			"experience_match": "Meets",
			"overall_match_score": 50, "recommendations": []
		}`},
		{"score out of range", `{
			"matching_skills": [], "missing_skills": [],
			"minimum_education_required": "", "candidate_education": "",
			"education_match": "Meets",
			"minimum_experience_required": "", "candidate_experience": "",
			"experience_match": "Meets",
			"overall_match_score": 120, "recommendations": []
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher := NewMatcherService(&fakeGemini{response: tt.response}, 0.3)
			if _, err := matcher.AnalyzeMatch(context.Background(), "resume", "job"); !errors.Is(err, ErrNoResult) {
				t.Errorf("expected ErrNoResult, got %v", err)
			}
		})
	}
}
