package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"google.golang.org/genai"

	"resume-match-pro/internal/models"
)

// ErrNoResult is returned when the structured-generation call could not be
// coerced into a MatchAnalysis. The caller must treat it as terminal for the
// analysis: the crew pipeline is not invoked.
var ErrNoResult = fmt.Errorf("match analysis produced no result")

type MatcherService interface {
	AnalyzeMatch(ctx context.Context, resume, jobDescription string) (*models.MatchAnalysis, error)
}

type matcherService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	temperature   float32
}

func NewMatcherService(gemini GeminiService, temperature float32) MatcherService {
	return &matcherService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		temperature:   temperature,
	}
}

var matchStatusEnum = []string{
	string(models.StatusExceeds),
	string(models.StatusMeets),
	string(models.StatusPartial),
	string(models.StatusInsufficient),
}

// matchAnalysisSchema constrains the model output to the MatchAnalysis
// shape, including the closed four-value match enumerations.
func matchAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"matching_skills": {
				Type:        genai.TypeArray,
				Description: "Skills present in both resume and job description.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"missing_skills": {
				Type:        genai.TypeArray,
				Description: "Skills required by the job but absent from the resume.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"minimum_education_required": {Type: genai.TypeString},
			"candidate_education":        {Type: genai.TypeString},
			"education_match": {
				Type: genai.TypeString,
				Enum: matchStatusEnum,
			},
			"minimum_experience_required": {Type: genai.TypeString},
			"candidate_experience":        {Type: genai.TypeString},
			"experience_match": {
				Type: genai.TypeString,
				Enum: matchStatusEnum,
			},
			"experience_gap_explanation": {
				Type:        genai.TypeString,
				Description: "Optional explanation of any experience gap.",
			},
			"overall_match_score": {
				Type:        genai.TypeInteger,
				Description: "Overall match score from 0 to 100.",
			},
			"recommendations": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{
			"matching_skills",
			"missing_skills",
			"minimum_education_required",
			"candidate_education",
			"education_match",
			"minimum_experience_required",
			"candidate_experience",
			"experience_match",
			"overall_match_score",
			"recommendations",
		},
	}
}

// AnalyzeMatch implements MatcherService. A single call, no retry: a failed
// or malformed response propagates as ErrNoResult.
func (m *matcherService) AnalyzeMatch(ctx context.Context, resume, jobDescription string) (*models.MatchAnalysis, error) {
	prompt := m.promptBuilder.BuildMatchAnalysisPrompt(resume, jobDescription)

	response, err := m.gemini.GenerateStructured(ctx, MatchAnalysisInstruction, prompt, matchAnalysisSchema(), m.temperature)
	if err != nil {
		log.Printf("match analysis request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrNoResult, err)
	}

	var analysis models.MatchAnalysis
	if err := json.Unmarshal([]byte(CleanJSON(response)), &analysis); err != nil {
		log.Printf("match analysis response not parseable: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrNoResult, err)
	}

	if err := analysis.Validate(); err != nil {
		log.Printf("match analysis response violates contract: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrNoResult, err)
	}

	return &analysis, nil
}
