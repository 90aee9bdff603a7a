package services

import (
	"encoding/json"
	"fmt"
	"log"

	"resume-match-pro/internal/models"
)

// Reduce flattens the raw crew stage outputs into a single CrewResult. For
// each stage it prefers the declared typed schema; when the text does not
// unmarshal into it, it falls back to probing a generic JSON object for the
// known attribute names; when even that fails the corresponding fields stay
// unset. Reduce never fails: a bad stage only loses its own fields.
func Reduce(outputs *StageOutputs) *models.CrewResult {
	result := &models.CrewResult{}
	if outputs == nil {
		return result
	}

	reduceSkills(outputs.Skills, result)
	reduceEducation(outputs.Education, result)
	reduceExperience(outputs.Experience, result)
	reduceRecommendations(outputs.Recommendations, result)

	return result
}

func reduceSkills(raw string, result *models.CrewResult) {
	var out models.SkillsOutput
	if err := parseStage("skills", raw, &out); err == nil {
		result.SkillsOverlapSummary = optional(out.SkillsOverlapSummary)
		result.SkillsLackingSummary = optional(out.SkillsLackingSummary)
		return
	}

	fields, ok := probeFields("skills", raw)
	if !ok {
		return
	}
	result.SkillsOverlapSummary = fields.str("skills_overlap_summary")
	result.SkillsLackingSummary = fields.str("skills_lacking_summary")
}

func reduceEducation(raw string, result *models.CrewResult) {
	var out models.EducationOutput
	if err := parseStage("education", raw, &out); err == nil {
		result.EducationRelevanceSummary = optional(out.EducationalRelevanceSummary)
		return
	}

	fields, ok := probeFields("education", raw)
	if !ok {
		return
	}
	result.EducationRelevanceSummary = fields.str("educational_relevance_summary")
}

func reduceExperience(raw string, result *models.CrewResult) {
	var out models.ExperienceOutput
	if err := parseStage("experience", raw, &out); err == nil {
		result.RelevantExperience = out.RelevantExperience
		result.MissingExperience = out.MissingExperience
		result.ExperienceRelevanceSummary = optional(out.ExperienceRelevanceSummary)
		return
	}

	fields, ok := probeFields("experience", raw)
	if !ok {
		return
	}
	result.RelevantExperience = fields.list("relevant_experience")
	result.MissingExperience = fields.list("missing_experience")
	result.ExperienceRelevanceSummary = fields.str("experience_relevance_summary")
}

func reduceRecommendations(raw string, result *models.CrewResult) {
	var out models.ResumeChangeOutput
	if err := parseStage("recommendations", raw, &out); err == nil {
		result.ResumeSuggestions = out.Suggestions
		return
	}

	fields, ok := probeFields("recommendations", raw)
	if !ok {
		return
	}
	result.ResumeSuggestions = fields.list("suggestions")
}

func parseStage(stage, raw string, target any) error {
	if raw == "" {
		return fmt.Errorf("empty %s output", stage)
	}
	if err := json.Unmarshal([]byte(CleanJSON(raw)), target); err != nil {
		return fmt.Errorf("typed parse of %s output failed: %w", stage, err)
	}
	return nil
}

// stageFields is the generic fallback view of a stage output.
type stageFields map[string]any

func probeFields(stage, raw string) (stageFields, bool) {
	var fields stageFields
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &fields); err != nil {
		log.Printf("could not parse %s stage output, leaving fields unset: %v", stage, err)
		return nil, false
	}
	return fields, true
}

func (f stageFields) str(key string) *string {
	if v, ok := f[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

func (f stageFields) list(key string) []string {
	switch v := f[key].(type) {
	case []any:
		var items []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return items
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
