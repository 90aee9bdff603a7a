package models

// Per-stage output schemas the crew agents are asked to produce.

type SkillsOutput struct {
	SkillsOverlapSummary string `json:"skills_overlap_summary"`
	SkillsLackingSummary string `json:"skills_lacking_summary"`
}

type EducationOutput struct {
	EducationalRelevanceSummary string `json:"educational_relevance_summary"`
}

type ExperienceOutput struct {
	RelevantExperience         []string `json:"relevant_experience"`
	MissingExperience          []string `json:"missing_experience"`
	ExperienceRelevanceSummary string   `json:"experience_relevance_summary"`
}

type ResumeChangeOutput struct {
	Suggestions []string `json:"suggestions"`
}

// CrewResult is the flattened merge of every crew stage's output. Every
// field is optional: a stage that failed or returned an unexpected shape
// simply leaves its fields unset. Built fresh per analysis; never mutated
// after the merge.
type CrewResult struct {
	SkillsOverlapSummary       *string  `json:"skills_overlap_summary,omitempty"`
	SkillsLackingSummary       *string  `json:"skills_lacking_summary,omitempty"`
	EducationRelevanceSummary  *string  `json:"education_relevance_summary,omitempty"`
	RelevantExperience         []string `json:"relevant_experience,omitempty"`
	MissingExperience          []string `json:"missing_experience,omitempty"`
	ExperienceRelevanceSummary *string  `json:"experience_relevance_summary,omitempty"`
	ResumeSuggestions          []string `json:"resume_suggestions,omitempty"`
}
