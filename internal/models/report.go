package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalyzeRequest struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"job_description"`
}

// StatusBadge is the presentation pair for a match status.
type StatusBadge struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Presentation carries the precomputed view metadata so the page stays pure
// rendering.
type Presentation struct {
	ScoreColor      string      `json:"score_color"`
	ScoreMessage    string      `json:"score_message"`
	SkillMatchRate  int         `json:"skill_match_rate"`
	EducationBadge  StatusBadge `json:"education_badge"`
	ExperienceBadge StatusBadge `json:"experience_badge"`
}

// Report is the full outcome of one analysis run: the structured match
// analysis, the (possibly empty) crew result, and view metadata.
type Report struct {
	ID           uuid.UUID      `json:"id"`
	Analysis     *MatchAnalysis `json:"analysis"`
	Crew         *CrewResult    `json:"crew"`
	Presentation Presentation   `json:"presentation"`
	Warning      string         `json:"warning,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

type ExtractResponse struct {
	Text       string `json:"text"`
	Characters int    `json:"characters"`
}
