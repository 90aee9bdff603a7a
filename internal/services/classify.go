package services

import (
	"math"

	"resume-match-pro/internal/models"
)

// Presentation colors shared with the report page.
const (
	colorSuccess  = "#10b981"
	colorGood     = "#fbbf24"
	colorModerate = "#f97316"
	colorPoor     = "#dc3545"
	colorNeutral  = "#6b7280"
)

// ScoreColor maps an overall match score to its band color. The four bands
// are <40, 40-59, 60-79 and >=80.
func ScoreColor(score int) string {
	switch {
	case score >= 80:
		return colorSuccess
	case score >= 60:
		return colorGood
	case score >= 40:
		return colorModerate
	default:
		return colorPoor
	}
}

// ScoreMessage maps an overall match score to its band label.
func ScoreMessage(score int) string {
	switch {
	case score >= 80:
		return "Excellent Match!"
	case score >= 60:
		return "Good Match"
	case score >= 40:
		return "Moderate Match"
	default:
		return "Needs Improvement"
	}
}

// StatusBadge returns the fixed color/icon pair for a match status. The
// default arm exists for labels outside the closed enum; validated analyses
// never reach it.
func StatusBadge(status models.MatchStatus) models.StatusBadge {
	switch status {
	case models.StatusExceeds:
		return models.StatusBadge{Color: colorSuccess, Icon: "✨"}
	case models.StatusMeets:
		return models.StatusBadge{Color: colorSuccess, Icon: "✅"}
	case models.StatusPartial:
		return models.StatusBadge{Color: colorGood, Icon: "⚠️"}
	case models.StatusInsufficient:
		return models.StatusBadge{Color: colorPoor, Icon: "❌"}
	default:
		return models.StatusBadge{Color: colorNeutral, Icon: "ℹ️"}
	}
}

// SkillMatchRate is the share of required skills the candidate already has,
// as a rounded percentage. Zero when no skills were identified at all.
func SkillMatchRate(matching, missing []string) int {
	total := len(matching) + len(missing)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(len(matching)) / float64(total) * 100))
}
