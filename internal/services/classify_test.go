package services

import (
	"testing"

	"resume-match-pro/internal/models"
)

func TestScoreBandsCoverWholeRange(t *testing.T) {
	// Quality rank per band label, for the monotonicity check.
	rank := map[string]int{
		"Needs Improvement": 0,
		"Moderate Match":    1,
		"Good Match":        2,
		"Excellent Match!":  3,
	}

	prev := -1
	for score := 0; score <= 100; score++ {
		msg := ScoreMessage(score)
		r, ok := rank[msg]
		if !ok {
			t.Fatalf("score %d produced unknown band label %q", score, msg)
		}
		if r < prev {
			t.Fatalf("band quality decreased at score %d (%q)", score, msg)
		}
		prev = r

		if ScoreColor(score) == "" {
			t.Fatalf("score %d produced empty color", score)
		}
	}
}

func TestScoreBandBoundaries(t *testing.T) {
	tests := []struct {
		score   int
		message string
		color   string
	}{
		{0, "Needs Improvement", "#dc3545"},
		{39, "Needs Improvement", "#dc3545"},
		{40, "Moderate Match", "#f97316"},
		{59, "Moderate Match", "#f97316"},
		{60, "Good Match", "#fbbf24"},
		{79, "Good Match", "#fbbf24"},
		{80, "Excellent Match!", "#10b981"},
		{100, "Excellent Match!", "#10b981"},
	}

	for _, tt := range tests {
		if got := ScoreMessage(tt.score); got != tt.message {
			t.Errorf("ScoreMessage(%d) = %q, want %q", tt.score, got, tt.message)
		}
		if got := ScoreColor(tt.score); got != tt.color {
			t.Errorf("ScoreColor(%d) = %q, want %q", tt.score, got, tt.color)
		}
	}
}

func TestStatusBadgeLookup(t *testing.T) {
	tests := []struct {
		status models.MatchStatus
		want   models.StatusBadge
	}{
		{models.StatusExceeds, models.StatusBadge{Color: "#10b981", Icon: "✨"}},
		{models.StatusMeets, models.StatusBadge{Color: "#10b981", Icon: "✅"}},
		{models.StatusPartial, models.StatusBadge{Color: "#fbbf24", Icon: "⚠️"}},
		{models.StatusInsufficient, models.StatusBadge{Color: "#dc3545", Icon: "❌"}},
	}

	for _, tt := range tests {
		if got := StatusBadge(tt.status); got != tt.want {
			t.Errorf("StatusBadge(%q) = %+v, want %+v", tt.status, got, tt.want)
		}
	}

	fallback := models.StatusBadge{Color: "#6b7280", Icon: "ℹ️"}
	for _, unknown := range []models.MatchStatus{"", "Great", "meets"} {
		if got := StatusBadge(unknown); got != fallback {
			t.Errorf("StatusBadge(%q) = %+v, want fallback %+v", unknown, got, fallback)
		}
	}
}

func TestSkillMatchRate(t *testing.T) {
	tests := []struct {
		name     string
		matching []string
		missing  []string
		want     int
	}{
		{"two of three", []string{"Python", "SQL"}, []string{"AWS"}, 67},
		{"all matching", []string{"Go"}, nil, 100},
		{"none matching", nil, []string{"Go"}, 0},
		{"no skills at all", nil, nil, 0},
		{"half", []string{"A"}, []string{"B"}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SkillMatchRate(tt.matching, tt.missing); got != tt.want {
				t.Errorf("SkillMatchRate = %d, want %d", got, tt.want)
			}
		})
	}
}
