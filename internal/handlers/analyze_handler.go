package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-match-pro/internal/models"
	"resume-match-pro/internal/repositories"
	"resume-match-pro/internal/services"
)

const crewWarning = "Advanced analysis partially unavailable. Showing basic results."

type AnalyzeHandler struct {
	matcher        services.MatcherService
	crew           services.CrewService
	reportRepo     repositories.ReportRepository
	minResumeChars int
	minJobChars    int
}

func NewAnalyzeHandler(
	matcher services.MatcherService,
	crew services.CrewService,
	reportRepo repositories.ReportRepository,
	minResumeChars int,
	minJobChars int,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		matcher:        matcher,
		crew:           crew,
		reportRepo:     reportRepo,
		minResumeChars: minResumeChars,
		minJobChars:    minJobChars,
	}
}

// HandleAnalyze handles POST /analyze. The whole pipeline runs on the
// request goroutine: one structured match analysis call, then the four crew
// stages in sequence. Input validation happens before any remote call.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resume := strings.TrimSpace(req.Resume)
	jobDescription := strings.TrimSpace(req.JobDescription)

	if resume == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please paste your resume before starting analysis",
		})
	}
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please paste the job description before starting analysis",
		})
	}
	if len(resume) < h.minResumeChars {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume text seems too short. Please provide a complete resume",
		})
	}
	if len(jobDescription) < h.minJobChars {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description seems too short. Please provide a complete job description",
		})
	}

	analysis, err := h.matcher.AnalyzeMatch(c.Context(), resume, jobDescription)
	if err != nil {
		log.Printf("match analysis failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Analysis failed. Please try again or check your inputs",
		})
	}

	var warning string
	var crewResult *models.CrewResult

	outputs, err := h.crew.Run(c.Context(), resume, jobDescription, analysis)
	if err != nil {
		log.Printf("crew analysis failed: %v", err)
		warning = crewWarning
		crewResult = &models.CrewResult{}
	} else {
		crewResult = services.Reduce(outputs)
	}

	report := &models.Report{
		ID:       uuid.New(),
		Analysis: analysis,
		Crew:     crewResult,
		Presentation: models.Presentation{
			ScoreColor:      services.ScoreColor(analysis.OverallMatchScore),
			ScoreMessage:    services.ScoreMessage(analysis.OverallMatchScore),
			SkillMatchRate:  services.SkillMatchRate(analysis.MatchingSkills, analysis.MissingSkills),
			EducationBadge:  services.StatusBadge(analysis.EducationMatch),
			ExperienceBadge: services.StatusBadge(analysis.ExperienceMatch),
		},
		Warning:   warning,
		CreatedAt: time.Now(),
	}

	if err := h.reportRepo.Save(report); err != nil {
		log.Printf("failed to store report: %v", err)
	}

	return c.JSON(report)
}
