package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"resume-match-pro/internal/models"
)

// StageOutputs holds the raw text each crew stage produced, in pipeline
// order. The reducer decides what is actually usable.
type StageOutputs struct {
	Skills          string
	Education       string
	Experience      string
	Recommendations string
}

type CrewService interface {
	Run(ctx context.Context, resume, jobDescription string, analysis *models.MatchAnalysis) (*StageOutputs, error)
}

type crewStage struct {
	name   string
	runner *runner.Runner
}

type crewService struct {
	sessions      session.Service
	promptBuilder *PromptBuilder
	skills        crewStage
	education     crewStage
	experience    crewStage
	recommender   crewStage
}

// NewCrewService builds the four specialist agents and their runners. The
// pipeline order is fixed: skills, education, experience, then the
// recommender, which reads the first three outputs as context.
func NewCrewService(apiKey, modelName string) (CrewService, error) {
	ctx := context.Background()

	model, err := gemini.NewModel(ctx, modelName, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent model: %w", err)
	}

	sessions := session.InMemoryService()

	svc := &crewService{
		sessions:      sessions,
		promptBuilder: NewPromptBuilder(),
	}

	stages := []struct {
		target      *crewStage
		name        string
		description string
		instruction string
	}{
		{&svc.skills, "skills_specialist", "Qualitative analysis of the candidate's skill profile", SkillsAgentInstruction},
		{&svc.education, "educational_specialist", "Assessment of candidate education relevance", EducationAgentInstruction},
		{&svc.experience, "experience_specialist", "Evaluation of candidate professional experience", ExperienceAgentInstruction},
		{&svc.recommender, "resume_change_recommender", "Actionable resume improvement suggestions", RecommenderAgentInstruction},
	}

	for _, s := range stages {
		specialist, err := llmagent.New(llmagent.Config{
			Name:        s.name,
			Model:       model,
			Description: s.description,
			Instruction: s.instruction,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s agent: %w", s.name, err)
		}

		r, err := runner.New(runner.Config{
			AppName:        specialist.Name(),
			Agent:          specialist,
			SessionService: sessions,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s runner: %w", s.name, err)
		}

		*s.target = crewStage{name: specialist.Name(), runner: r}
	}

	return svc, nil
}

// Run executes the four stages strictly in sequence. Any stage failure
// aborts the whole pipeline; the caller falls back to an empty crew result
// while the match analysis is still shown.
func (c *crewService) Run(ctx context.Context, resume, jobDescription string, analysis *models.MatchAnalysis) (*StageOutputs, error) {
	userID := "web"
	sessionID := uuid.NewString()

	outputs := &StageOutputs{}
	var err error

	outputs.Skills, err = c.runStage(ctx, c.skills, userID, sessionID,
		c.promptBuilder.BuildSkillsTask(resume, jobDescription, analysis))
	if err != nil {
		return nil, fmt.Errorf("skills stage: %w", err)
	}

	outputs.Education, err = c.runStage(ctx, c.education, userID, sessionID,
		c.promptBuilder.BuildEducationTask(resume, jobDescription, analysis))
	if err != nil {
		return nil, fmt.Errorf("education stage: %w", err)
	}

	outputs.Experience, err = c.runStage(ctx, c.experience, userID, sessionID,
		c.promptBuilder.BuildExperienceTask(resume, jobDescription))
	if err != nil {
		return nil, fmt.Errorf("experience stage: %w", err)
	}

	outputs.Recommendations, err = c.runStage(ctx, c.recommender, userID, sessionID,
		c.promptBuilder.BuildRecommendationTask(resume, jobDescription,
			outputs.Skills, outputs.Education, outputs.Experience))
	if err != nil {
		return nil, fmt.Errorf("recommendation stage: %w", err)
	}

	return outputs, nil
}

// runStage runs one agent over its own short-lived session and returns the
// final response text.
func (c *crewService) runStage(ctx context.Context, stage crewStage, userID, sessionID, msg string) (string, error) {
	created, err := c.sessions.Create(ctx, &session.CreateRequest{
		AppName:   stage.name,
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create agent session: %w", err)
	}

	stream := stage.runner.Run(ctx, created.Session.UserID(), created.Session.ID(), &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: msg},
		},
	}, agent.RunConfig{})

	var output string
	for event, err := range stream {
		if err != nil {
			c.deleteSession(ctx, stage.name, userID, sessionID)
			return "", err
		}
		if event != nil && event.IsFinalResponse() && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}

	c.deleteSession(ctx, stage.name, userID, sessionID)

	if output == "" {
		return "", fmt.Errorf("empty response from %s", stage.name)
	}
	return output, nil
}

func (c *crewService) deleteSession(ctx context.Context, appName, userID, sessionID string) {
	err := c.sessions.Delete(ctx, &session.DeleteRequest{
		AppName:   appName,
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		log.Printf("failed to delete agent session %s/%s: %v", appName, sessionID, err)
	}
}
