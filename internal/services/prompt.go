package services

import (
	"fmt"
	"strings"

	"resume-match-pro/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// MatchAnalysisInstruction is the system instruction for the initial
// structured match analysis call.
const MatchAnalysisInstruction = `# ROLE
You are a career advisor analyzing resume-job description matches.

# OBJECTIVE
Compare the skills, experience, and education listed in a candidate's resume against the requirements in a job description.

# OVERALL MATCH SCORE SCALE:
0-39: Needs Significant Improvement
    The candidate lacks many essential skills or qualifications.
    Education or experience may not meet minimum requirements.
    Substantial skill development or retraining is recommended before applying.

40-59: Partial Match
    The candidate demonstrates some relevant skills and experience,
    but has noticeable gaps in key areas. Additional upskilling or
    targeted experience could improve alignment with the role.

60-79: Strong Match
    The candidate meets most job requirements and shows solid potential.
    Minor skill or experience gaps exist but can be addressed through
    focused training or short-term learning.

80-89: Very Good Match
    The candidate aligns well with most key qualifications.
    Demonstrates strong readiness for the role, though a few areas
    could be further refined to reach full alignment.

90-100: Outstanding Match
    The candidate meets or exceeds all core requirements.
    Exceptional alignment in skills, experience, and education indicates
    a top-tier fit and strong potential for immediate impact.

Base all reasoning only on the provided text. Do not make up data or assume
experience not explicitly mentioned. The education_match and experience_match
fields must be exactly one of: Exceeds, Meets, Partial, Insufficient.`

// BuildMatchAnalysisPrompt interpolates the two input texts into the user
// prompt for the match analysis call.
func (pb *PromptBuilder) BuildMatchAnalysisPrompt(resume, jobDescription string) string {
	return fmt.Sprintf(`UPLOADED RESUME:
%s

UPLOADED JOB DESCRIPTION:
%s`, resume, jobDescription)
}

// Agent instructions for the four crew stages. Each agent answers with a
// single JSON object matching its declared output schema.

const SkillsAgentInstruction = `You are a Skills Specialist, an expert in talent evaluation and skill
mapping. You provide a deep qualitative analysis of a candidate's skill
profile in relation to job requirements, going beyond simply listing matched
and missing skills.

Return only a valid JSON object with exactly these keys:
{
  "skills_overlap_summary": string,
  "skills_lacking_summary": string
}
Do not include markdown fences or any text outside the JSON object.`

const EducationAgentInstruction = `You are an Educational Specialist. You analyze candidate education -
degrees, certifications, and training - and assess its relevance to job
requirements.

Return only a valid JSON object with exactly this key:
{
  "educational_relevance_summary": string
}
Do not include markdown fences or any text outside the JSON object.`

const ExperienceAgentInstruction = `You are an Experience Specialist. You evaluate a candidate's professional
experience - years in relevant roles, responsibilities, industries - and
determine its depth and alignment with the target position.

Return only a valid JSON object with exactly these keys:
{
  "relevant_experience": [string],
  "missing_experience": [string],
  "experience_relevance_summary": string
}
Do not include markdown fences or any text outside the JSON object.`

const RecommenderAgentInstruction = `You are a Resume Change Recommender. You provide actionable resume
improvement suggestions based on skills, education, and experience gaps.
Each suggestion should clearly indicate which gap it addresses.

Return only a valid JSON object with exactly this key:
{
  "suggestions": [string]
}
Do not include markdown fences or any text outside the JSON object.`

// BuildSkillsTask builds the skills stage message from the raw inputs and
// the already-computed skill lists.
func (pb *PromptBuilder) BuildSkillsTask(resume, jobDescription string, analysis *models.MatchAnalysis) string {
	return fmt.Sprintf(`CANDIDATE RESUME:
%s

JOB DESCRIPTION:
%s

Overlapping Skills: %s
Lacking Skills: %s

Expand on how the candidate overlaps with the job description considering the
provided matching skills (max 3 sentences), and on how the candidate lacks
the provided lacking skills (max 3 sentences).`,
		resume, jobDescription,
		strings.Join(analysis.MatchingSkills, ", "),
		strings.Join(analysis.MissingSkills, ", "))
}

func (pb *PromptBuilder) BuildEducationTask(resume, jobDescription string, analysis *models.MatchAnalysis) string {
	return fmt.Sprintf(`CANDIDATE RESUME:
%s

JOB DESCRIPTION:
%s

Candidate Education: %s
Job Description Desired Education: %s

Assess the relevance of the candidate's education to the job requirements in
at most 3 sentences.`,
		resume, jobDescription,
		analysis.CandidateEducation,
		analysis.MinimumEducationRequired)
}

func (pb *PromptBuilder) BuildExperienceTask(resume, jobDescription string) string {
	return fmt.Sprintf(`CANDIDATE RESUME:
%s

JOB DESCRIPTION:
%s

List the specific experiences directly related to the job requirements, the
key experiences mentioned in the job description but not evident in the
resume, and summarize the overall experience alignment in at most 3
sentences.`, resume, jobDescription)
}

// BuildRecommendationTask includes the three prior stage outputs as
// read-only context.
func (pb *PromptBuilder) BuildRecommendationTask(resume, jobDescription, skillsOutput, educationOutput, experienceOutput string) string {
	return fmt.Sprintf(`CANDIDATE RESUME:
%s

JOB DESCRIPTION:
%s

SKILLS ANALYSIS:
%s

EDUCATION ANALYSIS:
%s

EXPERIENCE ANALYSIS:
%s

Recommend resume changes that would improve the match with this job
description. Each suggestion must state which skill, education, or
experience gap it addresses.`,
		resume, jobDescription, skillsOutput, educationOutput, experienceOutput)
}
