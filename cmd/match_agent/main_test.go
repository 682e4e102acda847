package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-odds/internal/schemas"
	"github.com/jonathan/interview-odds/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResume = `Jane Doe
Location: Berlin

Summary
Backend engineer building payment services in Python on AWS.

Experience
2018 - Present
Senior Software Engineer
Initech
- Built Python services on AWS with Docker

Education
Bachelor of Science in Computer Science, 2014
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearServiceEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("GEMINI_API_KEY", "")
}

func TestReadJSON(t *testing.T) {
	dir := t.TempDir()

	valid := writeFile(t, dir, "job.json", `{"id": "job-1", "title": "Backend Engineer", "required_skills": ["Python"]}`)
	var job types.JobRequirements
	require.NoError(t, readJSON(valid, schemas.JobRequirements, &job))
	assert.Equal(t, "job-1", job.ID)
	assert.Equal(t, []string{"Python"}, job.RequiredSkills)

	invalid := writeFile(t, dir, "bad.json", `{"company": "Initech"}`)
	err := readJSON(invalid, schemas.JobRequirements, &job)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")

	err = readJSON(filepath.Join(dir, "missing.json"), schemas.JobRequirements, &job)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestWriteOutput_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	require.NoError(t, writeOutput(path, map[string]int{"n": 1}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": 1}`, string(content))
}

func TestSourceFlags_Load(t *testing.T) {
	dir := t.TempDir()
	flags := sourceFlags{
		resume: writeFile(t, dir, "resume.txt", testResume),
		social: writeFile(t, dir, "social.json", `{"headline": "Backend engineer", "skills": ["Go"]}`),
	}

	sources, err := flags.load()
	require.NoError(t, err)
	assert.Contains(t, sources.Resume, "Initech")
	require.NotNil(t, sources.Social)
	assert.Equal(t, []string{"Go"}, sources.Social.Skills)

	empty, err := (&sourceFlags{}).load()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestFeedbackRequest_FromFlags(t *testing.T) {
	matchID := uuid.New()
	feedbackFile = ""
	feedbackMatchID = matchID.String()
	feedbackOutcome = "interview"
	feedbackAppliedAt = "2025-01-02T10:00:00Z"
	feedbackResponseAt = ""
	feedbackRounds = 2
	feedbackRating = 0
	feedbackNotes = "phone screen"

	req, err := feedbackRequest()
	require.NoError(t, err)
	assert.Equal(t, matchID, req.MatchID)
	assert.Equal(t, "interview", req.Outcome)
	require.NotNil(t, req.AppliedAt)
	assert.Equal(t, time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC), req.AppliedAt.UTC())
	assert.Nil(t, req.ResponseAt)
	require.NotNil(t, req.InterviewRounds)
	assert.Equal(t, 2, *req.InterviewRounds)
	assert.Nil(t, req.UserRating)

	feedbackOutcome = "ghosted"
	_, err = feedbackRequest()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid outcome")

	feedbackOutcome = "offer"
	feedbackAppliedAt = "yesterday"
	_, err = feedbackRequest()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--applied-at")

	feedbackMatchID = "not-a-uuid"
	_, err = feedbackRequest()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid match id")
}

func TestScoreCommand_InMemory(t *testing.T) {
	clearServiceEnv(t)
	dir := t.TempDir()
	jobPath := writeFile(t, dir, "job.json", `{
		"id": "job-1",
		"title": "Backend Engineer",
		"company": "Initech",
		"required_skills": ["Python", "AWS", "Docker"],
		"min_experience_years": 5,
		"max_experience_years": 10,
		"seniority_level": "senior"
	}`)
	resumePath := writeFile(t, dir, "resume.txt", testResume)
	outPath := filepath.Join(dir, "match.json")

	rootCmd.SetArgs([]string{"score", "--job", jobPath, "--resume", resumePath, "--out", outPath, "--explain"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var doc scoreOutputDoc
	require.NoError(t, json.Unmarshal(content, &doc))

	require.NotNil(t, doc.Match)
	assert.Equal(t, "job-1", doc.Match.JobID)
	assert.Equal(t, "cli", doc.Match.UserID)
	assert.Equal(t, types.TierBasic, doc.Match.SubscriptionTier)
	assert.GreaterOrEqual(t, doc.Match.InterviewProbability, 0.0)
	assert.LessOrEqual(t, doc.Match.InterviewProbability, 1.0)

	require.NotNil(t, doc.Explanation)
	assert.Equal(t, doc.Match.ID, doc.Explanation.MatchID)
	assert.Equal(t, types.ReasoningSourceRules, doc.Explanation.ReasoningSource)
}

func TestExplainCommand_RequiresDatabase(t *testing.T) {
	clearServiceEnv(t)

	rootCmd.SetArgs([]string{"explain", "--match-id", uuid.NewString()})
	err := rootCmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a database")
}
