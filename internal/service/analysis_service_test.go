package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codexam/internal/model"
)

func TestAnalyzeCodeParsesResponse(t *testing.T) {
	client := &stubCompletion{content: `{
		"overallScore": 88.6,
		"summary": "Clean and well organized.",
		"improvements": [
			{"category": "Performance", "issue": "Nested loops", "suggestion": "Use a lookup map", "priority": "High"}
		],
		"comprehensionQuestions": [
			{"question": "Why a map?", "purpose": "Data structure choice"}
		]
	}`}
	results := &memoryResults{}
	svc := NewAnalysisService(client, NewPromptResolver(nil), results)

	analysis, err := svc.AnalyzeCode(context.Background(), "code", "")

	require.NoError(t, err)
	assert.Equal(t, 89, analysis.OverallScore)
	assert.Equal(t, "Clean and well organized.", analysis.Summary)
	require.Len(t, analysis.Improvements, 1)
	assert.Equal(t, model.PriorityHigh, analysis.Improvements[0].Priority)
	require.Len(t, analysis.ComprehensionQuestions, 1)

	require.Len(t, results.records, 1)
	assert.Equal(t, model.SubmissionAnalysis, results.records[0].Kind)
}

func TestAnalyzeCodeMissingScoreDefaults(t *testing.T) {
	client := &stubCompletion{content: `{"summary": "Fine."}`}
	svc := NewAnalysisService(client, NewPromptResolver(nil), nil)

	analysis, err := svc.AnalyzeCode(context.Background(), "code", "")

	require.NoError(t, err)
	assert.Equal(t, 75, analysis.OverallScore)
	// Empty lists get defaults.
	assert.Len(t, analysis.Improvements, 1)
	assert.Len(t, analysis.ComprehensionQuestions, 2)
}

func TestAnalyzeCodeFallsBackOnUnparsableContent(t *testing.T) {
	client := &stubCompletion{content: "Overall this looks fine to me."}
	svc := NewAnalysisService(client, NewPromptResolver(nil), nil)

	analysis, err := svc.AnalyzeCode(context.Background(), strings.Repeat("x", 3000), "")

	require.NoError(t, err)
	// 100 - 3000/100 = 70.
	assert.Equal(t, 70, analysis.OverallScore)
	assert.Len(t, analysis.Improvements, 3)
	assert.Len(t, analysis.ComprehensionQuestions, 4)
}

func TestFallbackAnalysisScoreBounds(t *testing.T) {
	assert.Equal(t, 90, FallbackAnalysis("short").OverallScore)
	assert.Equal(t, 50, FallbackAnalysis(strings.Repeat("x", 10000)).OverallScore)
}

func TestAnalyzeCodeSanitizesItems(t *testing.T) {
	client := &stubCompletion{content: `{
		"overallScore": -4,
		"summary": "",
		"improvements": [{"category": "", "issue": "", "suggestion": "", "priority": "urgent!!"}],
		"comprehensionQuestions": [{"question": "", "purpose": ""}]
	}`}
	svc := NewAnalysisService(client, NewPromptResolver(nil), nil)

	analysis, err := svc.AnalyzeCode(context.Background(), "code", "")

	require.NoError(t, err)
	assert.Equal(t, 0, analysis.OverallScore)
	assert.Equal(t, "Code analysis completed with recommendations for improvement.", analysis.Summary)

	imp := analysis.Improvements[0]
	assert.Equal(t, "General", imp.Category)
	assert.Equal(t, "Issue identified", imp.Issue)
	assert.Equal(t, "Improvement recommended", imp.Suggestion)
	assert.Equal(t, model.PriorityMedium, imp.Priority)

	q := analysis.ComprehensionQuestions[0]
	assert.Equal(t, "What does this code do?", q.Question)
	assert.Equal(t, "Understanding code functionality", q.Purpose)
}

func TestAnalyzeCodePropagatesTransportError(t *testing.T) {
	client := &stubCompletion{err: ErrUpstream}
	svc := NewAnalysisService(client, NewPromptResolver(nil), nil)

	_, err := svc.AnalyzeCode(context.Background(), "code", "")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestAnalysisContextIncludesSpecifications(t *testing.T) {
	withSpecs := analysisContext("my code", "must be fast")
	assert.Contains(t, withSpecs, "Code to analyze:\nmy code")
	assert.Contains(t, withSpecs, "Project Specifications:\nmust be fast")

	withoutSpecs := analysisContext("my code", "")
	assert.NotContains(t, withoutSpecs, "Project Specifications")
}
