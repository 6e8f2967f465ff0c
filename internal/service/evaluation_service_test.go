package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codexam/internal/model"
)

func openQuestions(answers ...string) []model.Question {
	questions := make([]model.Question, len(answers))
	for i, answer := range answers {
		questions[i] = model.Question{
			ID:         i + 1,
			Question:   "question",
			Difficulty: model.DifficultyMedium,
			Answer:     answer,
		}
	}
	return questions
}

func TestEvaluateAnswersParsesResponse(t *testing.T) {
	client := &stubCompletion{content: `{"score": 82.4, "feedback": "Solid work.", "suggestions": ["Go deeper"]}`}
	results := &memoryResults{}
	svc := NewEvaluationService(client, NewPromptResolver(nil), results)

	result, err := svc.EvaluateAnswers(context.Background(), "code", openQuestions("a1", "a2"))

	require.NoError(t, err)
	assert.Equal(t, 82, result.Score)
	assert.Equal(t, "Solid work.", result.Feedback)
	assert.Equal(t, []string{"Go deeper"}, result.Suggestions)

	require.Len(t, results.records, 1)
	assert.Equal(t, model.SubmissionEvaluation, results.records[0].Kind)
	assert.Equal(t, 82, results.records[0].Score)
}

func TestEvaluateAnswersFallsBackOnUnparsableContent(t *testing.T) {
	client := &stubCompletion{content: "The student did reasonably well overall."}
	svc := NewEvaluationService(client, NewPromptResolver(nil), nil)

	// 2 answered of 5: round(2/5*70)+15 = 43.
	result, err := svc.EvaluateAnswers(context.Background(), "code", openQuestions("a", "b", "", "", ""))

	require.NoError(t, err)
	assert.Equal(t, 43, result.Score)
	assert.Contains(t, result.Feedback, "You answered 2 out of 5 questions.")
	assert.Len(t, result.Suggestions, 5)
}

func TestEvaluateAnswersFallbackFullCompletion(t *testing.T) {
	client := &stubCompletion{content: "not json"}
	svc := NewEvaluationService(client, NewPromptResolver(nil), nil)

	result, err := svc.EvaluateAnswers(context.Background(), "code", openQuestions("a", "b", "c"))

	require.NoError(t, err)
	assert.Equal(t, 85, result.Score)
}

func TestEvaluateAnswersWhitespaceNotAnswered(t *testing.T) {
	// "   " counts as unanswered in the fallback ratio.
	result := FallbackEvaluation(openQuestions("a", "   "))
	assert.Contains(t, result.Feedback, "You answered 1 out of 2 questions.")
	assert.Equal(t, 50, result.Score)
}

func TestEvaluateAnswersMissingScoreDefaultsToZero(t *testing.T) {
	client := &stubCompletion{content: `{"feedback": "No numeric score given."}`}
	svc := NewEvaluationService(client, NewPromptResolver(nil), nil)

	result, err := svc.EvaluateAnswers(context.Background(), "code", openQuestions("a"))

	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "No numeric score given.", result.Feedback)
	// Missing suggestions get defaults.
	assert.Len(t, result.Suggestions, 4)
}

func TestEvaluateAnswersClampsAndTruncates(t *testing.T) {
	client := &stubCompletion{content: `{"score": 250, "feedback": "",
		"suggestions": ["1","2","3","4","5","6","7"]}`}
	svc := NewEvaluationService(client, NewPromptResolver(nil), nil)

	result, err := svc.EvaluateAnswers(context.Background(), "code", openQuestions("a"))

	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, "Assessment completed. Review the suggestions for improvement.", result.Feedback)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, result.Suggestions)
}

func TestEvaluateAnswersPropagatesTransportError(t *testing.T) {
	client := &stubCompletion{err: ErrUpstream}
	results := &memoryResults{}
	svc := NewEvaluationService(client, NewPromptResolver(nil), results)

	_, err := svc.EvaluateAnswers(context.Background(), "code", openQuestions("a"))

	assert.ErrorIs(t, err, ErrUpstream)
	assert.Empty(t, results.records, "failed evaluations must not be recorded")
}

func TestEvaluateAnswersBroadcasts(t *testing.T) {
	client := &stubCompletion{content: `{"score": 60, "feedback": "ok", "suggestions": []}`}
	broadcaster := &memoryBroadcaster{}
	svc := NewEvaluationService(client, NewPromptResolver(nil), nil)
	svc.SetBroadcaster(broadcaster)

	_, err := svc.EvaluateAnswers(context.Background(), "code", openQuestions("a"))

	require.NoError(t, err)
	require.Len(t, broadcaster.records, 1)
	assert.Equal(t, 60, broadcaster.records[0].Score)
}

func TestEvaluationContextIncludesUnanswered(t *testing.T) {
	questions := openQuestions("first answer", "")
	ctx := evaluationContext("my code", questions)

	assert.Contains(t, ctx, "Original Code:\nmy code")
	assert.Contains(t, ctx, "Answer: first answer")
	assert.Contains(t, ctx, "Answer: No answer provided")
	assert.Contains(t, ctx, "(Difficulty: Medium)")
}
