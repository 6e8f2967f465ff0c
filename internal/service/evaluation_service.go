package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"codexam/internal/cache"
	"codexam/internal/config"
	"codexam/internal/model"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// EvaluationService scores a student's open-ended answers against the code
// they were generated from.
type EvaluationService struct {
	completions CompletionClient
	prompts     *PromptResolver
	results     cache.ResultCache
	broadcaster Broadcaster
}

// NewEvaluationService creates a new evaluation service. The result cache is
// optional; without it evaluations are simply not recorded to the feed.
func NewEvaluationService(completions CompletionClient, prompts *PromptResolver, results cache.ResultCache) *EvaluationService {
	return &EvaluationService{
		completions: completions,
		prompts:     prompts,
		results:     results,
	}
}

// SetBroadcaster sets the broadcaster for monitor events.
func (s *EvaluationService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// EvaluateAnswers asks the collaborator to assess the answered questions in
// the context of the original code. Unparsable content degrades to the
// deterministic completion-ratio fallback; transport failures propagate.
// Score clamping and suggestion truncation apply on both paths.
func (s *EvaluationService) EvaluateAnswers(ctx context.Context, code string, questions []model.Question) (*model.EvaluationResult, error) {
	tmpl := s.prompts.Template(ctx, config.PromptAnswerValidation)

	raw, err := s.completions.Complete(ctx, CompletionRequest{
		System:      tmpl.Prompt,
		User:        "Please evaluate these answers and provide a comprehensive assessment:\n\n" + evaluationContext(code, questions),
		Temperature: tmpl.Temperature,
		MaxTokens:   tmpl.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	payload, ok := decodeJSON[struct {
		Score       *float64 `json:"score"`
		Feedback    string   `json:"feedback"`
		Suggestions []string `json:"suggestions"`
	}](raw)

	var result model.EvaluationResult
	if ok {
		score := 0
		if payload.Score != nil {
			score = int(math.Round(*payload.Score))
		}
		result = model.EvaluationResult{
			Score:       score,
			Feedback:    payload.Feedback,
			Suggestions: payload.Suggestions,
		}
	} else {
		log.Warn("evaluation response not parseable, using completion-ratio fallback")
		result = FallbackEvaluation(questions)
	}

	sanitizeEvaluation(&result)
	s.record(ctx, result)
	return &result, nil
}

// FallbackEvaluation computes the deterministic score used when the
// collaborator's assessment cannot be parsed: up to 70 points for the
// completion ratio plus a fixed 15-point quality bonus, capped at 100.
func FallbackEvaluation(questions []model.Question) model.EvaluationResult {
	answered := 0
	for _, q := range questions {
		if strings.TrimSpace(q.Answer) != "" {
			answered++
		}
	}

	baseScore := 0
	if len(questions) > 0 {
		baseScore = int(math.Round(float64(answered) / float64(len(questions)) * 70))
	}
	score := baseScore + 15
	if score > 100 {
		score = 100
	}

	return model.EvaluationResult{
		Score: score,
		Feedback: fmt.Sprintf("You answered %d out of %d questions. Your responses show a basic understanding "+
			"of the code structure and functionality. Focus on providing more detailed explanations and "+
			"considering edge cases in your answers.", answered, len(questions)),
		Suggestions: []string{
			"Provide more detailed explanations in your answers",
			"Consider edge cases and potential issues",
			"Explain your reasoning more thoroughly",
			"Reference specific parts of the code in your answers",
			"Think about performance implications and optimizations",
		},
	}
}

// sanitizeEvaluation enforces the output contract regardless of which path
// produced the result: score in [0,100], at most 5 suggestions, no blank
// feedback.
func sanitizeEvaluation(result *model.EvaluationResult) {
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}
	if result.Feedback == "" {
		result.Feedback = "Assessment completed. Review the suggestions for improvement."
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{
			"Provide more comprehensive answers",
			"Include specific examples from your code",
			"Consider alternative approaches",
			"Explain potential improvements",
		}
	}
	if len(result.Suggestions) > 5 {
		result.Suggestions = result.Suggestions[:5]
	}
}

// evaluationContext assembles the code plus numbered Q&A block sent to the
// collaborator.
func evaluationContext(code string, questions []model.Question) string {
	var sb strings.Builder
	sb.WriteString("\nOriginal Code:\n")
	sb.WriteString(code)
	sb.WriteString("\n\nQuestions and Answers:\n")
	for i, q := range questions {
		answer := q.Answer
		if answer == "" {
			answer = "No answer provided"
		}
		sb.WriteString(fmt.Sprintf("\n%d. %s (Difficulty: %s)\nAnswer: %s\n", i+1, q.Question, q.Difficulty, answer))
	}
	return sb.String()
}

func (s *EvaluationService) record(ctx context.Context, result model.EvaluationResult) {
	rec := model.SubmissionRecord{
		ID:        uuid.NewString(),
		Kind:      model.SubmissionEvaluation,
		Score:     result.Score,
		Summary:   result.Feedback,
		CreatedAt: time.Now().UTC(),
	}
	if s.results != nil {
		if err := s.results.Record(ctx, rec); err != nil {
			log.WithError(err).Warn("failed to record evaluation result")
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.SubmissionRecorded(rec)
	}
}
