package service

import (
	"context"
	"fmt"

	"codexam/internal/config"
	"codexam/internal/model"

	log "github.com/sirupsen/logrus"
)

// generatedQuestion is the loosely-shaped question item the collaborator
// returns before normalization.
type generatedQuestion struct {
	Question   string `json:"question"`
	Difficulty string `json:"difficulty"`
}

// QuestionService generates open-ended comprehension questions from a code
// submission.
type QuestionService struct {
	completions CompletionClient
	prompts     *PromptResolver
}

// NewQuestionService creates a new question service.
func NewQuestionService(completions CompletionClient, prompts *PromptResolver) *QuestionService {
	return &QuestionService{
		completions: completions,
		prompts:     prompts,
	}
}

// GenerateQuestions asks the collaborator for 10 comprehension questions
// about the submitted code and normalizes the result. Unparsable content
// degrades to the built-in question library; transport failures propagate.
func (s *QuestionService) GenerateQuestions(ctx context.Context, code string) ([]model.Question, error) {
	tmpl := s.prompts.Template(ctx, config.PromptQuestionGeneration)

	raw, err := s.completions.Complete(ctx, CompletionRequest{
		System:      tmpl.Prompt,
		User:        "Please analyze this code and generate 10 relevant questions:\n\n" + code,
		Temperature: tmpl.Temperature,
		MaxTokens:   tmpl.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	payload, ok := decodeJSON[struct {
		Questions []generatedQuestion `json:"questions"`
	}](raw)
	if !ok {
		log.Warn("question generation response not parseable, using built-in library")
		return normalizeOpenEnded(defaultOpenQuestions()), nil
	}

	return normalizeOpenEnded(payload.Questions), nil
}

// normalizeOpenEnded repairs a candidate question list into the canonical
// shape: at most 10 items, dense 1-based IDs, placeholder text for blank
// questions, coerced difficulty, and an empty answer slot. An empty input
// synthesizes the built-in library instead.
func normalizeOpenEnded(items []generatedQuestion) []model.Question {
	if len(items) == 0 {
		items = defaultOpenQuestions()
	}
	if len(items) > 10 {
		items = items[:10]
	}

	questions := make([]model.Question, len(items))
	for i, item := range items {
		text := item.Question
		if text == "" {
			text = fmt.Sprintf("Question %d", i+1)
		}
		questions[i] = model.Question{
			ID:         i + 1,
			Question:   text,
			Difficulty: model.ParseDifficulty(item.Difficulty),
			Answer:     "",
		}
	}
	return questions
}

// defaultOpenQuestions is the fixed comprehension-question library used when
// the collaborator produces nothing usable. It spans all three difficulties.
func defaultOpenQuestions() []generatedQuestion {
	return []generatedQuestion{
		{Question: "What is the main purpose of this code?", Difficulty: "Easy"},
		{Question: "Identify any potential issues or improvements in the implementation.", Difficulty: "Medium"},
		{Question: "How could you optimize the performance of this code?", Difficulty: "Hard"},
		{Question: "What error handling mechanisms are present in this code?", Difficulty: "Medium"},
		{Question: "Explain the data structures used in this implementation.", Difficulty: "Easy"},
		{Question: "What design patterns, if any, are implemented here?", Difficulty: "Hard"},
		{Question: "How would you test this code effectively?", Difficulty: "Medium"},
		{Question: "What are the input and output expectations for this code?", Difficulty: "Easy"},
		{Question: "Identify any security concerns in this implementation.", Difficulty: "Hard"},
		{Question: "How does this code handle edge cases?", Difficulty: "Medium"},
	}
}
