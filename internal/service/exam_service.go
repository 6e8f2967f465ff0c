package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"codexam/internal/cache"
	"codexam/internal/config"
	"codexam/internal/model"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultTimeLimit is the exam time limit in seconds when the
	// collaborator does not supply one.
	DefaultTimeLimit = 1800

	// maxExamQuestions bounds the size of a generated exam.
	maxExamQuestions = 20
)

// rawMCQ is the loosely-shaped exam question the collaborator returns
// before normalization.
type rawMCQ struct {
	Question      string         `json:"question"`
	Options       []rawMCQOption `json:"options"`
	CorrectAnswer string         `json:"correctAnswer"`
}

type rawMCQOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// BankSource supplies curated questions used to ground exam generation.
// Satisfied by repository.BankRepo.
type BankSource interface {
	List(ctx context.Context, subject string) ([]*model.BankQuestion, error)
	IncrementUsage(ctx context.Context, id string) error
}

// ExamService builds randomized multiple-choice exams from subject material
// and grades answered submissions.
type ExamService struct {
	completions CompletionClient
	prompts     *PromptResolver
	randomizer  *Randomizer
	results     cache.ResultCache
	broadcaster Broadcaster
	bank        BankSource
}

// NewExamService creates a new exam service.
func NewExamService(completions CompletionClient, prompts *PromptResolver, randomizer *Randomizer, results cache.ResultCache) *ExamService {
	return &ExamService{
		completions: completions,
		prompts:     prompts,
		randomizer:  randomizer,
		results:     results,
	}
}

// SetBroadcaster sets the broadcaster for monitor events.
func (s *ExamService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SetQuestionBank sets the optional curated question bank. When present,
// matching bank questions ground the generation prompt.
func (s *ExamService) SetQuestionBank(bank BankSource) {
	s.bank = bank
}

// GenerateExam asks the collaborator for MCQ questions about the subject
// material, normalizes them, and produces a freshly randomized exam
// instance. Unparsable content degrades to the built-in sample exam;
// transport failures propagate.
func (s *ExamService) GenerateExam(ctx context.Context, subject string) (*model.Exam, error) {
	tmpl := s.prompts.Template(ctx, config.PromptExamGeneration)

	raw, err := s.completions.Complete(ctx, CompletionRequest{
		System:      tmpl.Prompt,
		User:        "Generate MCQ questions from this subject material:\n\n" + subject + s.bankContext(ctx, subject),
		Temperature: tmpl.Temperature,
		MaxTokens:   tmpl.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	payload, ok := decodeJSON[struct {
		Questions []rawMCQ `json:"questions"`
		TimeLimit int      `json:"timeLimit"`
	}](raw)
	if !ok {
		log.Warn("exam generation response not parseable, using built-in sample exam")
		payload.Questions = fallbackExamQuestions()
		payload.TimeLimit = DefaultTimeLimit
	}

	questions := normalizeMCQ(payload.Questions)
	return s.randomizer.Randomize(questions, payload.TimeLimit), nil
}

// bankContext appends up to three curated bank questions for the subject as
// style references and marks them used. Bank failures never block generation.
func (s *ExamService) bankContext(ctx context.Context, subject string) string {
	if s.bank == nil {
		return ""
	}

	stored, err := s.bank.List(ctx, subject)
	if err != nil {
		log.WithError(err).Warn("question bank unavailable, generating without references")
		return ""
	}

	var sb strings.Builder
	count := 0
	for _, q := range stored {
		if q.Type != model.BankQuestionMCQ || count >= 3 {
			continue
		}
		if count == 0 {
			sb.WriteString("\n\nReference questions from the curated bank (match their style and difficulty):\n")
		}
		count++
		sb.WriteString(fmt.Sprintf("%d. %s\n", count, q.Question))
		if err := s.bank.IncrementUsage(ctx, q.ID); err != nil {
			log.WithError(err).Warn("failed to mark bank question used")
		}
	}
	return sb.String()
}

// EvaluateExam grades an answered exam and records the outcome. Grading
// itself is pure; recording and broadcasting are best-effort side effects.
func (s *ExamService) EvaluateExam(ctx context.Context, questions []model.MCQQuestion) *model.ScoreReport {
	report := Grade(questions)

	rec := model.SubmissionRecord{
		ID:        uuid.NewString(),
		Kind:      model.SubmissionExam,
		Score:     report.Score,
		Summary:   fmt.Sprintf("%d of %d correct", report.CorrectAnswers, report.TotalQuestions),
		CreatedAt: time.Now().UTC(),
	}
	if s.results != nil {
		if err := s.results.Record(ctx, rec); err != nil {
			log.WithError(err).Warn("failed to record exam result")
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.SubmissionRecorded(rec)
	}

	return &report
}

// normalizeMCQ repairs a candidate MCQ list into the canonical shape: at
// most 20 items, 1-based dense question IDs, placeholder text for blank
// fields, exactly-placeholder options when the supplied list is missing,
// dense option IDs from 'a' in the supplied order, and a correct answer
// resolved against the originally supplied IDs (defaulting to 'a').
func normalizeMCQ(items []rawMCQ) []model.MCQQuestion {
	if len(items) > maxExamQuestions {
		items = items[:maxExamQuestions]
	}

	questions := make([]model.MCQQuestion, len(items))
	for i, item := range items {
		text := item.Question
		if text == "" {
			text = fmt.Sprintf("Question %d", i+1)
		}

		options := make([]model.MCQOption, 0, 4)
		correct := -1
		if len(item.Options) == 0 {
			for j := 0; j < 4; j++ {
				options = append(options, model.MCQOption{
					ID:   optionLabel(j),
					Text: fmt.Sprintf("Option %c", 'A'+j),
				})
			}
		} else {
			for j, opt := range item.Options {
				optText := opt.Text
				if optText == "" {
					optText = fmt.Sprintf("Option %c", 'A'+j)
				}
				// Resolve against the originally supplied ID before relabeling.
				if correct < 0 && opt.ID != "" && opt.ID == item.CorrectAnswer {
					correct = j
				}
				options = append(options, model.MCQOption{
					ID:   optionLabel(j),
					Text: optText,
				})
			}
		}
		if correct < 0 {
			correct = 0
		}

		questions[i] = model.MCQQuestion{
			ID:            i + 1,
			Question:      text,
			Options:       options,
			CorrectAnswer: optionLabel(correct),
			Reported:      false,
		}
	}
	return questions
}

// fallbackExamQuestions is the fixed sample exam used when the collaborator
// produces nothing usable.
func fallbackExamQuestions() []rawMCQ {
	return []rawMCQ{
		{
			Question: "What is the main topic covered in the provided material?",
			Options: []rawMCQOption{
				{ID: "a", Text: "Basic concepts and fundamentals"},
				{ID: "b", Text: "Advanced theoretical frameworks"},
				{ID: "c", Text: "Practical applications and examples"},
				{ID: "d", Text: "Historical background and context"},
			},
			CorrectAnswer: "a",
		},
		{
			Question: "Which of the following best describes the key principles discussed?",
			Options: []rawMCQOption{
				{ID: "a", Text: "Theoretical models only"},
				{ID: "b", Text: "Practical implementation strategies"},
				{ID: "c", Text: "Historical evolution of concepts"},
				{ID: "d", Text: "Comparative analysis methods"},
			},
			CorrectAnswer: "b",
		},
	}
}
