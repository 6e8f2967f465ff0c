package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codexam/internal/model"
)

func newTestExamService(client CompletionClient, results *memoryResults) *ExamService {
	svc := NewExamService(client, NewPromptResolver(nil), NewRandomizer(rand.NewSource(1)), nil)
	if results != nil {
		svc.results = results
	}
	return svc
}

func TestGenerateExamParsesResponse(t *testing.T) {
	client := &stubCompletion{content: `{
		"questions": [
			{
				"question": "What is the capital of Italy?",
				"options": [
					{"id": "a", "text": "Rome"},
					{"id": "b", "text": "Paris"},
					{"id": "c", "text": "Berlin"},
					{"id": "d", "text": "Madrid"}
				],
				"correctAnswer": "a"
			}
		],
		"timeLimit": 900
	}`}
	svc := newTestExamService(client, nil)

	exam, err := svc.GenerateExam(context.Background(), "geography")

	require.NoError(t, err)
	assert.Equal(t, 900, exam.TimeLimit)
	require.Len(t, exam.Questions, 1)

	q := exam.Questions[0]
	assert.Equal(t, 1, q.ID)
	found := ""
	for _, opt := range q.Options {
		if opt.ID == q.CorrectAnswer {
			found = opt.Text
		}
	}
	assert.Equal(t, "Rome", found)
}

func TestGenerateExamFallsBackOnUnparsableContent(t *testing.T) {
	client := &stubCompletion{content: "Sorry, I cannot produce JSON today."}
	svc := newTestExamService(client, nil)

	exam, err := svc.GenerateExam(context.Background(), "anything")

	require.NoError(t, err)
	assert.Equal(t, DefaultTimeLimit, exam.TimeLimit)
	require.Len(t, exam.Questions, 2)

	// The sample answer key survives randomization.
	wantByQuestion := map[string]string{
		"What is the main topic covered in the provided material?":           "Basic concepts and fundamentals",
		"Which of the following best describes the key principles discussed?": "Practical implementation strategies",
	}
	for _, q := range exam.Questions {
		found := ""
		for _, opt := range q.Options {
			if opt.ID == q.CorrectAnswer {
				found = opt.Text
			}
		}
		assert.Equal(t, wantByQuestion[q.Question], found)
	}
}

// memoryBank is an in-memory BankSource.
type memoryBank struct {
	questions []*model.BankQuestion
	used      []string
}

func (m *memoryBank) List(_ context.Context, subject string) ([]*model.BankQuestion, error) {
	var out []*model.BankQuestion
	for _, q := range m.questions {
		if q.Subject == subject {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memoryBank) IncrementUsage(_ context.Context, id string) error {
	m.used = append(m.used, id)
	return nil
}

func TestGenerateExamGroundsOnQuestionBank(t *testing.T) {
	client := &stubCompletion{content: "not json"}
	bank := &memoryBank{questions: []*model.BankQuestion{
		{ID: "q1", Subject: "graphs", Type: model.BankQuestionMCQ, Question: "What does BFS visit first?"},
		{ID: "q2", Subject: "graphs", Type: model.BankQuestionOpen, Question: "Explain DFS."},
		{ID: "q3", Subject: "sorting", Type: model.BankQuestionMCQ, Question: "Best case of quicksort?"},
	}}
	svc := newTestExamService(client, nil)
	svc.SetQuestionBank(bank)

	_, err := svc.GenerateExam(context.Background(), "graphs")

	require.NoError(t, err)
	assert.Contains(t, client.lastReq.User, "What does BFS visit first?")
	assert.NotContains(t, client.lastReq.User, "Explain DFS.", "open questions are not MCQ references")
	assert.NotContains(t, client.lastReq.User, "quicksort", "other subjects are excluded")
	assert.Equal(t, []string{"q1"}, bank.used)
}

func TestGenerateExamPropagatesTransportError(t *testing.T) {
	client := &stubCompletion{err: ErrUpstream}
	svc := newTestExamService(client, nil)

	_, err := svc.GenerateExam(context.Background(), "subject")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestEvaluateExamRecordsAndBroadcasts(t *testing.T) {
	results := &memoryResults{}
	broadcaster := &memoryBroadcaster{}
	svc := newTestExamService(&stubCompletion{}, results)
	svc.SetBroadcaster(broadcaster)

	report := svc.EvaluateExam(context.Background(), answeredQuestions("a", "b"))

	assert.Equal(t, 50, report.Score)
	require.Len(t, results.records, 1)
	assert.Equal(t, model.SubmissionExam, results.records[0].Kind)
	assert.Equal(t, "1 of 2 correct", results.records[0].Summary)
	require.Len(t, broadcaster.records, 1)
}

func TestNormalizeMCQ(t *testing.T) {
	t.Run("truncates to twenty", func(t *testing.T) {
		items := make([]rawMCQ, 25)
		for i := range items {
			items[i] = rawMCQ{Question: "q", Options: []rawMCQOption{{ID: "a", Text: "x"}}, CorrectAnswer: "a"}
		}
		assert.Len(t, normalizeMCQ(items), 20)
	})

	t.Run("missing options get placeholders", func(t *testing.T) {
		questions := normalizeMCQ([]rawMCQ{{Question: "q"}})
		require.Len(t, questions[0].Options, 4)
		assert.Equal(t, "a", questions[0].Options[0].ID)
		assert.Equal(t, "Option A", questions[0].Options[0].Text)
		assert.Equal(t, "d", questions[0].Options[3].ID)
		assert.Equal(t, "Option D", questions[0].Options[3].Text)
		assert.Equal(t, "a", questions[0].CorrectAnswer)
	})

	t.Run("options relabeled densely", func(t *testing.T) {
		questions := normalizeMCQ([]rawMCQ{{
			Question: "q",
			Options: []rawMCQOption{
				{ID: "x", Text: "one"},
				{ID: "y", Text: "two"},
				{ID: "z", Text: "three"},
			},
			CorrectAnswer: "y",
		}})
		q := questions[0]
		assert.Equal(t, []model.MCQOption{
			{ID: "a", Text: "one"},
			{ID: "b", Text: "two"},
			{ID: "c", Text: "three"},
		}, q.Options)
		assert.Equal(t, "b", q.CorrectAnswer)
	})

	t.Run("unresolvable correct answer defaults to a", func(t *testing.T) {
		questions := normalizeMCQ([]rawMCQ{{
			Question:      "q",
			Options:       []rawMCQOption{{ID: "a", Text: "one"}, {ID: "b", Text: "two"}},
			CorrectAnswer: "nope",
		}})
		assert.Equal(t, "a", questions[0].CorrectAnswer)
	})

	t.Run("blank question text gets placeholder", func(t *testing.T) {
		questions := normalizeMCQ([]rawMCQ{{}, {Question: "real"}})
		assert.Equal(t, "Question 1", questions[0].Question)
		assert.Equal(t, "real", questions[1].Question)
	})

	t.Run("blank option text gets positional placeholder", func(t *testing.T) {
		questions := normalizeMCQ([]rawMCQ{{
			Question:      "q",
			Options:       []rawMCQOption{{ID: "a"}, {ID: "b", Text: "two"}},
			CorrectAnswer: "b",
		}})
		assert.Equal(t, "Option A", questions[0].Options[0].Text)
		assert.Equal(t, "b", questions[0].CorrectAnswer)
	})

	t.Run("question ids are dense and one-based", func(t *testing.T) {
		items := []rawMCQ{
			{Question: "first", Options: []rawMCQOption{{ID: "a", Text: "x"}}, CorrectAnswer: "a"},
			{Question: "second", Options: []rawMCQOption{{ID: "a", Text: "x"}}, CorrectAnswer: "a"},
		}
		questions := normalizeMCQ(items)
		assert.Equal(t, 1, questions[0].ID)
		assert.Equal(t, 2, questions[1].ID)
	})
}
