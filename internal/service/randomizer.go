package service

import (
	"math/rand"
	"sync"
	"time"

	"codexam/internal/model"
)

// optionLabel returns the dense lowercase letter ID for a position.
func optionLabel(i int) string {
	return string(rune('a' + i))
}

// Randomizer shuffles exam presentation per generation call so no two exam
// instances share question or option order. The answer key survives every
// permutation: the correct option is tracked through the swaps by identity,
// not re-matched by text, so duplicate option texts cannot corrupt it.
type Randomizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomizer creates a randomizer seeded from the given source. Pass a
// fixed-seed source in tests for deterministic permutations.
func NewRandomizer(src rand.Source) *Randomizer {
	return &Randomizer{rng: rand.New(src)}
}

// NewDefaultRandomizer creates a time-seeded randomizer for production use.
func NewDefaultRandomizer() *Randomizer {
	return NewRandomizer(rand.NewSource(time.Now().UnixNano()))
}

// Randomize builds a student-facing exam from normalized questions: every
// question's options are shuffled and relabeled, then the question order is
// shuffled and question IDs re-assigned 1-based. The input is not mutated;
// results are never cached so identical inputs yield independent orderings.
func (r *Randomizer) Randomize(questions []model.MCQQuestion, timeLimit int) *model.Exam {
	shuffled := make([]model.MCQQuestion, len(questions))
	for i, q := range questions {
		options := make([]model.MCQOption, len(q.Options))
		copy(options, q.Options)
		options, correct := r.shuffleOptions(options, q.CorrectAnswer)
		q.Options = options
		q.CorrectAnswer = correct
		shuffled[i] = q
	}

	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	for i := range shuffled {
		shuffled[i].ID = i + 1
	}

	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}
	return &model.Exam{
		Questions: shuffled,
		TimeLimit: timeLimit,
	}
}

// intn guards the shared rng; exam generation calls can run concurrently.
func (r *Randomizer) intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// shuffleOptions applies an unbiased Fisher-Yates shuffle (swap index i with
// a uniform pick from [0,i], for i from last down to 1), then relabels IDs
// densely from 'a' by post-shuffle position and re-derives the correct
// answer from the tracked position of the previously correct option. An
// unresolvable answer key defaults to the first option.
func (r *Randomizer) shuffleOptions(options []model.MCQOption, correctID string) ([]model.MCQOption, string) {
	correct := -1
	for i, opt := range options {
		if opt.ID == correctID {
			correct = i
			break
		}
	}

	for i := len(options) - 1; i > 0; i-- {
		j := r.intn(i + 1)
		options[i], options[j] = options[j], options[i]
		switch correct {
		case i:
			correct = j
		case j:
			correct = i
		}
	}

	for i := range options {
		options[i].ID = optionLabel(i)
	}

	if len(options) == 0 {
		return options, ""
	}
	if correct < 0 {
		correct = 0
	}
	return options, optionLabel(correct)
}
