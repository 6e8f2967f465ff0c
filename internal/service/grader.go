package service

import (
	"fmt"
	"math"

	"codexam/internal/model"
)

// notAnsweredMarker is reported in per-question results for blank answers.
const notAnsweredMarker = "Not answered"

// Grade scores an answered exam deterministically: no randomness, no clock,
// no mutation of the input, so grading the same submission twice yields
// identical reports. Callers must reject empty question lists before grading.
func Grade(questions []model.MCQQuestion) model.ScoreReport {
	total := len(questions)
	answered := 0
	correct := 0

	results := make([]model.QuestionResult, total)
	for i, q := range questions {
		if q.UserAnswer != "" {
			answered++
		}
		isCorrect := q.UserAnswer != "" && q.UserAnswer == q.CorrectAnswer
		if isCorrect {
			correct++
		}

		userAnswer := q.UserAnswer
		if userAnswer == "" {
			userAnswer = notAnsweredMarker
		}
		results[i] = model.QuestionResult{
			Question:      q.Question,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     isCorrect,
		}
	}

	score := int(math.Round(float64(correct) / float64(total) * 100))

	feedback := scoreFeedback(score)
	if answered < total {
		feedback += fmt.Sprintf(" You answered %d out of %d questions. Make sure to complete all questions in future attempts.", answered, total)
	}

	return model.ScoreReport{
		Score:           score,
		TotalQuestions:  total,
		CorrectAnswers:  correct,
		Feedback:        feedback,
		QuestionResults: results,
	}
}

// scoreFeedback maps a score to one of the five fixed feedback tiers.
func scoreFeedback(score int) string {
	switch {
	case score >= 90:
		return "Excellent performance! You have demonstrated a comprehensive understanding of the material."
	case score >= 80:
		return "Good work! You show a solid grasp of the concepts with room for minor improvements."
	case score >= 70:
		return "Satisfactory performance. You understand the basic concepts but should review some areas for better mastery."
	case score >= 60:
		return "Fair performance. You have a basic understanding but need to study more to improve your grasp of the material."
	default:
		return "Additional study is needed. Review the material thoroughly and consider seeking additional help to improve understanding."
	}
}
