package model

// MCQOption is a single answer choice. IDs are lowercase letters assigned
// densely from 'a' in presentation order.
type MCQOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MCQQuestion is a multiple-choice question inside an exam. CorrectAnswer
// always references the ID of exactly one entry in Options, including after
// the exam has been randomized.
type MCQQuestion struct {
	ID            int         `json:"id"`
	Question      string      `json:"question"`
	Options       []MCQOption `json:"options"`
	CorrectAnswer string      `json:"correctAnswer"`
	UserAnswer    string      `json:"userAnswer,omitempty"`
	Reported      bool        `json:"reported"`
}

// Exam is a student-facing exam instance. Question order is significant and
// unique per generation call.
type Exam struct {
	Questions []MCQQuestion `json:"questions"`
	TimeLimit int           `json:"timeLimit"`
}

// QuestionResult is the per-question detail of a graded exam.
type QuestionResult struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// ScoreReport is the outcome of deterministic exam grading.
type ScoreReport struct {
	Score           int              `json:"score"`
	TotalQuestions  int              `json:"totalQuestions"`
	CorrectAnswers  int              `json:"correctAnswers"`
	Feedback        string           `json:"feedback"`
	QuestionResults []QuestionResult `json:"questionResults"`
}
