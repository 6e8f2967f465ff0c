package model

import "time"

// BankQuestionType distinguishes stored multiple-choice and open questions.
type BankQuestionType string

const (
	BankQuestionMCQ  BankQuestionType = "MCQ"
	BankQuestionOpen BankQuestionType = "Open"
)

// BankQuestion is a professor-curated question kept in the question bank.
type BankQuestion struct {
	ID            string           `json:"id" bson:"_id,omitempty"`
	Subject       string           `json:"subject" bson:"subject"`
	Question      string           `json:"question" bson:"question"`
	Type          BankQuestionType `json:"type" bson:"type"`
	Difficulty    Difficulty       `json:"difficulty" bson:"difficulty"`
	Options       []string         `json:"options,omitempty" bson:"options,omitempty"`
	CorrectAnswer string           `json:"correctAnswer,omitempty" bson:"correctAnswer,omitempty"`
	Tags          []string         `json:"tags" bson:"tags"`
	CreatedAt     time.Time        `json:"createdAt" bson:"createdAt"`
	UsageCount    int              `json:"usageCount" bson:"usageCount"`
	ReportCount   int              `json:"reportCount" bson:"reportCount"`
}
