package model

import "time"

// SubmissionKind tags which pipeline produced a submission record.
type SubmissionKind string

const (
	SubmissionExam       SubmissionKind = "exam"
	SubmissionEvaluation SubmissionKind = "evaluation"
	SubmissionAnalysis   SubmissionKind = "analysis"
)

// SubmissionRecord is a dashboard-facing summary of one graded or evaluated
// submission. Records are kept in a short-lived feed, not a durable store.
type SubmissionRecord struct {
	ID        string         `json:"id"`
	Kind      SubmissionKind `json:"kind"`
	Score     int            `json:"score"`
	Summary   string         `json:"summary"`
	CreatedAt time.Time      `json:"createdAt"`
}
