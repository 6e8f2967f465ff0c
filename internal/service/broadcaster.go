package service

import "codexam/internal/model"

// Broadcaster pushes live submission events to monitor connections (avoids
// an import cycle with the ws transport).
type Broadcaster interface {
	SubmissionRecorded(rec model.SubmissionRecord)
}
