package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"codexam/internal/model"
	"codexam/internal/service"
)

// ExamHandler handles MCQ exam endpoints
type ExamHandler struct {
	examSvc *service.ExamService
}

// NewExamHandler creates a new exam handler.
func NewExamHandler(examSvc *service.ExamService) *ExamHandler {
	return &ExamHandler{examSvc: examSvc}
}

// GenerateExam handles POST /v1/generate-exam
func (h *ExamHandler) GenerateExam(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Subject string `json:"subject"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Subject == "" {
		writeError(w, http.StatusBadRequest, "Subject is required")
		return
	}

	exam, err := h.examSvc.GenerateExam(r.Context(), req.Subject)
	if err != nil {
		logrus.WithError(err).Error("failed to generate exam")
		writeError(w, http.StatusInternalServerError, "Failed to generate exam")
		return
	}

	writeJSON(w, http.StatusOK, exam)
}

// EvaluateExam handles POST /v1/evaluate-exam
func (h *ExamHandler) EvaluateExam(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Questions []model.MCQQuestion `json:"questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Questions) == 0 {
		writeError(w, http.StatusBadRequest, "Questions are required")
		return
	}

	report := h.examSvc.EvaluateExam(r.Context(), req.Questions)
	writeJSON(w, http.StatusOK, report)
}
