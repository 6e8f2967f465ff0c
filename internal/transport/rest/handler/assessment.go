package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"codexam/internal/model"
	"codexam/internal/service"
)

// AssessmentHandler handles code assessment endpoints
type AssessmentHandler struct {
	questionSvc   *service.QuestionService
	evaluationSvc *service.EvaluationService
	analysisSvc   *service.AnalysisService
}

// NewAssessmentHandler creates a new assessment handler.
func NewAssessmentHandler(questionSvc *service.QuestionService, evaluationSvc *service.EvaluationService, analysisSvc *service.AnalysisService) *AssessmentHandler {
	return &AssessmentHandler{
		questionSvc:   questionSvc,
		evaluationSvc: evaluationSvc,
		analysisSvc:   analysisSvc,
	}
}

// GenerateQuestions handles POST /v1/generate-questions
func (h *AssessmentHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "Code is required")
		return
	}

	questions, err := h.questionSvc.GenerateQuestions(r.Context(), req.Code)
	if err != nil {
		logrus.WithError(err).Error("failed to generate questions")
		writeError(w, http.StatusInternalServerError, "Failed to generate questions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// EvaluateAnswers handles POST /v1/evaluate-answers
func (h *AssessmentHandler) EvaluateAnswers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code      string           `json:"code"`
		Questions []model.Question `json:"questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Code == "" || len(req.Questions) == 0 {
		writeError(w, http.StatusBadRequest, "Code and questions are required")
		return
	}

	result, err := h.evaluationSvc.EvaluateAnswers(r.Context(), req.Code, req.Questions)
	if err != nil {
		logrus.WithError(err).Error("failed to evaluate answers")
		writeError(w, http.StatusInternalServerError, "Failed to evaluate answers")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AnalyzeCode handles POST /v1/analyze-code
func (h *AssessmentHandler) AnalyzeCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code           string `json:"code"`
		Specifications string `json:"specifications"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "Code is required")
		return
	}

	analysis, err := h.analysisSvc.AnalyzeCode(r.Context(), req.Code, req.Specifications)
	if err != nil {
		logrus.WithError(err).Error("failed to analyze code")
		writeError(w, http.StatusInternalServerError, "Failed to analyze code")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}
