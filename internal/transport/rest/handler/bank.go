package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"codexam/internal/model"
	"codexam/internal/repository"
)

// BankHandler handles question bank endpoints
type BankHandler struct {
	bankRepo repository.BankRepo
}

// NewBankHandler creates a new bank handler.
func NewBankHandler(bankRepo repository.BankRepo) *BankHandler {
	return &BankHandler{bankRepo: bankRepo}
}

// CreateQuestion handles POST /v1/bank/questions
func (h *BankHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var question model.BankQuestion
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if question.Question == "" || question.Subject == "" {
		writeError(w, http.StatusBadRequest, "Subject and question are required")
		return
	}
	if question.Type == model.BankQuestionMCQ && len(question.Options) == 0 {
		writeError(w, http.StatusBadRequest, "MCQ questions require options")
		return
	}

	id, err := h.bankRepo.Create(r.Context(), &question)
	if err != nil {
		logrus.WithError(err).Error("failed to create bank question")
		writeError(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetQuestion handles GET /v1/bank/questions/{id}
func (h *BankHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	question, err := h.bankRepo.GetByID(r.Context(), id)
	if err != nil {
		logrus.WithError(err).Error("failed to get bank question")
		writeError(w, http.StatusInternalServerError, "Failed to get question")
		return
	}
	if question == nil {
		writeError(w, http.StatusNotFound, "Question not found")
		return
	}

	writeJSON(w, http.StatusOK, question)
}

// ListQuestions handles GET /v1/bank/questions
func (h *BankHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject")

	questions, err := h.bankRepo.List(r.Context(), subject)
	if err != nil {
		logrus.WithError(err).Error("failed to list bank questions")
		writeError(w, http.StatusInternalServerError, "Failed to list questions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// UpdateQuestion handles PUT /v1/bank/questions/{id}
func (h *BankHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := h.bankRepo.GetByID(r.Context(), id)
	if err != nil {
		logrus.WithError(err).Error("failed to get bank question")
		writeError(w, http.StatusInternalServerError, "Failed to update question")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Question not found")
		return
	}

	var question model.BankQuestion
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	question.ID = id
	question.CreatedAt = existing.CreatedAt

	if err := h.bankRepo.Update(r.Context(), &question); err != nil {
		logrus.WithError(err).Error("failed to update bank question")
		writeError(w, http.StatusInternalServerError, "Failed to update question")
		return
	}

	writeJSON(w, http.StatusOK, question)
}

// DeleteQuestion handles DELETE /v1/bank/questions/{id}
func (h *BankHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.bankRepo.Delete(r.Context(), id); err != nil {
		logrus.WithError(err).Error("failed to delete bank question")
		writeError(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ReportQuestion handles POST /v1/bank/questions/{id}/report
func (h *BankHandler) ReportQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.bankRepo.IncrementReports(r.Context(), id); err != nil {
		logrus.WithError(err).Error("failed to report bank question")
		writeError(w, http.StatusInternalServerError, "Failed to report question")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reported"})
}
