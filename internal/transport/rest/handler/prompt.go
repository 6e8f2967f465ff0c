package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"codexam/internal/config"
	"codexam/internal/model"
	"codexam/internal/repository"
)

// PromptHandler handles prompt template endpoints
type PromptHandler struct {
	promptRepo repository.PromptRepo
}

// NewPromptHandler creates a new prompt handler.
func NewPromptHandler(promptRepo repository.PromptRepo) *PromptHandler {
	return &PromptHandler{promptRepo: promptRepo}
}

// ListPrompts handles GET /v1/prompts. Stored overrides replace
// defaults with the same ID.
func (h *PromptHandler) ListPrompts(w http.ResponseWriter, r *http.Request) {
	templates := config.DefaultPromptTemplates()

	stored, err := h.promptRepo.List(r.Context())
	if err != nil {
		logrus.WithError(err).Warn("failed to list stored prompt templates, serving defaults")
	}

	overrides := make(map[string]*model.PromptTemplate, len(stored))
	for _, tmpl := range stored {
		overrides[tmpl.ID] = tmpl
	}
	for i := range templates {
		if tmpl, ok := overrides[templates[i].ID]; ok {
			templates[i] = *tmpl
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"templates": templates})
}

// UpdatePrompt handles PUT /v1/prompts/{id}
func (h *PromptHandler) UpdatePrompt(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := config.DefaultPromptTemplate(id); !ok {
		writeError(w, http.StatusNotFound, "Unknown prompt template")
		return
	}

	var tmpl model.PromptTemplate
	if err := json.NewDecoder(r.Body).Decode(&tmpl); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if tmpl.Prompt == "" {
		writeError(w, http.StatusBadRequest, "Prompt text is required")
		return
	}
	tmpl.ID = id

	if err := h.promptRepo.Put(r.Context(), &tmpl); err != nil {
		logrus.WithError(err).Error("failed to store prompt template")
		writeError(w, http.StatusInternalServerError, "Failed to update prompt")
		return
	}

	writeJSON(w, http.StatusOK, tmpl)
}
