package service

import (
	"context"

	"codexam/internal/config"
	"codexam/internal/model"

	log "github.com/sirupsen/logrus"
)

// PromptStore reads professor-edited prompt templates. A nil result without
// an error means no override exists for the ID.
type PromptStore interface {
	Get(ctx context.Context, id string) (*model.PromptTemplate, error)
}

// PromptResolver resolves the prompt template for an AI task, preferring a
// stored override and falling back to the built-in defaults. The store is
// optional; without one the resolver always serves defaults.
type PromptResolver struct {
	store PromptStore
}

// NewPromptResolver creates a resolver backed by an optional store.
func NewPromptResolver(store PromptStore) *PromptResolver {
	return &PromptResolver{store: store}
}

// Template returns the effective template for a task ID. Store failures are
// logged and degrade to the built-in template rather than failing the request.
func (r *PromptResolver) Template(ctx context.Context, id string) model.PromptTemplate {
	fallback, _ := config.DefaultPromptTemplate(id)

	if r.store == nil {
		return fallback
	}

	stored, err := r.store.Get(ctx, id)
	if err != nil {
		log.WithError(err).WithField("prompt", id).Warn("prompt store unavailable, using built-in template")
		return fallback
	}
	if stored == nil {
		return fallback
	}
	return *stored
}
