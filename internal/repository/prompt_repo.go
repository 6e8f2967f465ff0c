package repository

import (
	"context"

	"codexam/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PromptRepo handles MongoDB operations for prompt template overrides.
// Template IDs are the fixed task IDs, so writes are upserts.
type PromptRepo interface {
	Get(ctx context.Context, id string) (*model.PromptTemplate, error)
	List(ctx context.Context) ([]*model.PromptTemplate, error)
	Put(ctx context.Context, tmpl *model.PromptTemplate) error
}

type promptRepo struct {
	collection *mongo.Collection
}

// NewPromptRepo creates a new prompt template repository.
func NewPromptRepo(db *mongo.Database) PromptRepo {
	return &promptRepo{
		collection: db.Collection("prompt_templates"),
	}
}

func (r *promptRepo) Get(ctx context.Context, id string) (*model.PromptTemplate, error) {
	var tmpl model.PromptTemplate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tmpl)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (r *promptRepo) List(ctx context.Context) ([]*model.PromptTemplate, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []*model.PromptTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *promptRepo) Put(ctx context.Context, tmpl *model.PromptTemplate) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": tmpl.ID}, tmpl, options.Replace().SetUpsert(true))
	return err
}
