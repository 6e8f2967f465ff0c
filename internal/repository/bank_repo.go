package repository

import (
	"context"
	"time"

	"codexam/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BankRepo handles MongoDB operations for the professor question bank.
type BankRepo interface {
	Create(ctx context.Context, question *model.BankQuestion) (string, error)
	GetByID(ctx context.Context, id string) (*model.BankQuestion, error)
	List(ctx context.Context, subject string) ([]*model.BankQuestion, error)
	Update(ctx context.Context, question *model.BankQuestion) error
	Delete(ctx context.Context, id string) error
	IncrementUsage(ctx context.Context, id string) error
	IncrementReports(ctx context.Context, id string) error
}

type bankRepo struct {
	collection *mongo.Collection
}

// NewBankRepo creates a new question bank repository.
func NewBankRepo(db *mongo.Database) BankRepo {
	return &bankRepo{
		collection: db.Collection("question_bank"),
	}
}

func (r *bankRepo) Create(ctx context.Context, question *model.BankQuestion) (string, error) {
	if question.ID == "" {
		question.ID = primitive.NewObjectID().Hex()
	}
	question.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, question); err != nil {
		return "", err
	}
	return question.ID, nil
}

func (r *bankRepo) GetByID(ctx context.Context, id string) (*model.BankQuestion, error) {
	var question model.BankQuestion
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *bankRepo) List(ctx context.Context, subject string) ([]*model.BankQuestion, error) {
	filter := bson.M{}
	if subject != "" {
		filter["subject"] = subject
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.BankQuestion
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *bankRepo) Update(ctx context.Context, question *model.BankQuestion) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": question.ID}, question)
	return err
}

func (r *bankRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *bankRepo) IncrementUsage(ctx context.Context, id string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"usageCount": 1}})
	return err
}

func (r *bankRepo) IncrementReports(ctx context.Context, id string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"reportCount": 1}})
	return err
}
