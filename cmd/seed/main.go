package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"codexam/internal/config"
	"codexam/internal/model"
	"codexam/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)

	promptRepo := repository.NewPromptRepo(db)
	for _, tmpl := range config.DefaultPromptTemplates() {
		t := tmpl
		if err := promptRepo.Put(ctx, &t); err != nil {
			log.Fatalf("Failed to seed prompt template %s: %v", t.ID, err)
		}
	}
	fmt.Printf("Seeded %d prompt templates\n", len(config.DefaultPromptTemplates()))

	bankRepo := repository.NewBankRepo(db)
	samples := []model.BankQuestion{
		{
			Subject:  "Data Structures",
			Question: "What is the time complexity of inserting at the head of a singly linked list?",
			Type:     model.BankQuestionMCQ,
			Difficulty: model.DifficultyEasy,
			Options: []string{
				"O(1)",
				"O(n)",
				"O(log n)",
				"O(n^2)",
			},
			CorrectAnswer: "O(1)",
			Tags:          []string{"linked-list", "complexity"},
			CreatedAt:     time.Now(),
		},
		{
			Subject:    "Algorithms",
			Question:   "Explain the difference between breadth-first search and depth-first search, and give one scenario where each is preferable.",
			Type:       model.BankQuestionOpen,
			Difficulty: model.DifficultyMedium,
			Tags:       []string{"graphs", "traversal"},
			CreatedAt:  time.Now(),
		},
		{
			Subject:  "Databases",
			Question: "Which normal form requires that every non-key attribute depend on the key, the whole key, and nothing but the key?",
			Type:     model.BankQuestionMCQ,
			Difficulty: model.DifficultyMedium,
			Options: []string{
				"First normal form",
				"Second normal form",
				"Third normal form",
				"Boyce-Codd normal form",
			},
			CorrectAnswer: "Third normal form",
			Tags:          []string{"normalization"},
			CreatedAt:     time.Now(),
		},
	}

	for i := range samples {
		id, err := bankRepo.Create(ctx, &samples[i])
		if err != nil {
			log.Fatalf("Failed to seed bank question: %v", err)
		}
		fmt.Printf("Seeded bank question %s (%s)\n", id, samples[i].Subject)
	}
}
