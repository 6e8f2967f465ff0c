package config

import "codexam/internal/model"

// Prompt template IDs, one per AI task.
const (
	PromptQuestionGeneration = "code-eval-questions"
	PromptAnswerValidation   = "code-eval-validation"
	PromptCodeAnalysis       = "code-review-analysis"
	PromptExamGeneration     = "exam-generation"
)

// DefaultPromptTemplates returns the built-in prompt configuration for every
// AI task. Professors can override individual templates at runtime; anything
// not overridden falls back to these.
func DefaultPromptTemplates() []model.PromptTemplate {
	return []model.PromptTemplate{
		{
			ID:          PromptQuestionGeneration,
			Module:      "Code Evaluation",
			Name:        "Question Generation",
			Description: "Generates 10 questions from submitted code",
			Prompt: `You are an expert code reviewer and educator. Analyze the provided code and generate exactly 10 questions that test the student's understanding of their implementation.

Requirements:
- Generate questions of varying difficulty levels (Easy, Medium, Hard)
- Focus on implementation understanding, not just syntax
- Include questions about best practices, optimization, and potential issues
- Questions should be relevant to the specific code provided
- Return response in JSON format with the following structure:

{
  "questions": [
    {
      "id": 1,
      "question": "Question text here",
      "difficulty": "Easy|Medium|Hard"
    }
  ]
}`,
			Temperature: 0.5,
			MaxTokens:   2000,
		},
		{
			ID:          PromptAnswerValidation,
			Module:      "Code Evaluation",
			Name:        "Answer Validation",
			Description: "Validates student answers with context preservation",
			Prompt: `You are evaluating student answers to code-related questions. Use the original code context and the generated questions to provide accurate assessment.

Evaluation Criteria:
- Technical accuracy of the answer
- Understanding demonstrated through explanation
- Relevance to the original code
- Completeness of response

Return response in JSON format:
{
  "score": 85,
  "feedback": "Overall assessment...",
  "suggestions": ["Improvement suggestion 1", "Suggestion 2"]
}

Score should be out of 100. Provide constructive feedback and specific improvement suggestions.`,
			Temperature: 0.5,
			MaxTokens:   1500,
		},
		{
			ID:          PromptCodeAnalysis,
			Module:      "Code Review",
			Name:        "Code Analysis",
			Description: "Analyzes code for improvements and generates comprehension questions",
			Prompt: `You are a senior code reviewer analyzing code for quality, best practices, and maintainability.

Analysis Tasks:
1. Identify areas for improvement
2. Categorize issues by priority (High, Medium, Low)
3. Generate questions that help external reviewers understand the code
4. Check against provided specifications if available

Return response in JSON format:
{
  "overallScore": 75,
  "summary": "Overall assessment...",
  "improvements": [
    {
      "category": "Performance",
      "issue": "Description of issue",
      "suggestion": "Specific improvement suggestion",
      "priority": "High|Medium|Low"
    }
  ],
  "comprehensionQuestions": [
    {
      "question": "What does this function accomplish?",
      "purpose": "Helps understand main functionality"
    }
  ]
}`,
			Temperature: 0.5,
			MaxTokens:   2500,
		},
		{
			ID:          PromptExamGeneration,
			Module:      "Exam AI",
			Name:        "MCQ Generation",
			Description: "Generates MCQ questions from LaTeX subject material",
			Prompt: `You are an educational content expert creating multiple-choice questions from academic material.

Requirements:
- Generate relevant MCQ questions based on the provided subject material
- Each question should have 4 options with only one correct answer
- Questions should test different levels of understanding (recall, comprehension, application)
- Ensure questions are clear and unambiguous
- Cover key concepts from the material

Return response in JSON format:
{
  "questions": [
    {
      "id": 1,
      "question": "Question text",
      "options": [
        {"id": "a", "text": "Option A"},
        {"id": "b", "text": "Option B"},
        {"id": "c", "text": "Option C"},
        {"id": "d", "text": "Option D"}
      ],
      "correctAnswer": "a"
    }
  ],
  "timeLimit": 1800
}

Generate 15-20 questions per exam. Questions and answer options should be randomized for anti-cheating.`,
			Temperature: 0.5,
			MaxTokens:   3000,
		},
	}
}

// DefaultPromptTemplate returns the built-in template for one task ID, or
// false when the ID is unknown.
func DefaultPromptTemplate(id string) (model.PromptTemplate, bool) {
	for _, tmpl := range DefaultPromptTemplates() {
		if tmpl.ID == id {
			return tmpl, true
		}
	}
	return model.PromptTemplate{}, false
}
