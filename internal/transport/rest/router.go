package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"codexam/internal/cache"
	"codexam/internal/repository"
	"codexam/internal/service"
	"codexam/internal/transport/rest/handler"
	"codexam/internal/transport/rest/middleware"
	"codexam/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	QuestionService   *service.QuestionService
	EvaluationService *service.EvaluationService
	AnalysisService   *service.AnalysisService
	ExamService       *service.ExamService
	BankRepo          repository.BankRepo
	PromptRepo        repository.PromptRepo
	Results           cache.ResultCache
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.QuestionService, c.EvaluationService, c.AnalysisService)
	examHandler := handler.NewExamHandler(c.ExamService)
	bankHandler := handler.NewBankHandler(c.BankRepo)
	promptHandler := handler.NewPromptHandler(c.PromptRepo)
	resultHandler := handler.NewResultHandler(c.Results)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/generate-questions", assessmentHandler.GenerateQuestions).Methods("POST", "OPTIONS")
	v1.HandleFunc("/evaluate-answers", assessmentHandler.EvaluateAnswers).Methods("POST", "OPTIONS")
	v1.HandleFunc("/analyze-code", assessmentHandler.AnalyzeCode).Methods("POST", "OPTIONS")
	v1.HandleFunc("/generate-exam", examHandler.GenerateExam).Methods("POST", "OPTIONS")
	v1.HandleFunc("/evaluate-exam", examHandler.EvaluateExam).Methods("POST", "OPTIONS")
	v1.HandleFunc("/bank/questions/{id}/report", bankHandler.ReportQuestion).Methods("POST", "OPTIONS")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/monitor", wsHandler.MonitorWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Professor routes (require professor auth)
	professorRoutes := v1.NewRoute().Subrouter()
	professorRoutes.Use(authMW.RequireProfessor)

	professorRoutes.HandleFunc("/bank/questions", bankHandler.CreateQuestion).Methods("POST", "OPTIONS")
	professorRoutes.HandleFunc("/bank/questions", bankHandler.ListQuestions).Methods("GET", "OPTIONS")
	professorRoutes.HandleFunc("/bank/questions/{id}", bankHandler.GetQuestion).Methods("GET", "OPTIONS")
	professorRoutes.HandleFunc("/bank/questions/{id}", bankHandler.UpdateQuestion).Methods("PUT", "OPTIONS")
	professorRoutes.HandleFunc("/bank/questions/{id}", bankHandler.DeleteQuestion).Methods("DELETE", "OPTIONS")
	professorRoutes.HandleFunc("/prompts", promptHandler.ListPrompts).Methods("GET", "OPTIONS")
	professorRoutes.HandleFunc("/prompts/{id}", promptHandler.UpdatePrompt).Methods("PUT", "OPTIONS")
	professorRoutes.HandleFunc("/results/recent", resultHandler.RecentResults).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
