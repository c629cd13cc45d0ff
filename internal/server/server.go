package server

import (
	"log"
	"net/http"
	"os"
	"time"

	"study-assistant/internal/handlers"
	"study-assistant/internal/metrics"
	"study-assistant/internal/routes"
	"study-assistant/internal/services"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewServer wires the services and handlers and returns the HTTP server
func NewServer() *http.Server {
	logger := log.New(os.Stdout, "[SERVER] ", log.LstdFlags)

	documentServiceURL := getEnv("DOCUMENT_SERVICE_URL", "http://localhost:8081")
	genaiServiceURL := getEnv("GENAI_SERVICE_URL", "http://localhost:8080")
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	geminiModel := getEnv("GEMINI_MODEL", services.DefaultGeminiModel)
	addr := ":" + getEnv("SERVER_PORT", "8080")

	if geminiAPIKey == "" {
		logger.Println("GEMINI_API_KEY not set - generation endpoints will report degraded health")
	}

	collector := metrics.NewInMemoryCollector()

	documentClient := services.NewDocumentClientWithTimeout(
		documentServiceURL,
		60*time.Second,
		log.New(os.Stdout, "[DOCS] ", log.LstdFlags),
	)
	genaiClient := services.NewGenaiClient(genaiServiceURL)
	gemini := services.NewGeminiService(geminiAPIKey, geminiModel, log.New(os.Stdout, "[GENAI] ", log.LstdFlags))

	chatService := services.NewChatService(documentClient, genaiClient, collector, geminiModel, log.New(os.Stdout, "[CHAT] ", log.LstdFlags))
	summaryService := services.NewSummaryService(documentClient, genaiClient, collector, geminiModel, log.New(os.Stdout, "[SUMMARY] ", log.LstdFlags))
	quizService := services.NewQuizService(documentClient, genaiClient, collector, geminiModel, log.New(os.Stdout, "[QUIZ] ", log.LstdFlags))

	h := &routes.Handlers{
		Health:  handlers.HealthCheckHandler,
		Home:    handlers.HomeHandler,
		Chat:    handlers.NewChatHandler(chatService, documentClient, logger),
		Summary: handlers.NewSummaryHandler(summaryService, logger),
		Quiz:    handlers.NewQuizHandler(quizService, logger),
		Genai:   handlers.NewGenaiHandler(gemini, logger),
		Metrics: handlers.NewMetricsHandler(collector),
	}

	router := mux.NewRouter()
	routes.RegisterRoutes(router, h)

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	logger.Printf("Document service: %s, GenAI gateway: %s, model: %s", documentServiceURL, genaiServiceURL, geminiModel)

	return &http.Server{
		Addr:    addr,
		Handler: corsMiddleware(router),
	}
}

// getEnv reads an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
