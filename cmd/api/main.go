package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dresiko/media-match-homework/db"
	"github.com/dresiko/media-match-homework/internal/contacts"
	"github.com/dresiko/media-match-homework/internal/handler"
	"github.com/dresiko/media-match-homework/internal/match"
	"github.com/dresiko/media-match-homework/internal/repository"
	"github.com/dresiko/media-match-homework/internal/vectorstore"
	"github.com/dresiko/media-match-homework/pkg/llm"
)

func main() {

	godotenv.Load()

	openAIClient := llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))

	var justifier llm.JustificationClient = openAIClient
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		justifier = llm.NewAnthropicClient(key)
	}

	store := vectorstore.NewClient(vectorstore.Config{
		URL:        envOr("QDRANT_URL", "http://localhost:6333"),
		APIKey:     os.Getenv("QDRANT_API_KEY"),
		Collection: envOr("QDRANT_COLLECTION", "articles"),
	})

	var directory handler.ContactDirectory
	if os.Getenv("DATABASE_URL") != "" {
		if err := db.Connect(); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()
		directory = repository.NewContactRepository(db.DB)
	} else {
		slog.Warn("DATABASE_URL not set, using built-in contact directory")
		directory = contacts.NewStaticDirectory()
	}

	matcher := match.NewMatcher(openAIClient, store, directory)
	enricher := match.NewEnricher(justifier)

	matchHandler := handler.NewMatchHandler(matcher, enricher, store)
	contactHandler := handler.NewContactHandler(directory)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/api/reporters/match", matchHandler.MatchReporters)
	r.POST("/api/reporters/justify", matchHandler.JustifyReporters)
	r.GET("/api/reporters/contact", contactHandler.GetContact)
	r.GET("/api/reporters/contact/:name", contactHandler.GetContact)
	r.GET("/api/reporters/search", contactHandler.SearchContacts)
	r.GET("/api/reporters/all", contactHandler.GetAllContacts)
	r.GET("/health", matchHandler.GetHealth)

	port := envOr("PORT", "8080")

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
