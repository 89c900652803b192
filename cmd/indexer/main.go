package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/dresiko/media-match-homework/db"
	"github.com/dresiko/media-match-homework/internal/model"
	"github.com/dresiko/media-match-homework/internal/vectorstore"
	"github.com/dresiko/media-match-homework/pkg/llm"
	"github.com/dresiko/media-match-homework/pkg/news"
)

const (
	batchSize  = 10
	popTimeout = 2 * time.Second
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx := context.Background()

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	openAIClient := llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))

	store := vectorstore.NewClient(vectorstore.Config{
		URL:        envOr("QDRANT_URL", "http://localhost:6333"),
		APIKey:     os.Getenv("QDRANT_API_KEY"),
		Collection: envOr("QDRANT_COLLECTION", "articles"),
	})

	if err := store.EnsureCollection(ctx, openAIClient.Dimensions()); err != nil {
		log.Fatalf("error ensuring collection: %v", err)
	}

	if pending, err := db.QueueLength(db.IndexQueueKey); err == nil {
		slog.Info("starting indexing run", "pending", pending)
	}

	var indexed, failed int

	for {
		batch, done := popBatch()
		if len(batch) > 0 {
			ok, err := indexBatch(ctx, openAIClient, store, batch)
			if err != nil {
				slog.Error("error indexing batch", "error", err, "batch_size", len(batch))
				failed += len(batch)
				deadLetter(batch)
			} else {
				indexed += ok
				failed += len(batch) - ok
			}
		}

		if done {
			break
		}

		time.Sleep(100 * time.Millisecond)
	}

	slog.Info("indexing complete", "indexed", indexed, "failed", failed)
}

// popBatch drains up to batchSize queued articles. done is true once the
// queue stays empty for popTimeout.
func popBatch() (articles []news.Article, done bool) {
	for len(articles) < batchSize {
		raw, err := db.PopFromQueue(db.IndexQueueKey, popTimeout)
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				slog.Error("error popping from Redis queue", "error", err)
			}
			return articles, true
		}

		var a news.Article
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			slog.Error("invalid article in queue", "error", err)
			continue
		}
		articles = append(articles, a)
	}
	return articles, false
}

func indexBatch(ctx context.Context, client *llm.OpenAIClient, store *vectorstore.Client, batch []news.Article) (int, error) {
	texts := make([]string, len(batch))
	metadata := make([]model.ArticleMetadata, len(batch))
	for i, a := range batch {
		texts[i] = a.EmbeddingText()
		metadata[i] = model.ArticleMetadata{
			Author:      a.Author,
			SourceName:  a.SourceName,
			Title:       a.Title,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Description: a.Description,
		}
	}

	vectors, err := client.EmbedTexts(ctx, texts)
	if err != nil {
		return 0, err
	}

	if err := store.UpsertArticles(ctx, metadata, vectors); err != nil {
		return 0, err
	}

	return len(batch), nil
}

func deadLetter(batch []news.Article) {
	for _, a := range batch {
		data, err := json.Marshal(a)
		if err != nil {
			continue
		}
		if err := db.PushToQueue(db.DeadLetterKey, string(data)); err != nil {
			slog.Error("error pushing to dead letter queue", "error", err, "url", a.URL)
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
