package main

import (
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/dresiko/media-match-homework/db"
	"github.com/dresiko/media-match-homework/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	var clients []news.NewsClient
	if key := os.Getenv("GUARDIAN_API_KEY"); key != "" {
		clients = append(clients, news.NewGuardianClient(key))
	}
	if key := os.Getenv("NEWS_API_KEY"); key != "" {
		clients = append(clients, news.NewNewsAPIClient(key))
	}

	if len(clients) == 0 {
		slog.Error("no news source API keys configured")
		return
	}

	for _, client := range clients {
		source := client.Name()

		fetchedArticles, err := client.Fetch(50)
		if err != nil {
			slog.Error("error fetching articles", "source", source, "error", err)
			continue
		}

		var queued, skipped, errors int

		for _, a := range fetchedArticles {
			if a.Author == "" {
				skipped++
				continue
			}

			data, err := json.Marshal(a)
			if err != nil {
				slog.Error("error encoding article", "source", source, "error", err, "url", a.URL)
				errors++
				continue
			}

			err = db.PushToQueue(db.IndexQueueKey, string(data))
			if err != nil {
				slog.Error("error pushing to Redis queue", "source", source, "error", err, "url", a.URL)
				errors++
				continue
			}

			queued++
		}

		slog.Info("fetch complete", "source", source, "queued", queued, "skipped", skipped, "errors", errors)
	}
}
