package main

import (
	"log"
	"log/slog"
	"os"

	"tariffwatch/internal/app"
	"tariffwatch/internal/config"
	"tariffwatch/internal/handler"
	"tariffwatch/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	sess := app.NewSession(cfg)

	clientHandler := handler.NewClientHandler(sess)
	batchHandler := handler.NewBatchHandler(sess.History(), sess, cfg.DefaultKeywords, cfg.DefaultLanguages)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/clients", clientHandler.GetClients)
	r.POST("/clients", clientHandler.AddClient)
	r.DELETE("/clients/:name", clientHandler.RemoveClient)
	r.POST("/runs", batchHandler.CreateRun)
	r.GET("/batches/latest", batchHandler.GetLatestBatch)
	r.GET("/batches", batchHandler.GetBatches)
	r.GET("/health", clientHandler.GetHealth)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
