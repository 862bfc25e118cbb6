package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/config"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/handlers"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/media"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/realtime"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/routes"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/stats"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/store"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

func main() {
	cfg := config.Load()

	db, err := store.Connect(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	users, err := store.NewMongoUserStore(db)
	if err != nil {
		log.Fatal("Failed to set up users collection:", err)
	}
	slides := store.NewMongoSlideStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := handlers.EnsureDefaultAdmin(ctx, users); err != nil {
		log.Println("default admin check failed:", err)
	}
	cancel()

	uploader, err := media.NewCloudinaryUploader(
		cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatal("Failed to configure Cloudinary:", err)
	}

	tokens := utils.NewJWT(cfg.JWTSecret)

	registry := realtime.NewRegistry()
	dispatcher := realtime.NewDispatcher(registry)
	aggregator := stats.NewAggregator(users, registry)
	ws := realtime.NewHandler(registry, dispatcher, users, aggregator, tokens)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"data": gin.H{
				"status": "Server is running",
			},
		})
	})

	routes.AuthRoutes(r, handlers.NewAuthHandler(users, tokens))
	routes.UserRoutes(r, handlers.NewUserHandler(users), tokens)
	routes.ScheduleRoutes(r, handlers.NewScheduleHandler(users), handlers.NewSessionHandler(users, dispatcher), tokens)
	routes.AttendanceRoutes(r, handlers.NewAttendanceHandler(users), tokens)
	routes.SlideRoutes(r, handlers.NewSlideHandler(slides, uploader), tokens)
	routes.StatsRoutes(r, handlers.NewStatsHandler(aggregator))
	routes.RealtimeRoutes(r, ws)

	if cfg.ExternalURL != "" {
		go keepAlive(cfg.ExternalURL)
	}

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// keepAlive pings our own public URL so free-tier hosting does not idle
// the process out.
func keepAlive(url string) {
	client := &http.Client{Timeout: 10 * time.Second}
	ticker := time.NewTicker(14 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		resp, err := client.Get(url)
		if err != nil {
			log.Printf("self-ping to %s failed: %v", url, err)
			continue
		}
		resp.Body.Close()
		log.Printf("self-ping successful, status: %d", resp.StatusCode)
	}
}
