package main

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"

	"github.com/stevenguyen-wq/babyboss.tarot/internal/auth"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/catalog"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/config"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/draw"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/eligibility"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/flow"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/handlers"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/models"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/relay"
)

func main() {
	defer logger.Init("babyboss-tarot", true, false, io.Discard).Close()

	// Load config & init
	appCfg := config.Load()
	db := config.InitDB(appCfg)
	models.Migrate(db)
	auth.Init(appCfg.JWTSecret)

	// The card set is validated up front; an empty weight class is a
	// deployment defect, not something to limp past.
	cards, err := catalog.Load()
	if err != nil {
		logger.Fatalf("invalid card catalog: %v", err)
	}

	src, err := draw.NewCSPRNG()
	if err != nil {
		logger.Fatalf("failed to initialize entropy source: %v", err)
	}

	store := eligibility.NewGormStore(db)
	sheet := relay.New(appCfg.SheetAPIURL)
	ctrl := flow.NewController(cards, draw.NewEngine(src), store, sheet, flow.DrawingDuration)

	if err := handlers.SeedAdmin(db, appCfg.AdminUsername, appCfg.AdminPassword); err != nil {
		logger.Fatalf("failed to seed admin user: %v", err)
	}

	h := handlers.New(ctrl, store, cards)

	// Setup router
	r := gin.Default()
	r.Use(config.CORSMiddleware())

	api := r.Group("/api/v1")
	{
		// Public draw flow
		api.GET("/cards", h.ListCards)
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:id", h.GetSession)

		// Admin reporting
		api.POST("/admin/login", handlers.Login)
		admin := api.Group("/admin")
		admin.Use(handlers.RequireAuth())
		{
			admin.GET("/plays", handlers.ListPlays)
		}
	}

	// Sweep abandoned sessions; eligibility records are never touched.
	go func() {
		for {
			time.Sleep(10 * time.Minute)
			if n := ctrl.CleanUpStale(time.Hour); n > 0 {
				logger.Infof("cleaned up %d stale sessions", n)
			}
		}
	}()

	// Start the HTTP server (port from env or default)
	r.Run(":" + appCfg.Port)
}
