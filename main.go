package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/restaurant-storefront/client"
	"github.com/yeremiapane/restaurant-storefront/config"
	"github.com/yeremiapane/restaurant-storefront/router"
	"github.com/yeremiapane/restaurant-storefront/session"
	"github.com/yeremiapane/restaurant-storefront/tracker"
	"github.com/yeremiapane/restaurant-storefront/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	utils.InitLogger()

	cfg, err := config.New()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	orders := client.NewOrderServiceClient(cfg.OrderServiceURL, cfg.RequestTimeout)

	sessions := session.NewManager(cfg.SessionTTL)
	sessions.StartSweep(time.Minute)
	defer sessions.Stop()

	trackers := tracker.NewService(orders, cfg.OrderPollInterval)

	r := router.SetupRouter(router.Deps{
		Orders:   orders,
		Sessions: sessions,
		Trackers: trackers,
		// Long polls span three upstream polls before answering unchanged.
		WatchWindow: 3 * cfg.OrderPollInterval,
	})

	utils.InfoLogger.Printf("Storefront listening on port %s (order service %s)", cfg.Port, cfg.OrderServiceURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
