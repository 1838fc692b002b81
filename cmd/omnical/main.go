package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/omnical-dev/omnical/db"
	"github.com/omnical-dev/omnical/internal/auth"
	"github.com/omnical-dev/omnical/internal/cache"
	"github.com/omnical-dev/omnical/internal/config"
	"github.com/omnical-dev/omnical/internal/handlers"
	"github.com/omnical-dev/omnical/internal/holidayapi"
	"github.com/omnical-dev/omnical/internal/router"
	"github.com/omnical-dev/omnical/internal/scheduler"
	"github.com/omnical-dev/omnical/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DB.DSN); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	verifier, err := auth.NewVerifier(context.Background(), auth.VerifierConfig{
		Issuer:   cfg.Clerk.Issuer,
		Audience: cfg.Clerk.Audience,
		JWKSURL:  cfg.Clerk.JWKSURL,
	})

	if err != nil {
		log.Fatalf("Failed to initialize token verifier: %v", err)
	}

	var hot *cache.HolidayCache

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		hot = cache.NewHolidayCache(rdb, cfg.Redis.TTL)
	}

	holidayClient := holidayapi.NewClient(cfg.Cal.BaseURL, cfg.Cal.APIKey, cfg.Cal.Timeout)

	identity := services.NewIdentityResolver(db.DB)
	dashboard := services.NewDashboardService(db.DB)
	tasks := services.NewTaskService(db.DB)
	catalog := services.NewCatalogService(db.DB)
	holidays := services.NewHolidayService(db.DB, holidayClient, hot)

	if cfg.Cal.RefreshSpec != "" {
		sched := scheduler.New()

		if err := sched.AddHolidayRefresh(cfg.Cal.RefreshSpec, holidays, cfg.Cal.RefreshMaxAge); err != nil {
			log.Fatalf("Failed to schedule holiday refresh: %v", err)
		}

		sched.Start()
		defer sched.Stop()
	}

	r := router.NewRouter(verifier, router.Handlers{
		Dashboard: handlers.NewDashboardHandler(identity, dashboard),
		Tasks:     handlers.NewTaskHandler(identity, tasks),
		Holidays:  handlers.NewHolidayHandler(holidays),
		Catalog:   handlers.NewCatalogHandler(identity, catalog),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
