package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"portfolio-server-go/airtable"
	"portfolio-server-go/catalog"
	"portfolio-server-go/config"
	"portfolio-server-go/db"
	"portfolio-server-go/handlers"
	"portfolio-server-go/portfolio"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	views, roster := loadRoster(cfg, cat)
	log.Printf("Serving portfolios for %d students: %v", views.Len(), views.Students())

	upstream := airtable.NewClient(cfg.AirtableAPIURL, cfg.BaseID, cfg.AirtableTable, cfg.AirtableToken)
	if !upstream.Configured() {
		log.Printf("Warning: AIRTABLE_TOKEN is not set; the experiences proxy will answer 500")
	}

	// The portfolio page reads through the proxy, like the static site did.
	source := portfolio.NewProxyClient(cfg.ProxyBaseURL)

	apiHandler := handlers.NewAPIHandler(views, roster, upstream, cat.CategoryTable(), source)

	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	handlers.RegisterRoutes(router, apiHandler)

	log.Printf("Starting server on port %s", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// loadRoster resolves the student to view map once at start-up. With Redis
// configured the roster lives there and is seeded from the catalog when
// empty; otherwise the catalog is used as is.
func loadRoster(cfg *config.Config, cat *catalog.Catalog) (catalog.StudentViewMap, handlers.RosterSource) {
	if cfg.RedisAddr == "" {
		return cat.Views(), catalog.StaticRoster(cat.Roster())
	}

	client, err := db.InitializeRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	rosterService := db.NewRosterService(client)

	if _, err := rosterService.SeedIfEmpty(cat.Roster()); err != nil {
		log.Fatalf("Failed to seed roster: %v", err)
	}

	views, err := rosterService.LoadViewMap()
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	return views, rosterService
}
