package app

import (
	"fmt"

	"mealbot/internal/api"
	"mealbot/internal/config"
	"mealbot/internal/database"
	"mealbot/internal/inventory"
	"mealbot/internal/metrics"
	"mealbot/internal/nutrition"
	"mealbot/internal/recipe"
	"mealbot/internal/session"
)

// App holds the fully wired application: datasets, persistence, and
// the service surfaces built on top of them. Both binaries assemble
// through here so the wiring stays in one place.
type App struct {
	Nutrition *nutrition.DB
	Catalog   *recipe.Catalog
	Rules     *inventory.PackagingRules

	DB       *database.DB
	Sessions *session.Manager
	Metrics  *metrics.Store

	Service *api.Service
	Chat    *api.Chat
}

// New loads the datasets (embedded unless overridden in cfg), opens
// the SQLite store, and wires the service.
func New(cfg *config.Config) (*App, error) {
	db, err := loadNutrition(cfg)
	if err != nil {
		return nil, err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	rules, err := loadRules(cfg)
	if err != nil {
		return nil, err
	}

	store, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	sessions := session.NewManager(session.NewRepository(store.SQL))
	metricsStore := metrics.NewStore(store.SQL)

	service := api.NewService(db, catalog, rules, sessions)

	return &App{
		Nutrition: db,
		Catalog:   catalog,
		Rules:     rules,
		DB:        store,
		Sessions:  sessions,
		Metrics:   metricsStore,
		Service:   service,
		Chat:      api.NewChat(service),
	}, nil
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.DB.Close()
}

func loadNutrition(cfg *config.Config) (*nutrition.DB, error) {
	if cfg.NutritionPath != "" {
		return nutrition.LoadFile(cfg.NutritionPath)
	}
	return nutrition.Load()
}

func loadCatalog(cfg *config.Config) (*recipe.Catalog, error) {
	if cfg.RecipesPath != "" {
		return recipe.LoadCatalogFile(cfg.RecipesPath)
	}
	return recipe.LoadCatalog()
}

func loadRules(cfg *config.Config) (*inventory.PackagingRules, error) {
	if cfg.PackagingPath != "" {
		return inventory.LoadPackagingRulesFile(cfg.PackagingPath)
	}
	return inventory.LoadPackagingRules()
}
