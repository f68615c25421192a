package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string
	DataDir      string
	Port         string

	// Optional overrides for the embedded datasets.
	NutritionPath string
	RecipesPath   string
	PackagingPath string

	// Telegram Config
	TelegramBotToken   string
	TelegramWebhookURL string
	TelegramAllowedIDs []int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	dataDir := os.Getenv("MEALBOT_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	dbPath := os.Getenv("MEALBOT_DB_PATH")
	if dbPath == "" {
		dbPath = dataDir + "/mealbot.db"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Telegram Config (Optional for the API server, required for the bot)
	telegramBotToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	telegramWebhookURL := os.Getenv("TELEGRAM_WEBHOOK_URL")
	allowedIDs, err := parseAllowedIDs(os.Getenv("TELEGRAM_ALLOWED_USER_IDS"))
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabasePath:       dbPath,
		DataDir:            dataDir,
		Port:               port,
		NutritionPath:      os.Getenv("MEALBOT_NUTRITION_PATH"),
		RecipesPath:        os.Getenv("MEALBOT_RECIPES_PATH"),
		PackagingPath:      os.Getenv("MEALBOT_PACKAGING_PATH"),
		TelegramBotToken:   telegramBotToken,
		TelegramWebhookURL: telegramWebhookURL,
		TelegramAllowedIDs: allowedIDs,
	}, nil
}

// parseAllowedIDs parses a comma-separated list of Telegram user IDs.
func parseAllowedIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_ALLOWED_USER_IDS contains invalid ID %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// RequireTelegram validates that the bot-only settings are present.
func (c *Config) RequireTelegram() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}
	if c.TelegramWebhookURL == "" {
		return fmt.Errorf("TELEGRAM_WEBHOOK_URL environment variable not set")
	}
	return nil
}
