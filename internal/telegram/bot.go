package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"mealbot/internal/api"
	"mealbot/internal/config"
	"mealbot/internal/metrics"
)

const greeting = "Hi! Try: plan 2026-03, grocery 2026-03, day 2026-03-05, cook 2026-03-05 dinner"

// Bot bridges Telegram to the chat command interface. Message text is
// forwarded verbatim to the command router and the reply is sent back.
type Bot struct {
	tg           *tgbotapi.BotAPI
	chat         *api.Chat
	metricsStore *metrics.Store
	cfg          *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, chat *api.Chat, metricsStore *metrics.Store) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		tg:           bot,
		chat:         chat,
		metricsStore: metricsStore,
		cfg:          cfg,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.tg.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	if !b.isAllowed(update.Message.From.ID) {
		log.Printf("Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) isAllowed(userID int64) bool {
	// An empty allow-list means the bot is open.
	if len(b.cfg.TelegramAllowedIDs) == 0 {
		return true
	}
	for _, id := range b.cfg.TelegramAllowedIDs {
		if userID == id {
			return true
		}
	}
	return false
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	reply := b.replyFor(context.Background(), msg.Text)
	if _, err := b.tg.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		log.Printf("Failed to send reply: %v", err)
	}
}

// replyFor maps one incoming message to its reply text.
func (b *Bot) replyFor(ctx context.Context, text string) string {
	switch strings.TrimSpace(text) {
	case "/start":
		return greeting
	case "/metrics":
		return b.metricsReport()
	}

	resp := b.chat.HandleMessage(ctx, &api.ChatMessageRequest{Message: text})
	return resp.Reply
}

func (b *Bot) metricsReport() string {
	var sb strings.Builder
	sb.WriteString("Usage & Health Report\n\n")

	sb.WriteString("Recent commands\n")
	if b.metricsStore == nil {
		sb.WriteString("- metrics disabled\n")
	} else {
		usage, err := b.metricsStore.GetDailyUsage(7)
		if err != nil {
			return "Error fetching metrics."
		}
		if len(usage) == 0 {
			sb.WriteString("- no data yet\n")
		}
		for _, d := range usage {
			sb.WriteString(fmt.Sprintf("- %s: %d commands (%d ms total)\n", d.Date, d.Commands, d.TotalLatencyMS))
		}
	}

	health := metrics.GetSysHealth(b.cfg.DataDir)
	sb.WriteString("\nSystem health\n")
	sb.WriteString(fmt.Sprintf("- RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("- Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("- Disk Data: %s\n", health.DataDiskSize))

	return sb.String()
}
