package telegram

import (
	"fmt"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// Notifier fans an admin alert out to the configured chat IDs.
type Notifier struct {
	bot     *tgbotapi.BotAPI
	chatIDs []int64
}

func NewNotifier(botToken string, chatIDs []int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %v", err)
	}

	return &Notifier{
		bot:     bot,
		chatIDs: chatIDs,
	}, nil
}

// SendNotification sends a message to all configured chat IDs. A nil
// Notifier is a no-op so callers don't have to guard.
func (tn *Notifier) SendNotification(message string) {
	if tn == nil || tn.bot == nil {
		return
	}

	for _, chatID := range tn.chatIDs {
		msg := tgbotapi.NewMessage(chatID, message)
		msg.ParseMode = "Markdown"

		go func(m tgbotapi.MessageConfig) {
			if _, err := tn.bot.Send(m); err != nil {
				log.Errorf("Failed to send telegram message to chat %d: %v", m.ChatID, err)
			}
		}(msg)
	}
}

// FromEnv builds a Notifier from TELEGRAM_BOT_TOKEN and
// TELEGRAM_CHAT_ID_1..3. Returns nil when telegram is not configured.
func FromEnv() *Notifier {
	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		log.Warn("TELEGRAM_BOT_TOKEN not set, telegram alerts disabled")
		return nil
	}

	var chatIDs []int64
	for i := 1; i <= 3; i++ {
		chatIDStr := os.Getenv(fmt.Sprintf("TELEGRAM_CHAT_ID_%d", i))
		if chatIDStr != "" {
			if chatID, err := strconv.ParseInt(chatIDStr, 10, 64); err == nil {
				chatIDs = append(chatIDs, chatID)
			} else {
				log.Errorf("Invalid TELEGRAM_CHAT_ID_%d format: %v", i, err)
			}
		}
	}

	if len(chatIDs) == 0 {
		log.Warn("No valid telegram chat IDs found, telegram alerts disabled")
		return nil
	}

	notifier, err := NewNotifier(botToken, chatIDs)
	if err != nil {
		log.Errorf("Failed to initialize Telegram notifier: %v", err)
		return nil
	}

	log.Infof("Telegram notifier initialized with %d chat IDs", len(chatIDs))
	return notifier
}
