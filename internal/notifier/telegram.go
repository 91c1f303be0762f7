// Package notifier delivers emergency escalation alerts over Telegram when a
// user's code word fires.
package notifier

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/config"
)

// TelegramNotifier sends emergency alerts to the stored emergency contact,
// which is expected to be a Telegram chat id.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	logger *zap.Logger
}

// NewTelegramNotifier creates the notifier. Returns (nil, nil) when Telegram
// escalation is disabled in config; a nil notifier is safe to pass around.
func NewTelegramNotifier(cfg *config.Config, logger *zap.Logger) (*TelegramNotifier, error) {
	if !cfg.Telegram.Enabled || cfg.Telegram.BotToken == "" {
		logger.Info("Telegram notifier is disabled (telegram.enabled=false or token is empty)")
		return nil, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}

	logger.Info("Telegram notifier authorized", zap.String("username", botAPI.Self.UserName))

	return &TelegramNotifier{
		api:    botAPI,
		logger: logger,
	}, nil
}

// NotifyEmergency sends an alert about userID to the emergency contact.
// The excerpt is the triggering entry's text, included so the contact has
// context for the escalation.
func (n *TelegramNotifier) NotifyEmergency(userID, contact, excerpt string) error {
	if n == nil {
		return nil // Notifier is disabled
	}

	chatID, err := strconv.ParseInt(contact, 10, 64)
	if err != nil {
		return fmt.Errorf("emergency contact is not a valid chat id: %w", err)
	}

	text := fmt.Sprintf("🚨 Emergency code word detected for user %s.\n\nMessage: %s", userID, excerpt)
	msg := tgbotapi.NewMessage(chatID, text)

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send emergency notification: %w", err)
	}

	n.logger.Info("Emergency notification sent",
		zap.String("user_id", userID), zap.Int64("chat_id", chatID))
	return nil
}
