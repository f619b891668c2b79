package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendMessage sends a plain text message to a chat
func (tg *TelegramImpl) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message", "chatID", chatID, "error", err)
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendMarkdownMessage sends a Markdown V2 formatted message to a chat
func (tg *TelegramImpl) SendMarkdownMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending markdown message", "chatID", chatID, "error", err)
		return fmt.Errorf("failed to send markdown message: %w", err)
	}
	return nil
}

// SendMessageToUser sends a text message to the configured user
func (tg *TelegramImpl) SendMessageToUser(message string) {
	msg := tgbotapi.NewMessage(tg.Config.Telegram.User, message)
	_, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message to user",
			"userID", tg.Config.Telegram.User,
			"error", err)
		return
	}

	tg.Logger.Info("Message sent to user",
		"userID", tg.Config.Telegram.User)
}

// SendMarkdownToChannel sends a Markdown V2 message to the configured channel
func (tg *TelegramImpl) SendMarkdownToChannel(text string) error {
	channelName := "@" + tg.Config.Telegram.Channel
	msg := tgbotapi.NewMessageToChannel(channelName, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message to channel",
			"channel", channelName,
			"error", err)
		return fmt.Errorf("failed to send message to channel: %w", err)
	}
	return nil
}
