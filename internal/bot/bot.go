// SPDX-License-Identifier: Apache-2.0

// Package bot runs the Telegram front end. It long-polls for updates,
// dispatches bot commands, and relays them to the notes API through the
// adapter client.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mshv/go-note-keeper/internal/adapter"
	"github.com/mshv/go-note-keeper/internal/config"
	"github.com/mshv/go-note-keeper/internal/logger"
)

const updateTimeoutSeconds = 60

// Bot wires the Telegram API to the notes service.
type Bot struct {
	api    *tgbotapi.BotAPI
	notes  adapter.NotesAPI
	logger *logger.Logger
}

// NewBot authorizes against the Telegram Bot API with the configured token
// and returns a ready-to-run Bot.
func NewBot(cfg config.Telegram, notes adapter.NotesAPI, logger *logger.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("bot_username", api.Self.UserName).Msg("authorized on telegram bot account")

	return &Bot{api: api, notes: notes, logger: logger}, nil
}

// Run long-polls Telegram for updates until ctx is cancelled. Each update is
// handled synchronously: commands arrive at human pace and ordering of
// replies within a chat matters.
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = updateTimeoutSeconds

	updates := b.api.GetUpdatesChan(updateConfig)

	b.logger.Info().Msg("Launching Telegram bot")
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info().Msg("bot Shutdown gracefully")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	command := update.Message.Command()
	b.logger.Info().
		Str("command", command).
		Int64("chat_id", update.Message.Chat.ID).
		Msg("received bot command")

	reply := b.dispatch(ctx, command, update.Message.CommandArguments())

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, reply)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", update.Message.Chat.ID).Msg("failed to send reply")
	}
}
