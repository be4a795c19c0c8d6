// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/mshv/go-note-keeper/internal/adapter"
	"github.com/mshv/go-note-keeper/internal/bot"
	"github.com/mshv/go-note-keeper/internal/config"
	"github.com/mshv/go-note-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("notes-bot")
	cfg, err := config.GetBotConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	notesAPI, err := adapter.NewHTTPNotesAdapter(cfg.Adapter, cfg.Service, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notes api client")
	}

	telegramBot, err := bot.NewBot(cfg.Telegram, notesAPI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating telegram bot")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err = telegramBot.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("error running telegram bot")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
