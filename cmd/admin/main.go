package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"flashcards/internal/cli/commands"
	"flashcards/internal/config"
	"flashcards/internal/credential"
	"flashcards/internal/logging"
	"flashcards/internal/repo"
	"flashcards/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	logger, err := logging.Init(logging.Options{Level: cfg.LogLevel, Dev: true, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	sugar := logger.Sugar()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Errorw("failed to open database", "dsn", cfg.DatabaseDSN, "error", err)
		os.Exit(1)
	}

	hasher, err := credential.New(cfg.PasswordScheme)
	if err != nil {
		sugar.Errorw("invalid password scheme", "scheme", cfg.PasswordScheme, "error", err)
		os.Exit(1)
	}

	users := service.NewUserService(repo.NewUserRepository(db), hasher)
	env := &commands.Env{
		Users: users,
		Decks: service.NewDeckService(users, repo.NewDeckRepository(db), repo.NewCardRepository(db)),
	}

	// dispatcher
	exitCode := commands.Dispatch(ctx, env, flag.Args())

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = logger.Sync()

	if exitCode == 0 {
		return
	}
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("Flashcards admin\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
