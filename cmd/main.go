package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"bate-papo/infrastructure/api"
	"bate-papo/moderation"
	"bate-papo/repositories"
	"bate-papo/runtime/workers"
	"bate-papo/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer (database cleanup
// included) executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories & Services
	participantRepository := repositories.NewParticipantRepository(db)
	messageRepository := repositories.NewMessageRepository(db, log)
	registryService := services.NewRegistryService(participantRepository, messageRepository, log)

	var censor services.Censor
	if words := splitList(config.ForbiddenWords); len(words) > 0 {
		replacement, err := characterRune(config.CharReplacement)
		if err != nil {
			return err
		}
		moderator, err := moderation.NewModerator(words, replacement)
		if err != nil {
			return fmt.Errorf("moderator setup failed: %w", err)
		}
		censor = moderator
		log.Info("Moderation enabled", "words", len(words))
	}
	messageService := services.NewMessageService(participantRepository, messageRepository, censor, log)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Sweeper under supervision
	sup := workers.NewSupervisor(log)
	sweeper := workers.NewSweeperWorker(
		registryService, config.SweepInterval, config.InactivityThreshold, log,
	)
	supDone := make(chan struct{})
	go func() {
		sup.Add(sweeper).Run(ctx)
		close(supDone)
	}()

	// 6. HTTP Server
	handler := api.NewHandler(registryService, messageService, log)
	router := api.NewRouter(handler, splitList(config.AllowedOrigins))
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "err", err)
	}
	sup.Stop()
	<-supDone
	log.Info("Program stopped cleanly")

	return nil
}

func characterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf("CHARACTER_REPLACEMENT must be a single character, got %q", str)
	}
	return r[0], nil
}
