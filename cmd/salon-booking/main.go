package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"salon-booking/internal/admin"
	"salon-booking/internal/assistant"
	"salon-booking/internal/config"
	"salon-booking/internal/handler"
	"salon-booking/internal/handoff"
	"salon-booking/internal/storage"
	"salon-booking/internal/whatsapp"
)

type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	catalog   *storage.Catalog
	session   *admin.Session
	assistant *assistant.Assistant
	handoff   *handoff.Service
}

func main() {
	fmt.Println("💅 Salon Booking")
	fmt.Println("================")

	// Load configuration
	cfg := config.LoadConfig()
	logger := newLogger(cfg.LogLevel)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize storage
	kv, err := openStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error initializing storage")
	}
	defer func() {
		if err := closeStore(kv); err != nil {
			logger.Warn().Err(err).Msg("Error closing storage")
		}
	}()
	catalog := storage.NewCatalog(kv, logger)

	// Initialize assistant; without a key it answers with the fallback reply
	var aiClient assistant.Client
	if cfg.GeminiAPIKey != "" {
		gemini, err := assistant.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn().Err(err).Msg("Assistant disabled")
		} else {
			defer gemini.Close()
			aiClient = gemini
		}
	}
	beautyAssistant := assistant.New(aiClient, catalog, logger)

	var opener handoff.Opener = handoff.QROpener{Out: os.Stdout}

	// Optionally link a WhatsApp device for direct delivery and chat replies
	if cfg.WhatsAppEnabled {
		whatsappService, err := whatsapp.NewService(ctx, &whatsapp.Config{
			DataDir:    cfg.DataDir,
			PairingOut: os.Stdout,
		}, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("Error initializing WhatsApp service")
		}

		chatHandler := handler.NewChatHandler(whatsappService, beautyAssistant, catalog)
		whatsappService.SetMessageHandler(chatHandler.HandleMessage)

		fmt.Println("Connecting to WhatsApp...")
		if err := whatsappService.Connect(ctx); err != nil {
			logger.Fatal().Err(err).Msg("Error connecting to WhatsApp")
		}
		defer whatsappService.Disconnect()
		fmt.Println("✅ Connected to WhatsApp!")

		opener = handoff.MultiOpener{handoff.SenderOpener{Sender: whatsappService}, opener}
	}

	a := &app{
		cfg:       cfg,
		log:       logger,
		catalog:   catalog,
		session:   admin.NewSession(cfg.AdminPassword),
		assistant: beautyAssistant,
		handoff:   handoff.NewService(opener, cfg.HandoffResetDelay, logger),
	}

	// Start interactive CLI
	done := make(chan struct{})
	go func() {
		a.startCLI(ctx)
		close(done)
	}()

	// Wait for interrupt signal or exit command
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	select {
	case <-c:
	case <-done:
	}

	fmt.Println("\nGoodbye! 👋")
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().
		Logger()
}

func openStore(cfg *config.Config) (storage.KV, error) {
	switch cfg.StorageBackend {
	case "file":
		return storage.NewFileKV(filepath.Join(cfg.DataDir, "salon.json"))
	case "sqlite", "":
		return storage.NewSQLiteKV(filepath.Join(cfg.DataDir, "salon.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// closeStore releases backends that hold an open handle
func closeStore(kv storage.KV) error {
	if c, ok := kv.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (a *app) startCLI(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\nCommands:")
		fmt.Println("  1. Book an appointment")
		fmt.Println("  2. View services")
		fmt.Println("  3. Ask the beauty assistant")
		fmt.Println("  4. Administration")
		fmt.Println("  5. Exit")
		fmt.Print("\nEnter command (1-5): ")

		if !scanner.Scan() {
			return
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			a.runBooking(ctx, scanner)
		case "2":
			fmt.Println()
			fmt.Println(handler.FormatMenu(a.catalog.Settings(), a.catalog.Services()))
		case "3":
			a.runChat(ctx, scanner)
		case "4":
			a.runAdmin(scanner)
		case "5":
			fmt.Println("Exiting...")
			return
		default:
			fmt.Println("Invalid command. Please try again.")
		}
	}
}

func (a *app) runChat(ctx context.Context, scanner *bufio.Scanner) {
	fmt.Printf("\n🤖 %s\n", assistant.Greeting)
	fmt.Println("(empty line to return)")

	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			return
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			return
		}
		fmt.Printf("🤖 %s\n", a.assistant.Reply(ctx, text))
	}
}

// prompt prints label and returns the trimmed answer
func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
