package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"uptimebot/clients/betterstack"
	"uptimebot/config"
	"uptimebot/handlers"
	"uptimebot/usecases/responder"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// One process-wide HTTP client, configured once and shared read-only
	// across handler invocations
	httpClient := &http.Client{}
	uptimeClient := betterstack.NewBetterStackClient(
		httpClient,
		cfg.BetterStackConfig.BaseURL,
		cfg.BetterStackConfig.APIToken,
	)
	responderUseCase := responder.NewResponderUseCase(uptimeClient)

	if cfg.DiscordConfig.IsConfigured() {
		discordHandler, err := handlers.NewDiscordEventsHandler(cfg.DiscordConfig.BotToken, responderUseCase)
		if err != nil {
			log.Fatalf("❌ Failed to create Discord events handler: %v", err)
		}
		if err := discordHandler.StartBot(); err != nil {
			log.Fatalf("❌ Failed to start Discord bot: %v", err)
		}
		defer discordHandler.StopBot()
	}

	router := mux.NewRouter()
	router.HandleFunc("/health", handlers.HandleHealthCheck).Methods(http.MethodGet)

	if cfg.SlackConfig.IsConfigured() {
		slackHandler, err := handlers.NewSlackEventsHandler(
			cfg.SlackConfig.BotToken,
			cfg.SlackConfig.SigningSecret,
			responderUseCase,
		)
		if err != nil {
			log.Fatalf("❌ Failed to create Slack events handler: %v", err)
		}
		router.HandleFunc("/slack/events", slackHandler.HandleSlackEvent).Methods(http.MethodPost)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSAllowedOrigins, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsHandler,
	}

	go func() {
		log.Printf("✅ HTTP server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ HTTP server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Printf("🛑 Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ HTTP server shutdown failed: %v", err)
	}
}
