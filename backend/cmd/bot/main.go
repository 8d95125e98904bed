package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"monsterdex/backend/internal/catalog"
	"monsterdex/backend/internal/discord"
	"monsterdex/backend/internal/graph"
	"monsterdex/backend/internal/overrides"
	"monsterdex/backend/internal/service"
	"monsterdex/backend/pkg/config"
	"monsterdex/backend/pkg/logger"

	"github.com/bwmarrin/discordgo"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting Discord bot...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	if cfg.DiscordBotToken == "" {
		log.Fatal("DISCORD_BOT_TOKEN is required")
	}

	// Initialize dependencies
	loader := catalog.NewLoader(cfg.CatalogDBURL, cfg.CatalogDBPath)
	fetcher := overrides.NewFetcher(cfg.OverridesURL, cfg.OverridesPath)

	// Optional Neo4j mirror of the evolution graph
	var mirror service.GraphMirror
	if cfg.GraphMirrorEnabled {
		driver, err := neo4j.NewDriverWithContext(
			cfg.Neo4jURI,
			neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
		)
		if err != nil {
			log.Fatal("Failed to create Neo4j driver", zap.Error(err))
		}
		defer driver.Close(context.Background())

		if err := driver.VerifyConnectivity(context.Background()); err != nil {
			log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
		}
		mirror = graph.NewMirror(driver)
		log.Info("Graph mirror enabled", zap.String("uri", cfg.Neo4jURI))
	}

	svc := service.New(loader, fetcher, mirror)

	// Start the periodic catalog refresh
	scheduler := service.NewScheduler(svc, cfg.RefreshInterval, cfg.RefreshRetry)
	scheduler.Start()
	defer scheduler.Stop()

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		log.Fatal("Failed to create Discord session", zap.Error(err))
	}

	// Create message handler
	messageHandler := discord.NewHandler(svc, cfg.CommandPrefix, log)

	// Add message handler
	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		messageHandler.HandleMessage(s, m)
	})

	// Prefix commands need the message content intent on top of the
	// guild and DM message intents
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	// Open connection
	if err := dg.Open(); err != nil {
		log.Fatal("Failed to open Discord connection", zap.Error(err))
	}
	defer dg.Close()

	log.Info("Discord bot is running. Press CTRL-C to exit.",
		zap.String("command_prefix", cfg.CommandPrefix),
	)

	// Wait for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop

	log.Info("Shutting down Discord bot...")
}
