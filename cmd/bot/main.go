// Package main is the entry point for the PancyGuard Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PancyStudios/PancyGuardGo/internal/antispam"
	"github.com/PancyStudios/PancyGuardGo/internal/commands"
	"github.com/PancyStudios/PancyGuardGo/internal/events"
	"github.com/PancyStudios/PancyGuardGo/pkg/config"
	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/PancyStudios/PancyGuardGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando PancyGuard Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			err := discordClient.Stop()
			if err != nil {
				return
			}
		}
	})

	// Initialize database
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		logger.Debug(fmt.Sprintf("Error connecting to database: %v", cfg.MongoDBURL), "Main")
		// Continue without database- it will attempt to reconnect
	}
	defer func() {
		if db != nil {
			err := db.Disconnect()
			if err != nil {
				return
			}
		}
	}()

	// Initialize global DataManagers
	if db != nil {
		database.InitGlobalDataManagers(db)

		// Initialize blacklist cache at startup and start auto-refresh
		if err := database.InitBlacklistCache(); err != nil {
			logger.Warn(fmt.Sprintf("Error inicializando caché de blacklist: %v", err), "Main")
		}
		database.StartBlacklistCacheRefresh()
		defer database.StopBlacklistCacheRefresh()
	}

	// Initialize MQTT
	mqttClientID := "pancyguard"
	if !cfg.IsProd() {
		mqttClientID = "pancyguard_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Incident persistence (best effort, nil when the database is down)
	var incidentStore *database.IncidentStore
	if db != nil {
		incidentStore, err = database.NewIncidentStore(db)
		if err != nil {
			logger.Warn(fmt.Sprintf("Almacén de incidentes no disponible: %v", err), "Main")
		}
	}

	// Initialize web server with the live incident feed
	liveFeed := web.NewLiveFeed()
	defer liveFeed.Close()

	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer, incidentStore)
	web.SetupLiveFeedRoute(webServer, liveFeed)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Initialize the anti-spam engine. Policies fall back to defaults when
	// the database is unreachable, so the bot keeps running either way.
	policyStore, err := database.NewPolicyStore()
	if err != nil {
		logger.Warn(fmt.Sprintf("Almacén de políticas no disponible: %v", err), "Main")
	}

	sinks := []antispam.IncidentSink{mqttClient, liveFeed}
	if incidentStore != nil {
		sinks = append(sinks, incidentStore)
	}
	spamEngine := antispam.Init(antispam.NewSessionModerator(discordClient.Session), policyStore, sinks...)

	// Request surfaces for external dashboards over MQTT
	mqttClient.On("antispam/stats", func(payload map[string]interface{}) (interface{}, error) {
		return spamEngine.Stats(), nil
	})
	mqttClient.On("status", func(payload map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{
			"version":     config.Version,
			"environment": cfg.Environment,
			"ready":       discordClient.IsReady(),
			"guilds":      discordClient.GuildCount(),
		}, nil
	})

	// Register commands using the new commands package
	commands.RegisterAll(discordClient)

	// Register events using the new events package
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		err := discordClient.Stop()
		if err != nil {

		}
	}(discordClient)

	logger.Success("PancyGuard Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando PancyGuard Go...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
