package utils

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/internal/antispam"
	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
)

// createStatusCommand creates the /utils status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Muestra el estado del bot",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /utils status command
func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		db := database.Get()
		dbStatus, _ := db.GetStatus()

		guardStatus := "🔴 | Apagado"
		if engine := antispam.Get(); engine != nil {
			stats := engine.Stats()
			guardStatus = fmt.Sprintf("🟢 | %d mensajes analizados, %d detecciones", stats.MessagesSeen, stats.Detections)
		}

		ctx.Reply(fmt.Sprintf(
			"📊 **Estado del Bot**\n"+
				"• Bot: 🟢 Online\n"+
				"• Base de datos: %s\n"+
				"• Anti-Spam: %s\n"+
				"• Servidores: %d",
			dbStatus,
			guardStatus,
			ctx.Client.GuildCount(),
		))
	}()
	return nil
}
