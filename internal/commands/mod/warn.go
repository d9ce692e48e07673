// Package mod - /mod warn command
package mod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advierte a un usuario",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).RequiresDatabase()
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		reason := ctx.GetStringOption("razon")
		if reason == "" {
			ctx.ReplyEphemeral("❌ Debes especificar una razón.")
			return
		}

		dm := database.GlobalWarnDM
		query := bson.M{"guildId": ctx.Interaction.GuildID, "userId": user.ID}

		doc, err := dm.Get(query)
		if err != nil {
			logger.Error(fmt.Sprintf("Error DB Warn: %v", err), "CMD-Warn")
			ctx.ReplyEphemeral("❌ Error al consultar la base de datos.")
			return
		}

		if doc == nil {
			doc = &models.WarnsDocument{
				GuildID: ctx.Interaction.GuildID,
				UserID:  user.ID,
			}
		}

		warn := models.Warn{
			Reason:    reason,
			Moderator: ctx.User().ID,
			ID:        uuid.New().String(),
			Timestamp: time.Now().Unix(),
		}
		doc.Warns = append(doc.Warns, warn)

		if _, err := dm.Set(query, doc); err != nil {
			logger.Error(fmt.Sprintf("Error guardando Warn: %v", err), "CMD-Warn")
			ctx.ReplyEphemeral("❌ No se pudo guardar la advertencia.")
			return
		}

		ctx.Reply(fmt.Sprintf("⚠️ **%s** ha sido advertido.\n**Razón:** %s\n**Moderador:** %s\n**ID:** `%s`",
			user.Username,
			reason,
			ctx.User().Username,
			warn.ID,
		))
	}()
	return nil
}
