package antispam

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// createLimitsCommand creates the /antispam limits subcommand
func createLimitsCommand() *discord.Command {
	minMessages := float64(2)
	minSeconds := float64(1)
	return discord.NewCommand(
		"limits",
		"Configura el límite de mensajes por intervalo (flood)",
		"antispam",
		limitsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "mensajes",
			Description: "Número máximo de mensajes permitidos en el intervalo",
			Required:    true,
			MinValue:    &minMessages,
			MaxValue:    15,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "segundos",
			Description: "Duración del intervalo en segundos",
			Required:    true,
			MinValue:    &minSeconds,
			MaxValue:    300,
		},
	).WithUserPermissions(discordgo.PermissionManageServer).RequiresDatabase()
}

func limitsHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireManageServer(ctx) {
			return
		}

		messages := int(ctx.GetIntOption("mensajes"))
		seconds := int(ctx.GetIntOption("segundos"))

		store := policyStore(ctx)
		if store == nil {
			return
		}

		_, err := store.Update(ctx.Interaction.GuildID, func(p *models.AntiSpamPolicy) {
			p.MessageLimit = messages
			p.IntervalSeconds = seconds
		})
		if err != nil {
			replyPolicyError(ctx, err)
			return
		}

		ctx.ReplyEmbed(successEmbed(
			"🌊 Límite de Flood Actualizado",
			fmt.Sprintf("Los usuarios que envíen más de **%d mensajes en %d segundos** serán sancionados.", messages, seconds),
		))
	}()
	return nil
}
