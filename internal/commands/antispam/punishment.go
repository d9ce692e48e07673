package antispam

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// createPunishmentCommand creates the /antispam punishment subcommand
func createPunishmentCommand() *discord.Command {
	minDuration := float64(60)
	return discord.NewCommand(
		"punishment",
		"Configura la sanción aplicada a los spammers",
		"antispam",
		punishmentHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "castigo",
			Description: "Sanción a aplicar cuando se detecte spam",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "🔇 Timeout", Value: string(models.PunishmentTimeout)},
				{Name: "👢 Expulsión", Value: string(models.PunishmentKick)},
				{Name: "🔨 Baneo", Value: string(models.PunishmentBan)},
				{Name: "📋 Solo registrar", Value: string(models.PunishmentNone)},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "duracion",
			Description: "Duración del timeout en segundos (solo para timeout)",
			Required:    false,
			MinValue:    &minDuration,
			MaxValue:    2419200,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "rol-muteado",
			Description: "Rol asignado junto al timeout (opcional)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageServer).RequiresDatabase()
}

func punishmentHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireManageServer(ctx) {
			return
		}

		kind := models.PunishmentKind(ctx.GetStringOption("castigo"))
		duration := int(ctx.GetIntOption("duracion"))
		mutedRole := ctx.GetRoleOption("rol-muteado")

		store := policyStore(ctx)
		if store == nil {
			return
		}

		policy, err := store.Update(ctx.Interaction.GuildID, func(p *models.AntiSpamPolicy) {
			p.Punishment = kind
			if duration > 0 {
				p.TimeoutSeconds = duration
			}
			if mutedRole != nil {
				p.MutedRole = mutedRole.ID
			}
		})
		if err != nil {
			replyPolicyError(ctx, err)
			return
		}

		description := fmt.Sprintf("Los spammers detectados recibirán: %s", punishmentLabel(policy.Punishment))
		if policy.Punishment == models.PunishmentTimeout {
			description += fmt.Sprintf("\nDuración: **%d segundos**", policy.TimeoutSeconds)
			if policy.MutedRole != "" {
				description += fmt.Sprintf("\nRol asignado: <@&%s>", policy.MutedRole)
			}
		}

		ctx.ReplyEmbed(successEmbed("⚖️ Sanción Actualizada", description))
	}()
	return nil
}
