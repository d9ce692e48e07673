package antispam

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// createLogChannelCommand creates the /antispam logchannel subcommand
func createLogChannelCommand() *discord.Command {
	return discord.NewCommand(
		"logchannel",
		"Configura el canal donde se registran las detecciones",
		"antispam",
		logChannelHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal de texto para los registros (vacío para desactivar)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).WithUserPermissions(discordgo.PermissionManageServer).RequiresDatabase()
}

func logChannelHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireManageServer(ctx) {
			return
		}

		channel := ctx.GetChannelOption("canal")

		store := policyStore(ctx)
		if store == nil {
			return
		}

		_, err := store.Update(ctx.Interaction.GuildID, func(p *models.AntiSpamPolicy) {
			if channel == nil {
				p.LogChannel = ""
			} else {
				p.LogChannel = channel.ID
			}
		})
		if err != nil {
			replyPolicyError(ctx, err)
			return
		}

		if channel == nil {
			ctx.ReplyEmbed(successEmbed(
				"📜 Canal de Registro Desactivado",
				"Las detecciones ya no se publicarán en ningún canal.",
			))
			return
		}

		ctx.ReplyEmbed(successEmbed(
			"📜 Canal de Registro Actualizado",
			fmt.Sprintf("Las detecciones se publicarán en <#%s>.", channel.ID),
		))
	}()
	return nil
}
