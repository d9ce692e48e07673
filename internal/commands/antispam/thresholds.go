package antispam

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// createSimilarityCommand creates the /antispam similarity subcommand
func createSimilarityCommand() *discord.Command {
	minPercent := float64(50)
	return discord.NewCommand(
		"similarity",
		"Configura el umbral de similitud para detectar copypasta",
		"antispam",
		similarityHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "porcentaje",
			Description: "Similitud mínima entre mensajes para considerarlos copypasta (50-99)",
			Required:    true,
			MinValue:    &minPercent,
			MaxValue:    99,
		},
	).WithUserPermissions(discordgo.PermissionManageServer).RequiresDatabase()
}

func similarityHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireManageServer(ctx) {
			return
		}

		percent := ctx.GetIntOption("porcentaje")

		store := policyStore(ctx)
		if store == nil {
			return
		}

		_, err := store.Update(ctx.Interaction.GuildID, func(p *models.AntiSpamPolicy) {
			p.SimilarityThreshold = float64(percent) / 100
		})
		if err != nil {
			replyPolicyError(ctx, err)
			return
		}

		ctx.ReplyEmbed(successEmbed(
			"📋 Umbral de Copypasta Actualizado",
			fmt.Sprintf("Los mensajes con una similitud del **%d%%** o más se considerarán copypasta.", percent),
		))
	}()
	return nil
}

// createAsciiArtCommand creates the /antispam asciiart subcommand
func createAsciiArtCommand() *discord.Command {
	minChars := float64(20)
	minLines := float64(2)
	return discord.NewCommand(
		"asciiart",
		"Configura los umbrales de detección de arte ASCII",
		"antispam",
		asciiArtHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "caracteres",
			Description: "Caracteres por línea a partir de los cuales una línea cuenta como arte",
			Required:    true,
			MinValue:    &minChars,
			MaxValue:    500,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "lineas",
			Description: "Número mínimo de líneas largas para marcar el mensaje",
			Required:    true,
			MinValue:    &minLines,
			MaxValue:    50,
		},
	).WithUserPermissions(discordgo.PermissionManageServer).RequiresDatabase()
}

func asciiArtHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireManageServer(ctx) {
			return
		}

		chars := int(ctx.GetIntOption("caracteres"))
		lines := int(ctx.GetIntOption("lineas"))

		store := policyStore(ctx)
		if store == nil {
			return
		}

		_, err := store.Update(ctx.Interaction.GuildID, func(p *models.AntiSpamPolicy) {
			p.AsciiArtThreshold = chars
			p.AsciiArtMinLines = lines
		})
		if err != nil {
			replyPolicyError(ctx, err)
			return
		}

		ctx.ReplyEmbed(successEmbed(
			"🎨 Umbral de ASCII-Art Actualizado",
			fmt.Sprintf("Los mensajes con **%d o más líneas** de **%d+ caracteres** serán marcados.", lines, chars),
		))
	}()
	return nil
}

// createEmojisCommand creates the /antispam emojis subcommand
func createEmojisCommand() *discord.Command {
	minEmojis := float64(3)
	return discord.NewCommand(
		"emojis",
		"Configura los umbrales de detección de spam de emojis",
		"antispam",
		emojisHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "total",
			Description: "Número total de emojis a partir del cual se marca el mensaje",
			Required:    true,
			MinValue:    &minEmojis,
			MaxValue:    100,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "unicos",
			Description: "Número de emojis distintos a partir del cual se marca el mensaje",
			Required:    true,
			MinValue:    &minEmojis,
			MaxValue:    100,
		},
	).WithUserPermissions(discordgo.PermissionManageServer).RequiresDatabase()
}

func emojisHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireManageServer(ctx) {
			return
		}

		total := int(ctx.GetIntOption("total"))
		unique := int(ctx.GetIntOption("unicos"))

		store := policyStore(ctx)
		if store == nil {
			return
		}

		_, err := store.Update(ctx.Interaction.GuildID, func(p *models.AntiSpamPolicy) {
			p.EmojiTotalThreshold = total
			p.EmojiUniqueThreshold = unique
		})
		if err != nil {
			replyPolicyError(ctx, err)
			return
		}

		ctx.ReplyEmbed(successEmbed(
			"😀 Umbral de Emojis Actualizado",
			fmt.Sprintf("Se marcarán los mensajes con **%d+ emojis** en total o **%d+ emojis distintos**.", total, unique),
		))
	}()
	return nil
}
