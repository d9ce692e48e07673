package antispam

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	engine "github.com/PancyStudios/PancyGuardGo/internal/antispam"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
)

// createSignaturesCommand creates the /antispam signatures subcommand
func createSignaturesCommand() *discord.Command {
	return discord.NewCommand(
		"signatures",
		"Lista las categorías de detección en su orden de evaluación",
		"antispam",
		signaturesHandler,
	).WithUserPermissions(discordgo.PermissionManageServer)
}

func signaturesHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireManageServer(ctx) {
			return
		}

		fields := make([]*discordgo.MessageEmbedField, 0, len(engine.AllSignatures()))
		for i, sig := range engine.AllSignatures() {
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:   fmt.Sprintf("%d. `%s`", i+1, sig),
				Value:  sig.Description(),
				Inline: false,
			})
		}

		ctx.ReplyEmbed(&discordgo.MessageEmbed{
			Title:       "🔎 Firmas de Detección",
			Description: "Cada mensaje se evalúa contra estas categorías en orden. La primera coincidencia determina la detección.",
			Color:       0x0099FF,
			Fields:      fields,
			Footer: &discordgo.MessageEmbedFooter{
				Text: "💫 - Developed by PancyStudios | PancyGuard",
			},
		})
	}()
	return nil
}
