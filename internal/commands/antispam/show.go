package antispam

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// createShowCommand creates the /antispam show subcommand
func createShowCommand() *discord.Command {
	return discord.NewCommand(
		"show",
		"Muestra la configuración anti-spam actual del servidor",
		"antispam",
		showHandler,
	).WithUserPermissions(discordgo.PermissionManageServer).RequiresDatabase()
}

func showHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireManageServer(ctx) {
			return
		}

		store := policyStore(ctx)
		if store == nil {
			return
		}

		policy, err := store.Policy(ctx.Interaction.GuildID)
		if err != nil {
			replyPolicyError(ctx, err)
			return
		}

		status := "❌ Desactivado"
		color := 0xFF0000
		if policy.Enabled {
			status = "✅ Activado"
			color = 0x00FF00
		}

		punishment := punishmentLabel(policy.Punishment)
		if policy.Punishment == models.PunishmentTimeout {
			punishment = fmt.Sprintf("%s (%d segundos)", punishment, policy.TimeoutSeconds)
		}

		logChannel := "No configurado"
		if policy.LogChannel != "" {
			logChannel = fmt.Sprintf("<#%s>", policy.LogChannel)
		}

		embed := &discordgo.MessageEmbed{
			Title: "🛡️ Configuración Anti-Spam",
			Color: color,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Estado", Value: status, Inline: true},
				{Name: "Castigo", Value: punishment, Inline: true},
				{Name: "Canal de registro", Value: logChannel, Inline: true},
				{
					Name:   "🌊 Flood",
					Value:  fmt.Sprintf("Máximo **%d** mensajes en **%d** segundos", policy.MessageLimit, policy.IntervalSeconds),
					Inline: false,
				},
				{
					Name:   "📋 Copypasta",
					Value:  fmt.Sprintf("Similitud mínima: **%.0f%%**", policy.SimilarityThreshold*100),
					Inline: true,
				},
				{
					Name:   "🎨 ASCII-Art",
					Value:  fmt.Sprintf("**%d** caracteres por línea, **%d** líneas", policy.AsciiArtThreshold, policy.AsciiArtMinLines),
					Inline: true,
				},
				{
					Name:   "😀 Emojis",
					Value:  fmt.Sprintf("**%d** en total / **%d** únicos", policy.EmojiTotalThreshold, policy.EmojiUniqueThreshold),
					Inline: true,
				},
				{Name: "Exenciones", Value: formatExemptions(policy), Inline: false},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: "💫 - Developed by PancyStudios | PancyGuard",
			},
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}

// formatExemptions renders the exemption lists as mention strings
func formatExemptions(policy *models.AntiSpamPolicy) string {
	var parts []string
	if len(policy.ExemptChannels) > 0 {
		parts = append(parts, "Canales: "+mentionList(policy.ExemptChannels, "<#%s>"))
	}
	if len(policy.ExemptRoles) > 0 {
		parts = append(parts, "Roles: "+mentionList(policy.ExemptRoles, "<@&%s>"))
	}
	if len(policy.ExemptUsers) > 0 {
		parts = append(parts, "Usuarios: "+mentionList(policy.ExemptUsers, "<@%s>"))
	}
	if len(parts) == 0 {
		return "Ninguna"
	}
	return strings.Join(parts, "\n")
}

func mentionList(ids []string, format string) string {
	mentions := make([]string, 0, len(ids))
	for _, id := range ids {
		mentions = append(mentions, fmt.Sprintf(format, id))
	}
	return strings.Join(mentions, " ")
}
