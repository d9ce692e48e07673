package antispam

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// createEnableCommand creates the /antispam enable subcommand
func createEnableCommand() *discord.Command {
	return discord.NewCommand(
		"enable",
		"Activa la protección anti-spam en este servidor",
		"antispam",
		enableHandler,
	).WithUserPermissions(discordgo.PermissionManageServer).RequiresDatabase()
}

// createDisableCommand creates the /antispam disable subcommand
func createDisableCommand() *discord.Command {
	return discord.NewCommand(
		"disable",
		"Desactiva la protección anti-spam en este servidor",
		"antispam",
		disableHandler,
	).WithUserPermissions(discordgo.PermissionManageServer).RequiresDatabase()
}

func enableHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		setEnabled(ctx, true)
	}()
	return nil
}

func disableHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		setEnabled(ctx, false)
	}()
	return nil
}

func setEnabled(ctx *discord.CommandContext, enabled bool) {
	if !requireManageServer(ctx) {
		return
	}

	store := policyStore(ctx)
	if store == nil {
		return
	}

	policy, err := store.Update(ctx.Interaction.GuildID, func(p *models.AntiSpamPolicy) {
		p.Enabled = enabled
	})
	if err != nil {
		replyPolicyError(ctx, err)
		return
	}

	if enabled {
		logger.Info(fmt.Sprintf("Anti-spam activado en %s por %s", ctx.Interaction.GuildID, ctx.User().Username), "CMD-AntiSpam")
		ctx.ReplyEmbed(successEmbed(
			"🛡️ Anti-Spam Activado",
			fmt.Sprintf("La protección anti-spam está ahora **activa**.\n\nLímite actual: **%d mensajes en %d segundos**\nCastigo: %s\n\nUsa `/antispam show` para ver toda la configuración.",
				policy.MessageLimit, policy.IntervalSeconds, punishmentLabel(policy.Punishment)),
		))
		return
	}

	logger.Info(fmt.Sprintf("Anti-spam desactivado en %s por %s", ctx.Interaction.GuildID, ctx.User().Username), "CMD-AntiSpam")
	ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "🛡️ Anti-Spam Desactivado",
		Description: "La protección anti-spam está ahora **inactiva**. Los mensajes ya no serán analizados.",
		Color:       0xFF9900,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by PancyStudios | PancyGuard",
		},
	})
}
