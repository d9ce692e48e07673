package antispam

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// requireManageServer checks the invoker can manage the guild. Replies
// ephemerally and returns false when they cannot.
func requireManageServer(ctx *discord.CommandContext) bool {
	if ctx.Interaction.GuildID == "" {
		ctx.ReplyEphemeral("❌ Este comando solo puede usarse dentro de un servidor.")
		return false
	}

	perms, err := ctx.Session.UserChannelPermissions(ctx.User().ID, ctx.Interaction.ChannelID)
	if err != nil {
		logger.Warn(fmt.Sprintf("Error comprobando permisos de %s: %v", ctx.User().ID, err), "CMD-AntiSpam")
		ctx.ReplyEphemeral("❌ No se pudieron comprobar tus permisos.")
		return false
	}

	if perms&discordgo.PermissionManageServer == 0 && perms&discordgo.PermissionAdministrator == 0 {
		ctx.ReplyEphemeral("❌ Necesitas el permiso **Gestionar Servidor** para configurar el anti-spam.")
		return false
	}
	return true
}

// policyStore returns the shared store, replying with an error if the
// database layer is not ready
func policyStore(ctx *discord.CommandContext) *database.PolicyStore {
	store, err := database.NewPolicyStore()
	if err != nil {
		logger.Error(fmt.Sprintf("PolicyStore no disponible: %v", err), "CMD-AntiSpam")
		ctx.ReplyEphemeral("❌ La base de datos no está disponible. Inténtalo más tarde.")
		return nil
	}
	return store
}

// replyPolicyError maps a policy update failure to an ephemeral reply
func replyPolicyError(ctx *discord.CommandContext, err error) {
	logger.Error(fmt.Sprintf("Error actualizando política: %v", err), "CMD-AntiSpam")
	ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo guardar la configuración: %v", err))
}

// successEmbed builds the standard green confirmation embed
func successEmbed(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       0x00FF00,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by PancyStudios | PancyGuard",
		},
	}
}

// punishmentLabel returns the human-readable Spanish name of a sanction
func punishmentLabel(kind models.PunishmentKind) string {
	switch kind {
	case models.PunishmentTimeout:
		return "🔇 Timeout"
	case models.PunishmentKick:
		return "👢 Expulsión"
	case models.PunishmentBan:
		return "🔨 Baneo"
	case models.PunishmentNone:
		return "📋 Solo registrar"
	default:
		return string(kind)
	}
}
