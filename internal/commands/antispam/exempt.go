package antispam

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// exemptOptions are shared between exempt-add and exempt-remove
func exemptOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal a exentar de la detección",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "rol",
			Description: "Rol a exentar de la detección",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a exentar de la detección",
			Required:    false,
		},
	}
}

// createExemptAddCommand creates the /antispam exempt-add subcommand
func createExemptAddCommand() *discord.Command {
	return discord.NewCommand(
		"exempt-add",
		"Añade un canal, rol o usuario a las exenciones",
		"antispam",
		exemptAddHandler,
	).WithOptions(exemptOptions()...).
		WithUserPermissions(discordgo.PermissionManageServer).
		RequiresDatabase()
}

// createExemptRemoveCommand creates the /antispam exempt-remove subcommand
func createExemptRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"exempt-remove",
		"Elimina un canal, rol o usuario de las exenciones",
		"antispam",
		exemptRemoveHandler,
	).WithOptions(exemptOptions()...).
		WithUserPermissions(discordgo.PermissionManageServer).
		RequiresDatabase()
}

func exemptAddHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		mutateExemptions(ctx, true)
	}()
	return nil
}

func exemptRemoveHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		mutateExemptions(ctx, false)
	}()
	return nil
}

func mutateExemptions(ctx *discord.CommandContext, add bool) {
	if !requireManageServer(ctx) {
		return
	}

	channel := ctx.GetChannelOption("canal")
	role := ctx.GetRoleOption("rol")
	user := ctx.GetUserOption("usuario")

	if channel == nil && role == nil && user == nil {
		ctx.ReplyEphemeral("❌ Debes indicar al menos un canal, rol o usuario.")
		return
	}

	store := policyStore(ctx)
	if store == nil {
		return
	}

	var changed []string
	_, err := store.Update(ctx.Interaction.GuildID, func(p *models.AntiSpamPolicy) {
		if channel != nil {
			p.ExemptChannels = updateIDList(p.ExemptChannels, channel.ID, add)
			changed = append(changed, fmt.Sprintf("Canal <#%s>", channel.ID))
		}
		if role != nil {
			p.ExemptRoles = updateIDList(p.ExemptRoles, role.ID, add)
			changed = append(changed, fmt.Sprintf("Rol <@&%s>", role.ID))
		}
		if user != nil {
			p.ExemptUsers = updateIDList(p.ExemptUsers, user.ID, add)
			changed = append(changed, fmt.Sprintf("Usuario <@%s>", user.ID))
		}
	})
	if err != nil {
		replyPolicyError(ctx, err)
		return
	}

	verb := "añadido a"
	title := "✅ Exención Añadida"
	if !add {
		verb = "eliminado de"
		title = "✅ Exención Eliminada"
	}

	description := ""
	for _, c := range changed {
		description += fmt.Sprintf("%s %s la lista de exenciones.\n", c, verb)
	}

	ctx.ReplyEmbed(successEmbed(title, description))
}

// updateIDList adds or removes an id keeping the list free of duplicates
func updateIDList(ids []string, id string, add bool) []string {
	filtered := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			filtered = append(filtered, v)
		}
	}
	if add {
		filtered = append(filtered, id)
	}
	return filtered
}
