package dev

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// Register registers all dev commands as /dev subcommands (only in dev guild)
func Register(client *discord.ExtendedClient) {
	// Create individual subcommands
	evalCmd := CreateEvalCommand()

	// Create blacklist subcommands
	blacklistAddCmd := CreateBlacklistAddCommand()
	blacklistRemoveCmd := CreateBlacklistRemoveCommand()

	// Build the blacklist subcommand group
	blacklistGroup := client.CommandHandler.BuildSubcommandGroup(
		"dev",
		"blacklist",
		"Comandos de blacklist",
		blacklistAddCmd,
		blacklistRemoveCmd,
	)

	// Build the /dev command group with all subcommands
	devGroup := &discordgo.ApplicationCommand{
		Name:        "dev",
		Description: "Comandos de desarrollo",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        evalCmd.Name,
				Description: evalCmd.Description,
				Options:     evalCmd.Options,
			},
			blacklistGroup,
		},
	}

	// Register the individual commands in the command map
	client.Commands.Set("dev.eval", evalCmd)

	// Register the command group as dev-only command
	client.CommandHandler.AddDevCommand(devGroup)
}

// getUserName resolves the display name of the interaction user
func getUserName(ctx *discord.CommandContext) string {
	if u := ctx.User(); u != nil {
		return u.Username
	}
	return "Desconocido"
}

// sendErrorEmbed sends an ephemeral red error embed
func sendErrorEmbed(ctx *discord.CommandContext, title, description string) {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("❌ %s", title),
		Description: description,
		Color:       0xFF0000,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	ctx.ReplyEphemeralEmbed(embed)
}
