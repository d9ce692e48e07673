// Package antispam provides the /antispam configuration commands.
// Each subcommand mutates the persisted per-guild policy that the
// detection engine reads on every message.
package antispam

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterAntiSpamCommands registers all configuration commands as
// /antispam subcommands
func RegisterAntiSpamCommands(client *discord.ExtendedClient) {
	// Create individual subcommands (each can be in its own file)
	enableCmd := createEnableCommand()
	disableCmd := createDisableCommand()
	showCmd := createShowCommand()
	limitsCmd := createLimitsCommand()
	punishmentCmd := createPunishmentCommand()
	similarityCmd := createSimilarityCommand()
	asciiartCmd := createAsciiArtCommand()
	emojisCmd := createEmojisCommand()
	logchannelCmd := createLogChannelCommand()
	exemptAddCmd := createExemptAddCommand()
	exemptRemoveCmd := createExemptRemoveCommand()
	signaturesCmd := createSignaturesCommand()

	// Build the /antispam command group with all subcommands
	antispamGroup := client.CommandHandler.BuildCommandGroup(
		"antispam",
		"Configura la protección anti-spam del servidor",
		enableCmd,
		disableCmd,
		showCmd,
		limitsCmd,
		punishmentCmd,
		similarityCmd,
		asciiartCmd,
		emojisCmd,
		logchannelCmd,
		exemptAddCmd,
		exemptRemoveCmd,
		signaturesCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(antispamGroup)
}
