// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (utils, antispam, mod, dev)
package commands

import (
	antispamcmd "github.com/PancyStudios/PancyGuardGo/internal/commands/antispam"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/dev"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/mod"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/utils"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
// Add your command registration calls here
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands (/utils ping, /utils status, /utils help, /utils stats)
	utils.RegisterUtilsCommands(client)

	// Anti-spam configuration (/antispam enable, /antispam limits, ...)
	antispamcmd.RegisterAntiSpamCommands(client)

	// Moderation commands (/mod ban, /mod kick, /mod warn, /mod mute)
	mod.RegisterModCommands(client)

	// Developer commands (/dev eval, /dev blacklist)
	dev.Register(client)
}
