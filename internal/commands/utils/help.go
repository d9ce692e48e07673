package utils

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Muestra información de ayuda",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **Ayuda de PancyGuard Go**\n\n" +
				"**Comandos disponibles:**\n" +
				"• `/utils ping` - Comprueba la latencia\n" +
				"• `/utils status` - Estado del bot\n" +
				"• `/utils stats` - Estadísticas del bot\n" +
				"• `/antispam enable` - Activa la protección anti-spam\n" +
				"• `/antispam disable` - Desactiva la protección\n" +
				"• `/antispam show` - Muestra la configuración actual\n" +
				"• `/antispam limits <mensajes> <segundos>` - Ajusta el límite de flood\n" +
				"• `/antispam punishment <tipo>` - Elige la sanción\n" +
				"• `/antispam logchannel <canal>` - Canal de registros\n" +
				"• `/antispam exempt-add` / `/antispam exempt-remove` - Exenciones\n" +
				"• `/mod ban <usuario> <razón>` - Banea a un usuario\n" +
				"• `/mod kick <usuario> <razón>` - Expulsa a un usuario\n" +
				"• `/mod warn <usuario> <razón>` - Advierte a un usuario\n" +
				"• `/mod mute <usuario> <duración> <razón>` - Mutea a un usuario\n" +
				"• `/mod warnings <usuario>` - Lista las advertencias\n" +
				"• `/mod removewarn <usuario> <id>` - Elimina una advertencia",
		)
	}()
	return nil
}
