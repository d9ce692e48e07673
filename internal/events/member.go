// Package events provides event handlers for member events
package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancyGuardGo/internal/antispam"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberAdd)
	client.Session.AddHandler(onGuildMemberRemove)
}

// onGuildMemberAdd is called when a new member joins the server
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Debug(fmt.Sprintf("👋 Nuevo miembro: %s en servidor %s",
		m.User.Username, m.GuildID), "Member")
}

// onGuildMemberRemove is called when a member leaves the server. Their
// message window is dropped so stale history cannot trigger detections if
// they rejoin later.
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Debug(fmt.Sprintf("👋 Adiós: %s salió del servidor %s",
		m.User.Username, m.GuildID), "Member")

	if engine := antispam.Get(); engine != nil {
		engine.ForgetUser(m.GuildID, m.User.ID)
	}
}
