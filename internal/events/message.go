// Package events provides event handlers for message events
package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancyGuardGo/internal/antispam"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMessageCreate)
	client.Session.AddHandler(onMessageDelete)
}

// onMessageCreate feeds every guild message into the anti-spam engine
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	engine := antispam.Get()
	if engine == nil || m.Author == nil {
		return
	}

	mentions := make([]string, 0, len(m.Mentions))
	for _, u := range m.Mentions {
		mentions = append(mentions, u.ID)
	}

	var roles []string
	if m.Member != nil {
		roles = m.Member.Roles
	}

	engine.HandleMessage(&antispam.InboundMessage{
		GuildID:    m.GuildID,
		ChannelID:  m.ChannelID,
		MessageID:  m.ID,
		AuthorID:   m.Author.ID,
		AuthorName: m.Author.Username,
		AuthorBot:  m.Author.Bot,
		Webhook:    m.WebhookID != "",
		Content:    m.Content,
		Mentions:   mentions,
		Roles:      roles,
		Timestamp:  m.Timestamp,
	})
}

// onMessageDelete is called when a message is deleted
func onMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	logger.Debug(fmt.Sprintf("🗑️ Mensaje eliminado: ID %s en canal %s",
		m.ID, m.ChannelID), "Message")
}
