package antispam

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Moderator is the set of host-platform capabilities the punishment
// coordinator consumes. Tests inject a fake; production uses the discordgo
// session adapter from NewSessionModerator.
type Moderator interface {
	DeleteMessage(channelID, messageID string) error
	Timeout(guildID, userID string, until time.Time) error
	RemoveTimeout(guildID, userID string) error
	Kick(guildID, userID, reason string) error
	Ban(guildID, userID, reason string) error
	AddRole(guildID, userID, roleID string) error
	RemoveRole(guildID, userID, roleID string) error
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error
	BotPermissions(channelID string) (int64, error)
}

// sessionModerator adapts a discordgo session to the Moderator interface
type sessionModerator struct {
	session *discordgo.Session
}

// NewSessionModerator wraps a discordgo session as a Moderator
func NewSessionModerator(s *discordgo.Session) Moderator {
	return &sessionModerator{session: s}
}

func (m *sessionModerator) DeleteMessage(channelID, messageID string) error {
	return m.session.ChannelMessageDelete(channelID, messageID)
}

func (m *sessionModerator) Timeout(guildID, userID string, until time.Time) error {
	return m.session.GuildMemberTimeout(guildID, userID, &until)
}

func (m *sessionModerator) RemoveTimeout(guildID, userID string) error {
	return m.session.GuildMemberTimeout(guildID, userID, nil)
}

func (m *sessionModerator) Kick(guildID, userID, reason string) error {
	return m.session.GuildMemberDeleteWithReason(guildID, userID, reason)
}

func (m *sessionModerator) Ban(guildID, userID, reason string) error {
	return m.session.GuildBanCreateWithReason(guildID, userID, reason, 0)
}

func (m *sessionModerator) AddRole(guildID, userID, roleID string) error {
	return m.session.GuildMemberRoleAdd(guildID, userID, roleID)
}

func (m *sessionModerator) RemoveRole(guildID, userID, roleID string) error {
	return m.session.GuildMemberRoleRemove(guildID, userID, roleID)
}

func (m *sessionModerator) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	_, err := m.session.ChannelMessageSendEmbed(channelID, embed)
	return err
}

func (m *sessionModerator) BotPermissions(channelID string) (int64, error) {
	return m.session.UserChannelPermissions(m.session.State.User.ID, channelID)
}
