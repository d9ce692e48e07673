// Package models contains the MongoDB document types shared across the bot.
package models

import "fmt"

// PunishmentKind is the sanction applied when a detection fires
type PunishmentKind string

const (
	PunishmentTimeout PunishmentKind = "timeout"
	PunishmentKick    PunishmentKind = "kick"
	PunishmentBan     PunishmentKind = "ban"
	PunishmentNone    PunishmentKind = "none"
)

// IsValid returns true if the kind is one of the known sanctions
func (k PunishmentKind) IsValid() bool {
	switch k {
	case PunishmentTimeout, PunishmentKick, PunishmentBan, PunishmentNone:
		return true
	}
	return false
}

// AntiSpamPolicy representa el documento de configuración del antispam
// en la colección "antispam_policies". Un documento por servidor.
type AntiSpamPolicy struct {
	GuildID              string         `bson:"guildId" json:"guildId"`
	Enabled              bool           `bson:"enabled" json:"enabled"`
	MessageLimit         int            `bson:"messageLimit" json:"messageLimit"`
	IntervalSeconds      int            `bson:"intervalSeconds" json:"intervalSeconds"`
	SimilarityThreshold  float64        `bson:"similarityThreshold" json:"similarityThreshold"`
	AsciiArtThreshold    int            `bson:"asciiArtThreshold" json:"asciiArtThreshold"`
	AsciiArtMinLines     int            `bson:"asciiArtMinLines" json:"asciiArtMinLines"`
	EmojiTotalThreshold  int            `bson:"emojiTotalThreshold" json:"emojiTotalThreshold"`
	EmojiUniqueThreshold int            `bson:"emojiUniqueThreshold" json:"emojiUniqueThreshold"`
	Punishment           PunishmentKind `bson:"punishment" json:"punishment"`
	TimeoutSeconds       int            `bson:"timeoutSeconds" json:"timeoutSeconds"`
	MutedRole            string         `bson:"mutedRole,omitempty" json:"mutedRole,omitempty"`
	ExemptChannels       []string       `bson:"exemptChannels" json:"exemptChannels"`
	ExemptRoles          []string       `bson:"exemptRoles" json:"exemptRoles"`
	ExemptUsers          []string       `bson:"exemptUsers" json:"exemptUsers"`
	LogChannel           string         `bson:"logChannel,omitempty" json:"logChannel,omitempty"`
}

// DefaultAntiSpamPolicy returns the policy used for guilds without a stored document.
// Detection stays off until an administrator enables it explicitly.
func DefaultAntiSpamPolicy(guildID string) *AntiSpamPolicy {
	return &AntiSpamPolicy{
		GuildID:              guildID,
		Enabled:              false,
		MessageLimit:         5,
		IntervalSeconds:      5,
		SimilarityThreshold:  0.90,
		AsciiArtThreshold:    80,
		AsciiArtMinLines:     8,
		EmojiTotalThreshold:  15,
		EmojiUniqueThreshold: 10,
		Punishment:           PunishmentTimeout,
		TimeoutSeconds:       600,
		ExemptChannels:       []string{},
		ExemptRoles:          []string{},
		ExemptUsers:          []string{},
	}
}

// Validate checks the policy invariants before it is persisted
func (p *AntiSpamPolicy) Validate() error {
	if p.GuildID == "" {
		return fmt.Errorf("guildId vacío")
	}
	if p.MessageLimit < 1 {
		return fmt.Errorf("messageLimit debe ser al menos 1")
	}
	if p.IntervalSeconds < 1 {
		return fmt.Errorf("intervalSeconds debe ser al menos 1")
	}
	if p.SimilarityThreshold <= 0 || p.SimilarityThreshold >= 1 {
		return fmt.Errorf("similarityThreshold debe estar estrictamente entre 0 y 1")
	}
	if p.AsciiArtThreshold < 1 || p.AsciiArtMinLines < 1 {
		return fmt.Errorf("los umbrales de ascii-art deben ser al menos 1")
	}
	if p.EmojiTotalThreshold < 1 || p.EmojiUniqueThreshold < 1 {
		return fmt.Errorf("los umbrales de emojis deben ser al menos 1")
	}
	if !p.Punishment.IsValid() {
		return fmt.Errorf("castigo desconocido: %q", p.Punishment)
	}
	if p.Punishment == PunishmentTimeout && p.TimeoutSeconds < 1 {
		return fmt.Errorf("timeoutSeconds debe ser al menos 1")
	}
	return nil
}

// IsChannelExempt returns true if the channel is excluded from detection
func (p *AntiSpamPolicy) IsChannelExempt(channelID string) bool {
	return containsID(p.ExemptChannels, channelID)
}

// IsUserExempt returns true if the user id is excluded from detection
func (p *AntiSpamPolicy) IsUserExempt(userID string) bool {
	return containsID(p.ExemptUsers, userID)
}

// IsRoleExempt returns true if any of the member's roles is excluded
func (p *AntiSpamPolicy) IsRoleExempt(roleIDs []string) bool {
	for _, id := range roleIDs {
		if containsID(p.ExemptRoles, id) {
			return true
		}
	}
	return false
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
