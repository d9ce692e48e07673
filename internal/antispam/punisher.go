package antispam

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// evidenceLimit is the maximum evidence length in a log embed
const evidenceLimit = 1000

// Punisher applies the configured sanction after a detection. Every step is
// best effort: a failing host call is logged at debug level and discarded so
// a broken dependency never stops moderation of subsequent messages.
type Punisher struct {
	mod   Moderator
	gate  *CooldownGate
	now   func() time.Time
	after func(d time.Duration, fn func())
}

// NewPunisher creates a Punisher over the given capabilities
func NewPunisher(mod Moderator, gate *CooldownGate) *Punisher {
	return &Punisher{
		mod:  mod,
		gate: gate,
		now:  time.Now,
		after: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// Punish runs the coordinator for one detection: cooldown gate, message
// deletion, sanction and log emission. It reports whether a sanction cycle
// actually ran (false when debounced).
func (pu *Punisher) Punish(msg *InboundMessage, det *Detection, p *models.AntiSpamPolicy) bool {
	now := pu.now()
	if !pu.gate.TryArm(msg.GuildID, msg.AuthorID, now) {
		logger.Debug(fmt.Sprintf("Castigo debounced para %s en %s", msg.AuthorID, msg.GuildID), "AntiSpam")
		return false
	}

	if err := pu.mod.DeleteMessage(msg.ChannelID, msg.MessageID); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo borrar el mensaje %s: %v", msg.MessageID, err), "AntiSpam")
	}

	pu.applySanction(msg, det, p, now)
	pu.emitLog(msg, det, p)
	return true
}

func (pu *Punisher) applySanction(msg *InboundMessage, det *Detection, p *models.AntiSpamPolicy, now time.Time) {
	reason := fmt.Sprintf("AntiSpam: %s", det.Signature.Description())

	switch p.Punishment {
	case models.PunishmentTimeout:
		duration := time.Duration(p.TimeoutSeconds) * time.Second
		if err := pu.mod.Timeout(msg.GuildID, msg.AuthorID, now.Add(duration)); err != nil {
			logger.Debug(fmt.Sprintf("Timeout nativo falló para %s: %v", msg.AuthorID, err), "AntiSpam")
			pu.muteWithRole(msg, p, duration)
		}
	case models.PunishmentKick:
		if err := pu.mod.Kick(msg.GuildID, msg.AuthorID, reason); err != nil {
			logger.Debug(fmt.Sprintf("Kick falló para %s: %v", msg.AuthorID, err), "AntiSpam")
		}
	case models.PunishmentBan:
		if err := pu.mod.Ban(msg.GuildID, msg.AuthorID, reason); err != nil {
			logger.Debug(fmt.Sprintf("Ban falló para %s: %v", msg.AuthorID, err), "AntiSpam")
		}
	case models.PunishmentNone:
		// detection is still logged, no sanction
	}
}

// muteWithRole is the fallback when the native timeout is unavailable: apply
// the configured muted role and schedule its removal after the timeout
// duration. The removal does not survive a process restart.
func (pu *Punisher) muteWithRole(msg *InboundMessage, p *models.AntiSpamPolicy, duration time.Duration) {
	if p.MutedRole == "" {
		return
	}
	if err := pu.mod.AddRole(msg.GuildID, msg.AuthorID, p.MutedRole); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo aplicar el rol de silencio a %s: %v", msg.AuthorID, err), "AntiSpam")
		return
	}

	guildID, userID, roleID := msg.GuildID, msg.AuthorID, p.MutedRole
	pu.after(duration, func() {
		if err := pu.mod.RemoveRole(guildID, userID, roleID); err != nil {
			logger.Debug(fmt.Sprintf("No se pudo retirar el rol de silencio de %s: %v", userID, err), "AntiSpam")
		}
	})
}

// emitLog sends the detection embed to the configured log channel, when set
// and the bot can send embeds there
func (pu *Punisher) emitLog(msg *InboundMessage, det *Detection, p *models.AntiSpamPolicy) {
	if p.LogChannel == "" {
		return
	}
	perms, err := pu.mod.BotPermissions(p.LogChannel)
	if err != nil {
		logger.Debug(fmt.Sprintf("No se pudieron leer permisos del canal de logs %s: %v", p.LogChannel, err), "AntiSpam")
		return
	}
	needed := int64(discordgo.PermissionSendMessages | discordgo.PermissionEmbedLinks)
	if perms&needed != needed {
		return
	}

	evidence := det.Evidence
	if len([]rune(evidence)) > evidenceLimit {
		evidence = truncate(evidence, evidenceLimit) + " […truncado]"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🛡️ Detección de spam",
		Description: fmt.Sprintf("**Usuario:** %s (<@%s>)\n**Firma:** `%s` (%s)\n**Castigo:** %s\n**Canal:** <#%s>", msg.AuthorName, msg.AuthorID, det.Signature, det.Signature.Description(), p.Punishment, msg.ChannelID),
		Color:       0xE74C3C,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Evidencia",
				Value: fmt.Sprintf("```%s```", evidence),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by PancyStudios | PancyGuard",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if err := pu.mod.SendEmbed(p.LogChannel, embed); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo enviar el log de detección: %v", err), "AntiSpam")
	}
}
