package models

// Incident representa una detección de spam registrada en la colección
// "antispam_incidents". También es el payload publicado por MQTT y por el
// feed en vivo del servidor web.
type Incident struct {
	ID          string `bson:"_id" json:"id"`
	GuildID     string `bson:"guildId" json:"guildId"`
	ChannelID   string `bson:"channelId" json:"channelId"`
	UserID      string `bson:"userId" json:"userId"`
	Username    string `bson:"username" json:"username"`
	Signature   string `bson:"signature" json:"signature"`
	Description string `bson:"description" json:"description"`
	Punishment  string `bson:"punishment" json:"punishment"`
	Punished    bool   `bson:"punished" json:"punished"`
	Evidence    string `bson:"evidence" json:"evidence"`
	Timestamp   int64  `bson:"timestamp" json:"timestamp"`
}
