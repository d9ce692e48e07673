// Package antispam implements the heuristic spam-detection and punishment
// engine: a per-user sliding window of recent messages, a fixed pipeline of
// evaluators and a best-effort punishment coordinator.
package antispam

// Signature is the stable code of a detection category
type Signature string

const (
	SigFlood       Signature = "flood"
	SigCopypasta   Signature = "copypasta"
	SigCopypasta5m Signature = "copypasta-5m"
	SigASCIIArt    Signature = "ascii-art"
	SigEmojiSpam   Signature = "emoji-spam"
	SigZalgo       Signature = "zalgo"
	SigMassMention Signature = "mass-mention"
)

var signatureDescriptions = map[Signature]string{
	SigFlood:       "Demasiados mensajes en un intervalo corto",
	SigCopypasta:   "Mensajes casi idénticos repetidos de forma consecutiva",
	SigCopypasta5m: "Mensajes casi idénticos repetidos en los últimos 5 minutos",
	SigASCIIArt:    "Bloques de texto o arte ASCII de gran tamaño",
	SigEmojiSpam:   "Cantidad excesiva de emojis en un solo mensaje",
	SigZalgo:       "Texto zalgo (marcas diacríticas combinadas en exceso)",
	SigMassMention: "Menciones masivas de usuarios o @everyone/@here",
}

// Description returns the human readable description of the signature
func (s Signature) Description() string {
	if d, ok := signatureDescriptions[s]; ok {
		return d
	}
	return "Desconocido"
}

// AllSignatures returns every signature in evaluation order
func AllSignatures() []Signature {
	return []Signature{
		SigFlood,
		SigCopypasta,
		SigCopypasta5m,
		SigASCIIArt,
		SigEmojiSpam,
		SigZalgo,
		SigMassMention,
	}
}

// Detection is the result of a positive evaluator match
type Detection struct {
	Signature Signature
	Evidence  string
}
