package entity

import "time"

// Emisores posibles de un mensaje del chat.
const (
	SenderUser   = "user"
	SenderBot    = "bot"
	SenderVendor = "vendor"
)

// ChatMessage mensaje del registro de una sesión de chat.
type ChatMessage struct {
	ID         string
	Content    string
	Sender     string
	SenderName string
	Timestamp  time.Time
}
