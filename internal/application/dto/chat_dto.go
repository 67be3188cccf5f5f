package dto

import "time"

// ChatMessageResponse mensaje del registro de la sesión.
type ChatMessageResponse struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Sender     string    `json:"sender"`
	SenderName string    `json:"sender_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// ChatSessionResponse sesión de chat abierta.
type ChatSessionResponse struct {
	ID       string                `json:"id"`
	Title    string                `json:"title"`
	Messages []ChatMessageResponse `json:"messages"`
}

// SendChatMessageRequest mensaje del usuario.
type SendChatMessageRequest struct {
	Content string `json:"content"`
}

// QuickActionResponse acción rápida del widget: Label es el botón, Text el mensaje precargado.
type QuickActionResponse struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}
