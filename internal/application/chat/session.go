package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/neocommerce-api/internal/domain"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
)

// Textos fijos del widget.
const (
	Title        = "Support NeoCommerce"
	Greeting     = "Bonjour ! Je suis votre assistant virtuel. Comment puis-je vous aider aujourd'hui ?"
	UserName     = "Vous"
	BotName      = "Assistant IA"
	DefaultDelay = time.Second
	DefaultIdle  = 30 * time.Minute
)

// Session conversación de un visitante con el asistente.
//
// Cada Send programa una respuesta diferida ligada al contexto de la sesión.
// Close cancela las respuestas pendientes y espera a que terminen; una respuesta
// cancelada nunca modifica el registro.
type Session struct {
	id        string
	responder *Responder
	delay     time.Duration
	log       zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.Mutex
	messages   []entity.ChatMessage
	closed     bool
	lastActive time.Time
}

func newSession(parent context.Context, id string, responder *Responder, delay time.Duration, log zerolog.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		id:        id,
		responder: responder,
		delay:     delay,
		log:       log.With().Str("session", id).Logger(),
		ctx:       ctx,
		cancel:    cancel,
	}
	s.lastActive = time.Now()
	s.messages = append(s.messages, newMessage(Greeting, entity.SenderBot, BotName))
	return s
}

// ID identificador de la sesión.
func (s *Session) ID() string { return s.id }

// Send añade el mensaje del usuario y programa la respuesta del asistente.
func (s *Session) Send(text string) (entity.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entity.ChatMessage{}, fmt.Errorf("mensaje vacío: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return entity.ChatMessage{}, fmt.Errorf("sesión %s cerrada: %w", s.id, domain.ErrConflict)
	}
	msg := newMessage(text, entity.SenderUser, UserName)
	s.messages = append(s.messages, msg)
	s.lastActive = msg.Timestamp
	s.wg.Add(1)
	s.mu.Unlock()

	go s.reply(text)
	return msg, nil
}

func (s *Session) reply(userText string) {
	defer s.wg.Done()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-s.ctx.Done():
		s.log.Debug().Msg("respuesta cancelada")
		return
	case <-timer.C:
	}

	content := s.responder.Reply(userText)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.messages = append(s.messages, newMessage(content, entity.SenderBot, BotName))
}

// Messages copia del registro en orden de llegada. Consultar cuenta como actividad.
func (s *Session) Messages() []entity.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	out := make([]entity.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// LastActive momento de la última actividad del visitante.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Close cancela las respuestas pendientes y espera a que terminen. Es idempotente.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

func newMessage(content, sender, name string) entity.ChatMessage {
	return entity.ChatMessage{
		ID:         uuid.New().String(),
		Content:    content,
		Sender:     sender,
		SenderName: name,
		Timestamp:  time.Now(),
	}
}
