package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/neocommerce-api/internal/application/dto"
	"github.com/jhoicas/neocommerce-api/internal/domain"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
)

// QuickActions botones del widget con su mensaje precargado.
var QuickActions = []dto.QuickActionResponse{
	{Label: "Aide commande", Text: "J'ai besoin d'aide avec une commande"},
	{Label: "Livraison", Text: "Informations sur la livraison"},
	{Label: "Vendeur", Text: "Contacter un vendeur"},
}

// Service registro de sesiones de chat abiertas.
//
// Un barrido periódico cierra las sesiones sin actividad durante idle; se detiene con CloseAll.
type Service struct {
	responder *Responder
	delay     time.Duration
	idle      time.Duration
	log       zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	sessions map[string]*Session
	stopped  bool
}

// NewService construye el servicio y arranca el barrido de sesiones inactivas.
// delay <= 0 usa DefaultDelay; idle <= 0 usa DefaultIdle.
func NewService(responder *Responder, delay, idle time.Duration, log zerolog.Logger) *Service {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if idle <= 0 {
		idle = DefaultIdle
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{
		responder: responder,
		delay:     delay,
		idle:      idle,
		log:       log,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
		sessions:  make(map[string]*Session),
	}
	go s.sweepLoop()
	return s
}

func (s *Service) sweepLoop() {
	defer close(s.done)

	ticker := time.NewTicker(max(s.idle/2, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case now := <-ticker.C:
			s.sweepIdle(now)
		}
	}
}

// sweepIdle cierra las sesiones cuya última actividad es anterior a now-idle.
func (s *Service) sweepIdle(now time.Time) int {
	s.mu.Lock()
	var stale []*Session
	for id, sess := range s.sessions {
		if now.Sub(sess.LastActive()) >= s.idle {
			stale = append(stale, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		sess.Close()
	}
	if len(stale) > 0 {
		s.log.Debug().Int("closed", len(stale)).Msg("sesiones de chat inactivas cerradas")
	}
	return len(stale)
}

// Open abre una sesión nueva con el saludo del asistente.
func (s *Service) Open(_ context.Context) (*dto.ChatSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil, fmt.Errorf("servicio de chat detenido: %w", domain.ErrConflict)
	}
	sess := newSession(s.ctx, uuid.New().String(), s.responder, s.delay, s.log)
	s.sessions[sess.ID()] = sess
	s.log.Debug().Str("session", sess.ID()).Int("open", len(s.sessions)).Msg("sesión de chat abierta")

	return &dto.ChatSessionResponse{
		ID:       sess.ID(),
		Title:    Title,
		Messages: toMessageResponses(sess.Messages()),
	}, nil
}

// Send envía un mensaje del usuario a la sesión indicada.
func (s *Service) Send(_ context.Context, id string, in dto.SendChatMessageRequest) (*dto.ChatMessageResponse, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	msg, err := sess.Send(in.Content)
	if err != nil {
		return nil, err
	}
	out := toMessageResponse(msg)
	return &out, nil
}

// Messages registro de la sesión.
func (s *Service) Messages(_ context.Context, id string) ([]dto.ChatMessageResponse, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toMessageResponses(sess.Messages()), nil
}

// Close cierra la sesión y descarta sus respuestas pendientes.
func (s *Service) Close(_ context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("sesión %s: %w", id, domain.ErrNotFound)
	}
	sess.Close()
	return nil
}

// CloseAll cierra todas las sesiones (apagado del servidor). Open falla a partir de aquí.
func (s *Service) CloseAll() {
	s.mu.Lock()
	s.stopped = true
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	s.cancel()
	<-s.done
	for _, sess := range sessions {
		sess.Close()
	}
	s.log.Info().Int("sessions", len(sessions)).Msg("sesiones de chat cerradas")
}

// Len número de sesiones abiertas.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Service) get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("sesión %s: %w", id, domain.ErrNotFound)
	}
	return sess, nil
}

func toMessageResponse(m entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		ID:         m.ID,
		Content:    m.Content,
		Sender:     m.Sender,
		SenderName: m.SenderName,
		Timestamp:  m.Timestamp,
	}
}

func toMessageResponses(msgs []entity.ChatMessage) []dto.ChatMessageResponse {
	out := make([]dto.ChatMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	return out
}
