package chat

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jhoicas/neocommerce-api/internal/application/dto"
	"github.com/jhoicas/neocommerce-api/internal/domain"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixedPicker int

func (f fixedPicker) Intn(int) int { return int(f) }

// ──────────────────────────────────────────────────────────────────────────────
// Picker y Responder
// ──────────────────────────────────────────────────────────────────────────────

func TestSeededPicker_Determinista(t *testing.T) {
	a, b := NewSeededPicker(2024), NewSeededPicker(2024)
	for i := 0; i < 50; i++ {
		x := a.Intn(len(Replies))
		require.Equal(t, x, b.Intn(len(Replies)))
		require.GreaterOrEqual(t, x, 0)
		require.Less(t, x, len(Replies))
	}
	assert.Equal(t, 0, a.Intn(0))
}

func TestResponder_Reply(t *testing.T) {
	assert.Equal(t, Replies[3], NewResponder(fixedPicker(3)).Reply("peu importe"))
	assert.Equal(t, Replies[0], NewResponder(fixedPicker(42)).Reply(""), "índice fuera de rango cae en la primera respuesta")

	r := NewResponder(NewSeededPicker(7))
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		reply := r.Reply("bonjour")
		require.Contains(t, Replies, reply)
		seen[reply] = true
	}
	assert.Len(t, seen, len(Replies), "todas las respuestas son alcanzables")
}

func TestResponder_MismaSemillaMismaSecuencia(t *testing.T) {
	a, b := NewResponder(NewSeededPicker(11)), NewResponder(NewSeededPicker(11))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Reply("x"), b.Reply("y"))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Session
// ──────────────────────────────────────────────────────────────────────────────

func newTestSession(delay time.Duration) *Session {
	return newSession(context.Background(), "s1", NewResponder(fixedPicker(1)), delay, zerolog.Nop())
}

func TestSession_Saludo(t *testing.T) {
	s := newTestSession(time.Millisecond)
	defer s.Close()

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, Greeting, msgs[0].Content)
	assert.Equal(t, entity.SenderBot, msgs[0].Sender)
	assert.Equal(t, BotName, msgs[0].SenderName)
}

func TestSession_SendYRespuestaDiferida(t *testing.T) {
	s := newTestSession(10 * time.Millisecond)
	defer s.Close()

	msg, err := s.Send("  Où est mon colis ?  ")
	require.NoError(t, err)
	assert.Equal(t, "Où est mon colis ?", msg.Content)
	assert.Equal(t, UserName, msg.SenderName)

	require.Eventually(t, func() bool { return len(s.Messages()) == 3 }, time.Second, 5*time.Millisecond)
	last := s.Messages()[2]
	assert.Equal(t, Replies[1], last.Content)
	assert.Equal(t, entity.SenderBot, last.Sender)
}

func TestSession_TextoVacio(t *testing.T) {
	s := newTestSession(time.Millisecond)
	defer s.Close()

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := s.Send(text)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Len(t, s.Messages(), 1)
}

func TestSession_CloseCancelaPendientes(t *testing.T) {
	s := newTestSession(time.Hour)

	for i := 0; i < 5; i++ {
		_, err := s.Send("bonjour")
		require.NoError(t, err)
	}

	done := make(chan struct{})
	go func() {
		s.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close no canceló las respuestas pendientes")
	}

	assert.Len(t, s.Messages(), 6, "ninguna respuesta cancelada entra en el registro")

	_, err := s.Send("encore là ?")
	assert.ErrorIs(t, err, domain.ErrConflict)

	s.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Service
// ──────────────────────────────────────────────────────────────────────────────

func TestService_Ciclo(t *testing.T) {
	svc := NewService(NewResponder(fixedPicker(4)), 5*time.Millisecond, time.Hour, zerolog.Nop())
	defer svc.CloseAll()
	ctx := context.Background()

	sess, err := svc.Open(ctx)
	require.NoError(t, err)
	assert.Equal(t, Title, sess.Title)
	require.Len(t, sess.Messages, 1)
	assert.Equal(t, 1, svc.Len())

	_, err = svc.Send(ctx, sess.ID, dto.SendChatMessageRequest{Content: QuickActions[1].Text})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		msgs, err := svc.Messages(ctx, sess.ID)
		return err == nil && len(msgs) == 3
	}, time.Second, 5*time.Millisecond)

	msgs, err := svc.Messages(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Informations sur la livraison", msgs[1].Content)
	assert.Equal(t, Replies[4], msgs[2].Content)

	require.NoError(t, svc.Close(ctx, sess.ID))
	assert.Equal(t, 0, svc.Len())
	assert.ErrorIs(t, svc.Close(ctx, sess.ID), domain.ErrNotFound)
}

func TestService_SesionDesconocida(t *testing.T) {
	svc := NewService(NewResponder(fixedPicker(0)), 0, 0, zerolog.Nop())
	defer svc.CloseAll()
	ctx := context.Background()

	_, err := svc.Send(ctx, "nope", dto.SendChatMessageRequest{Content: "hola"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Messages(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_CloseAll(t *testing.T) {
	svc := NewService(NewResponder(fixedPicker(0)), time.Hour, time.Hour, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		sess, err := svc.Open(ctx)
		require.NoError(t, err)
		_, err = svc.Send(ctx, sess.ID, dto.SendChatMessageRequest{Content: "bonjour"})
		require.NoError(t, err)
	}

	svc.CloseAll()
	assert.Equal(t, 0, svc.Len())

	_, err := svc.Open(ctx)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestService_BarridoCierraSesionesInactivas(t *testing.T) {
	svc := NewService(NewResponder(fixedPicker(0)), time.Hour, 20*time.Millisecond, zerolog.Nop())
	defer svc.CloseAll()
	ctx := context.Background()

	sess, err := svc.Open(ctx)
	require.NoError(t, err)
	_, err = svc.Send(ctx, sess.ID, dto.SendChatMessageRequest{Content: "bonjour"})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return svc.Len() == 0 }, time.Second, 5*time.Millisecond)

	_, err = svc.Messages(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_SweepIdleConservaSesionesActivas(t *testing.T) {
	svc := NewService(NewResponder(fixedPicker(0)), time.Hour, time.Hour, zerolog.Nop())
	defer svc.CloseAll()
	ctx := context.Background()

	stale, err := svc.Open(ctx)
	require.NoError(t, err)
	active, err := svc.Open(ctx)
	require.NoError(t, err)

	svc.mu.Lock()
	old := svc.sessions[stale.ID]
	svc.mu.Unlock()
	old.mu.Lock()
	old.lastActive = time.Now().Add(-2 * time.Hour)
	old.mu.Unlock()

	assert.Equal(t, 1, svc.sweepIdle(time.Now()))
	assert.Equal(t, 1, svc.Len())

	_, err = svc.Messages(ctx, active.ID)
	assert.NoError(t, err)
	_, err = svc.Messages(ctx, stale.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = old.Send("encore là ?")
	assert.ErrorIs(t, err, domain.ErrConflict, "la sesión barrida queda cerrada")
}

func TestSession_ActividadActualizaLastActive(t *testing.T) {
	s := newTestSession(time.Hour)
	defer s.Close()

	before := s.LastActive()
	time.Sleep(2 * time.Millisecond)
	_, err := s.Send("bonjour")
	require.NoError(t, err)
	assert.True(t, s.LastActive().After(before))
}

func TestQuickActions(t *testing.T) {
	labels := make([]string, 0, len(QuickActions))
	for _, qa := range QuickActions {
		labels = append(labels, qa.Label)
	}
	assert.Equal(t, []string{"Aide commande", "Livraison", "Vendeur"}, labels)
	assert.Equal(t, "J'ai besoin d'aide avec une commande", QuickActions[0].Text)
}
