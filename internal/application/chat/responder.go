// Package chat implementa el widget de soporte simulado: sesiones con registro de mensajes y
// respuestas automáticas diferidas elegidas al azar entre textos predefinidos.
package chat

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Replies respuestas predefinidas del asistente.
var Replies = []string{
	"Je vous aide tout de suite ! Pouvez-vous me donner plus de détails sur votre demande ?",
	"C'est une excellente question ! Laissez-moi vous connecter avec l'un de nos spécialistes.",
	"Je peux vous aider avec ça. Voulez-vous que je vous montre nos produits recommandés ?",
	"Parfait ! Je vais transférer votre demande à notre équipe de support.",
	"Merci pour votre message ! Voici quelques options qui pourraient vous intéresser...",
}

// Picker fuente de aleatoriedad: Intn devuelve un entero en [0, n).
type Picker interface {
	Intn(n int) int
}

type randPicker struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededPicker devuelve un Picker determinista (tests).
func NewSeededPicker(seed uint64) Picker {
	return &randPicker{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewPicker devuelve un Picker sembrado con la hora actual.
func NewPicker() Picker {
	return NewSeededPicker(uint64(time.Now().UnixNano()))
}

func (p *randPicker) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.r.IntN(n)
}

// Responder elige la respuesta del asistente. El texto del usuario no influye en el contenido.
type Responder struct {
	picker  Picker
	replies []string
}

// NewResponder construye el selector con las respuestas predefinidas.
func NewResponder(picker Picker) *Responder {
	return &Responder{picker: picker, replies: Replies}
}

// Reply devuelve una de las respuestas, con probabilidad uniforme.
func (r *Responder) Reply(_ string) string {
	i := r.picker.Intn(len(r.replies))
	if i < 0 || i >= len(r.replies) {
		i = 0
	}
	return r.replies[i]
}
