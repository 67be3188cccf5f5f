package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/neocommerce-api/internal/application/dto"
	"github.com/jhoicas/neocommerce-api/internal/domain"
	"github.com/jhoicas/neocommerce-api/internal/domain/entity"
	"github.com/jhoicas/neocommerce-api/internal/domain/repository"
)

// contactSubjects asuntos del selector, en el orden del formulario.
var contactSubjects = []dto.ContactSubjectOption{
	{Value: entity.ContactSubjectSupport, Label: "Support technique"},
	{Value: entity.ContactSubjectOrder, Label: "Question sur une commande"},
	{Value: entity.ContactSubjectPartnership, Label: "Partenariat"},
	{Value: entity.ContactSubjectOther, Label: "Autre"},
}

// ContactUseCase canales de contacto y envío del formulario.
type ContactUseCase struct {
	content repository.StorefrontContent
	log     zerolog.Logger
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(content repository.StorefrontContent, log zerolog.Logger) *ContactUseCase {
	return &ContactUseCase{content: content, log: log}
}

// Channels canales de contacto y asuntos aceptados.
func (uc *ContactUseCase) Channels() *dto.ContactInfoResponse {
	channels := uc.content.ContactChannels()
	out := &dto.ContactInfoResponse{
		Channels: make([]dto.ContactChannelResponse, 0, len(channels)),
		Subjects: contactSubjects,
	}
	for _, ch := range channels {
		out.Channels = append(out.Channels, dto.ContactChannelResponse{Title: ch.Title, Value: ch.Value, Action: ch.Action})
	}
	return out
}

// Submit valida el formulario y devuelve el acuse. El mensaje no se persiste.
func (uc *ContactUseCase) Submit(_ context.Context, in dto.ContactRequest) (*dto.AckResponse, error) {
	msg := entity.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
	if msg.Name == "" {
		return nil, fmt.Errorf("name requerido: %w", domain.ErrInvalidInput)
	}
	email, err := parseEmail(in.Email)
	if err != nil {
		return nil, err
	}
	msg.Email = email
	if !validSubject(msg.Subject) {
		return nil, fmt.Errorf("subject %q no soportado: %w", in.Subject, domain.ErrInvalidInput)
	}
	if msg.Message == "" {
		return nil, fmt.Errorf("message requerido: %w", domain.ErrInvalidInput)
	}

	ref := uuid.New().String()
	uc.log.Info().
		Str("reference", ref).
		Str("email", msg.Email).
		Str("subject", msg.Subject).
		Int("length", len(msg.Message)).
		Msg("mensaje de contacto recibido")

	return &dto.AckResponse{
		Title:     "Message envoyé !",
		Message:   "Nous vous répondrons dans les plus brefs délais.",
		Reference: ref,
	}, nil
}

func validSubject(s string) bool {
	for _, opt := range contactSubjects {
		if opt.Value == s {
			return true
		}
	}
	return false
}
