package dto

// ContactRequest envío del formulario de contacto.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactChannelResponse canal de contacto. Action vacío = no accionable.
type ContactChannelResponse struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Action string `json:"action,omitempty"`
}

// ContactSubjectOption opción del selector de asunto.
type ContactSubjectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ContactInfoResponse canales y asuntos del formulario.
type ContactInfoResponse struct {
	Channels []ContactChannelResponse `json:"channels"`
	Subjects []ContactSubjectOption   `json:"subjects"`
}
