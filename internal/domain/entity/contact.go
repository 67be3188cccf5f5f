package entity

// Asuntos aceptados por el formulario de contacto.
const (
	ContactSubjectSupport     = "support"
	ContactSubjectOrder       = "commande"
	ContactSubjectPartnership = "partenariat"
	ContactSubjectOther       = "autre"
)

// ContactMessage mensaje enviado desde el formulario de contacto. No se persiste.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactChannel canal de contacto mostrado junto al formulario.
// Action vacío significa que el canal no es accionable (p. ej. la localización).
type ContactChannel struct {
	Title  string
	Value  string
	Action string
}
