package errors

import "errors"

// Business errors
// Nota: Estos son códigos de error (message IDs para i18n).
// Las traducciones están en internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound        = errors.New("error.user_not_found")
	ErrEventoNotFound      = errors.New("error.event_not_found")
	ErrInscripcionNotFound = errors.New("error.enrollment_not_found")
	ErrEmailAlreadyExists  = errors.New("error.email_already_exists")
	ErrYaInscrito          = errors.New("error.already_enrolled")
	ErrInvalidCredentials  = errors.New("error.invalid_credentials")
	ErrUnauthorized        = errors.New("error.unauthorized")
	ErrForbidden           = errors.New("error.forbidden")
	ErrCamposRequeridos    = errors.New("error.missing_required_fields")
)

// Domain errors
var (
	ErrInvalidEmail           = errors.New("error.invalid_email")
	ErrInvalidNivelDificultad = errors.New("error.invalid_difficulty_level")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: El dominio base viene de configuración (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa un error de dominio con contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
