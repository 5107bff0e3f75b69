package entities

import "time"

// Participacion representa la inscripción de un usuario a un evento.
// Cada par (UserID, EventoID) admite como máximo una inscripción.
type Participacion struct {
	ID               string
	UserID           string
	EventoID         string
	FechaInscripcion time.Time
	Usuario          *User
	Evento           *Evento
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
