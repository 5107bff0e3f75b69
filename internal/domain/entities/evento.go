package entities

import (
	"errors"
	"strings"
	"time"
)

// NivelDificultad representa el nivel de dificultad de un evento
type NivelDificultad string

const (
	NivelPrincipiante NivelDificultad = "PRINCIPIANTE"
	NivelIntermedio   NivelDificultad = "INTERMEDIO"
	NivelAvanzado     NivelDificultad = "AVANZADO"
)

// ParseNivelDificultad normaliza y valida un nivel de dificultad
func ParseNivelDificultad(value string) (NivelDificultad, error) {
	nivel := NivelDificultad(strings.ToUpper(strings.TrimSpace(value)))
	if !nivel.IsValid() {
		return "", errors.New("invalid nivel de dificultad")
	}
	return nivel, nil
}

// IsValid verifica que el nivel sea uno de los tres conocidos
func (n NivelDificultad) IsValid() bool {
	return n == NivelPrincipiante || n == NivelIntermedio || n == NivelAvanzado
}

// Evento representa una actividad programada con ciudad, fecha y dificultad
type Evento struct {
	ID              string
	Nombre          string
	Descripcion     *string
	Ciudad          string
	Fecha           time.Time
	NivelDificultad NivelDificultad
	ImagenURL       string
	Destacado       bool
	Participantes   []Participacion
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate valida las reglas de negocio de la entidad Evento
func (e *Evento) Validate() error {
	if e.Nombre == "" {
		return errors.New("nombre is required")
	}

	if e.Ciudad == "" {
		return errors.New("ciudad is required")
	}

	if e.Fecha.IsZero() {
		return errors.New("fecha is required")
	}

	if !e.NivelDificultad.IsValid() {
		return errors.New("invalid nivel de dificultad")
	}

	return nil
}
