package postgres

import (
	"time"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
	"github.com/rutaviva/eventos-backend/internal/domain/valueobjects"
)

// Conversores entre models GORM y entidades de dominio.
// Las asociaciones solo se convierten cuando fueron precargadas; los
// punteros nil cortan la recursión.

func userToModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Nombre:       user.Nombre,
		Apellidos:    user.Apellidos,
		Email:        user.Email.String(),
		PasswordHash: user.PasswordHash,
		Genero:       user.Genero,
		TipoUsuario:  string(user.TipoUsuario),
		Nivel:        user.Nivel,
	}
}

func userToEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           model.ID,
		Nombre:       model.Nombre,
		Apellidos:    model.Apellidos,
		Email:        email,
		PasswordHash: model.PasswordHash,
		Genero:       model.Genero,
		TipoUsuario:  entities.TipoUsuario(model.TipoUsuario),
		Nivel:        model.Nivel,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}

	for i := range model.Participaciones {
		participacion, err := participacionToEntity(&model.Participaciones[i])
		if err != nil {
			return nil, err
		}
		user.Participaciones = append(user.Participaciones, *participacion)
	}

	return user, nil
}

func eventoToModel(evento *entities.Evento) *EventoModel {
	return &EventoModel{
		ID:              evento.ID,
		Nombre:          evento.Nombre,
		Descripcion:     evento.Descripcion,
		Ciudad:          evento.Ciudad,
		Fecha:           evento.Fecha,
		NivelDificultad: string(evento.NivelDificultad),
		ImagenURL:       evento.ImagenURL,
		Destacado:       evento.Destacado,
	}
}

func eventoToEntity(model *EventoModel) (*entities.Evento, error) {
	evento := &entities.Evento{
		ID:              model.ID,
		Nombre:          model.Nombre,
		Descripcion:     model.Descripcion,
		Ciudad:          model.Ciudad,
		Fecha:           model.Fecha,
		NivelDificultad: entities.NivelDificultad(model.NivelDificultad),
		ImagenURL:       model.ImagenURL,
		Destacado:       model.Destacado,
		CreatedAt:       time.Unix(model.CreatedAt, 0),
		UpdatedAt:       time.Unix(model.UpdatedAt, 0),
	}

	for i := range model.Participantes {
		participacion, err := participacionToEntity(&model.Participantes[i])
		if err != nil {
			return nil, err
		}
		evento.Participantes = append(evento.Participantes, *participacion)
	}

	return evento, nil
}

func participacionToModel(participacion *entities.Participacion) *ParticipacionModel {
	return &ParticipacionModel{
		ID:               participacion.ID,
		UserID:           participacion.UserID,
		EventoID:         participacion.EventoID,
		FechaInscripcion: participacion.FechaInscripcion,
	}
}

func participacionToEntity(model *ParticipacionModel) (*entities.Participacion, error) {
	participacion := &entities.Participacion{
		ID:               model.ID,
		UserID:           model.UserID,
		EventoID:         model.EventoID,
		FechaInscripcion: model.FechaInscripcion,
		CreatedAt:        time.Unix(model.CreatedAt, 0),
		UpdatedAt:        time.Unix(model.UpdatedAt, 0),
	}

	if model.Usuario != nil {
		usuario, err := userToEntity(model.Usuario)
		if err != nil {
			return nil, err
		}
		participacion.Usuario = usuario
	}

	if model.Evento != nil {
		evento, err := eventoToEntity(model.Evento)
		if err != nil {
			return nil, err
		}
		participacion.Evento = evento
	}

	return participacion, nil
}
