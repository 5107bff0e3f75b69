package services

import (
	"context"
	"time"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
	"github.com/rutaviva/eventos-backend/internal/domain/errors"
	"github.com/rutaviva/eventos-backend/internal/domain/ports"
	"github.com/rutaviva/eventos-backend/internal/domain/repositories"
)

// ParticipacionService contiene la lógica de inscripciones.
// Máquina de estados por par (userID, eventoID):
// {ausente} → Inscribir → {inscrito} → Cancelar → {ausente}
type ParticipacionService struct {
	participacionRepo repositories.ParticipacionRepository
	userRepo          repositories.UserRepository
	eventoRepo        repositories.EventoRepository
	uow               ports.UnitOfWork
	logger            ports.Logger
}

// NewParticipacionService crea un nuevo ParticipacionService
func NewParticipacionService(
	participacionRepo repositories.ParticipacionRepository,
	userRepo repositories.UserRepository,
	eventoRepo repositories.EventoRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ParticipacionService {
	return &ParticipacionService{
		participacionRepo: participacionRepo,
		userRepo:          userRepo,
		eventoRepo:        eventoRepo,
		uow:               uow,
		logger:            logger,
	}
}

// Inscribir inscribe un usuario a un evento. Falla con ErrUserNotFound /
// ErrEventoNotFound si falta alguna de las entidades padre y con
// ErrYaInscrito si el par ya tiene inscripción. La verificación y el
// insert corren dentro de una transacción; el índice único compuesto
// respalda el caso de dos inscripciones concurrentes.
func (s *ParticipacionService) Inscribir(ctx context.Context, userID, eventoID string) (*entities.Participacion, error) {
	var participacion *entities.Participacion

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		usuario, err := s.userRepo.FindByID(txCtx, userID)
		if err != nil {
			return err
		}
		if usuario == nil {
			return errors.ErrUserNotFound
		}

		evento, err := s.eventoRepo.FindByID(txCtx, eventoID)
		if err != nil {
			return err
		}
		if evento == nil {
			return errors.ErrEventoNotFound
		}

		existing, err := s.participacionRepo.FindByUserAndEvento(txCtx, userID, eventoID)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrYaInscrito
		}

		participacion = &entities.Participacion{
			UserID:           userID,
			EventoID:         eventoID,
			FechaInscripcion: time.Now(),
		}

		if err := s.participacionRepo.Create(txCtx, participacion); err != nil {
			return err
		}

		// Resultado unido con los resúmenes de usuario y evento
		participacion.Usuario = usuario
		participacion.Evento = evento
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user enrolled",
		"user_id", userID,
		"evento_id", eventoID,
	)
	return participacion, nil
}

// Cancelar elimina la inscripción identificada por la clave compuesta
// (userID, eventoID). Retorna false cuando no existe.
func (s *ParticipacionService) Cancelar(ctx context.Context, userID, eventoID string) (bool, error) {
	participacion, err := s.participacionRepo.FindByUserAndEvento(ctx, userID, eventoID)
	if err != nil {
		return false, err
	}
	if participacion == nil {
		return false, nil
	}

	if err := s.participacionRepo.Delete(ctx, participacion.ID); err != nil {
		return false, err
	}

	s.logger.Info("enrollment cancelled",
		"user_id", userID,
		"evento_id", eventoID,
	)
	return true, nil
}

// InscripcionesPorUsuario retorna las inscripciones de un usuario,
// unidas con los datos del evento
func (s *ParticipacionService) InscripcionesPorUsuario(ctx context.Context, userID string) ([]*entities.Participacion, error) {
	usuario, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, errors.ErrUserNotFound
	}

	return s.participacionRepo.FindByUser(ctx, userID)
}

// InscripcionesPorEvento retorna las inscripciones de un evento, unidas
// con una proyección restringida del usuario (sin hash de contraseña)
func (s *ParticipacionService) InscripcionesPorEvento(ctx context.Context, eventoID string) ([]*entities.Participacion, error) {
	evento, err := s.eventoRepo.FindByID(ctx, eventoID)
	if err != nil {
		return nil, err
	}
	if evento == nil {
		return nil, errors.ErrEventoNotFound
	}

	return s.participacionRepo.FindByEvento(ctx, eventoID)
}

// EstaInscrito verifica si existe una inscripción para el par, sin
// efectos secundarios
func (s *ParticipacionService) EstaInscrito(ctx context.Context, userID, eventoID string) (bool, error) {
	participacion, err := s.participacionRepo.FindByUserAndEvento(ctx, userID, eventoID)
	if err != nil {
		return false, err
	}
	return participacion != nil, nil
}
