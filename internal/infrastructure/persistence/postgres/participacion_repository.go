package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
	domainerrors "github.com/rutaviva/eventos-backend/internal/domain/errors"
	"github.com/rutaviva/eventos-backend/internal/domain/repositories"
)

// ParticipacionRepository implementa repositories.ParticipacionRepository
type ParticipacionRepository struct {
	db *gorm.DB
}

// NewParticipacionRepository crea un nuevo ParticipacionRepository
func NewParticipacionRepository(db *gorm.DB) repositories.ParticipacionRepository {
	return &ParticipacionRepository{db: db}
}

func (r *ParticipacionRepository) Create(ctx context.Context, participacion *entities.Participacion) error {
	model := participacionToModel(participacion)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		// El índice único compuesto respalda la verificación previa del
		// servicio cuando dos inscripciones concurrentes la pasan a la vez
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrYaInscrito
		}
		return err
	}

	participacion.ID = model.ID
	return nil
}

func (r *ParticipacionRepository) FindByUserAndEvento(ctx context.Context, userID, eventoID string) (*entities.Participacion, error) {
	var model ParticipacionModel

	db := r.getDB(ctx)
	err := db.Where("user_id = ? AND evento_id = ?", userID, eventoID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return participacionToEntity(&model)
}

func (r *ParticipacionRepository) FindByUser(ctx context.Context, userID string) ([]*entities.Participacion, error) {
	var models []*ParticipacionModel

	db := r.getDB(ctx)
	err := db.Preload("Evento").Where("user_id = ?", userID).Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *ParticipacionRepository) FindByEvento(ctx context.Context, eventoID string) ([]*entities.Participacion, error) {
	var models []*ParticipacionModel

	db := r.getDB(ctx)
	err := db.Preload("Usuario").Where("evento_id = ?", eventoID).Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *ParticipacionRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	return db.Where("id = ?", id).Delete(&ParticipacionModel{}).Error
}

func (r *ParticipacionRepository) toEntities(models []*ParticipacionModel) ([]*entities.Participacion, error) {
	participaciones := make([]*entities.Participacion, 0, len(models))
	for _, model := range models {
		participacion, err := participacionToEntity(model)
		if err != nil {
			return nil, err
		}
		participaciones = append(participaciones, participacion)
	}
	return participaciones, nil
}

// getDB extrae la transacción del contexto si existe
func (r *ParticipacionRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
