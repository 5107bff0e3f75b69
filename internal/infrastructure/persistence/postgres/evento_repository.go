package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
	"github.com/rutaviva/eventos-backend/internal/domain/repositories"
)

// ordenColumns mapea los campos de ordenamiento de la API a columnas.
// Solo los campos presentes aquí llegan a la cláusula ORDER BY.
var ordenColumns = map[string]string{
	"nombre":          "nombre",
	"fecha":           "fecha",
	"ciudad":          "ciudad",
	"nivelDificultad": "nivel_dificultad",
}

// EventoRepository implementa repositories.EventoRepository
type EventoRepository struct {
	db *gorm.DB
}

// NewEventoRepository crea un nuevo EventoRepository
func NewEventoRepository(db *gorm.DB) repositories.EventoRepository {
	return &EventoRepository{db: db}
}

func (r *EventoRepository) Create(ctx context.Context, evento *entities.Evento) error {
	model := eventoToModel(evento)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	evento.ID = model.ID
	return nil
}

func (r *EventoRepository) FindByID(ctx context.Context, id string) (*entities.Evento, error) {
	var model EventoModel

	db := r.getDB(ctx)
	err := db.Preload("Participantes").Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return eventoToEntity(&model)
}

func (r *EventoRepository) FindAll(ctx context.Context) ([]*entities.Evento, error) {
	var models []*EventoModel

	db := r.getDB(ctx)
	if err := db.Preload("Participantes").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *EventoRepository) Update(ctx context.Context, id string, patch repositories.EventoPatch) error {
	// Solo los campos presentes en el patch se aplican
	updates := map[string]interface{}{}

	if patch.Nombre != nil {
		updates["nombre"] = *patch.Nombre
	}
	if patch.Descripcion != nil {
		updates["descripcion"] = *patch.Descripcion
	}
	if patch.Ciudad != nil {
		updates["ciudad"] = *patch.Ciudad
	}
	if patch.Fecha != nil {
		updates["fecha"] = *patch.Fecha
	}
	if patch.NivelDificultad != nil {
		updates["nivel_dificultad"] = string(*patch.NivelDificultad)
	}
	if patch.ImagenURL != nil {
		updates["imagen_url"] = *patch.ImagenURL
	}
	if patch.Destacado != nil {
		updates["destacado"] = *patch.Destacado
	}

	if len(updates) == 0 {
		return nil
	}

	db := r.getDB(ctx)
	return db.Model(&EventoModel{}).Where("id = ?", id).Updates(updates).Error
}

func (r *EventoRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	return db.Where("id = ?", id).Delete(&EventoModel{}).Error
}

func (r *EventoRepository) SearchByNombre(ctx context.Context, nombre string) ([]*entities.Evento, error) {
	var models []*EventoModel

	db := r.getDB(ctx)
	err := db.Preload("Participantes").
		Where("nombre LIKE ?", "%"+nombre+"%").Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *EventoRepository) FindByNivelDificultad(ctx context.Context, nivel entities.NivelDificultad) ([]*entities.Evento, error) {
	var models []*EventoModel

	db := r.getDB(ctx)
	err := db.Preload("Participantes").
		Where("nivel_dificultad = ?", string(nivel)).Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *EventoRepository) FindByCiudad(ctx context.Context, ciudad string) ([]*entities.Evento, error) {
	var models []*EventoModel

	db := r.getDB(ctx)
	err := db.Preload("Participantes").
		Where("ciudad LIKE ?", "%"+ciudad+"%").Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *EventoRepository) FindOrderedByNombre(ctx context.Context, orden string) ([]*entities.Evento, error) {
	var models []*EventoModel

	db := r.getDB(ctx)
	err := db.Preload("Participantes").
		Order("nombre " + direction(orden)).Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *EventoRepository) FindWithFilters(ctx context.Context, filters repositories.EventoFilters) ([]*entities.Evento, error) {
	db := r.getDB(ctx)
	query := db.Model(&EventoModel{}).Preload("Participantes")

	if filters.Nombre != nil {
		query = query.Where("nombre LIKE ?", "%"+*filters.Nombre+"%")
	}
	if filters.Ciudad != nil {
		query = query.Where("ciudad LIKE ?", "%"+*filters.Ciudad+"%")
	}
	if filters.NivelDificultad != nil {
		query = query.Where("nivel_dificultad = ?", string(*filters.NivelDificultad))
	}
	if filters.Destacado != nil {
		query = query.Where("destacado = ?", *filters.Destacado)
	}

	column, ok := ordenColumns[filters.OrdenarPor]
	if !ok {
		column = "nombre"
	}
	query = query.Order(column + " " + direction(filters.Orden))

	var models []*EventoModel
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *EventoRepository) FindProximos(ctx context.Context, desde time.Time, limit int) ([]*entities.Evento, error) {
	var models []*EventoModel

	db := r.getDB(ctx)
	err := db.Preload("Participantes").
		Where("fecha >= ?", desde).
		Order("fecha asc").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *EventoRepository) DistinctNiveles(ctx context.Context) ([]string, error) {
	var niveles []string

	db := r.getDB(ctx)
	err := db.Model(&EventoModel{}).Distinct().
		Pluck("nivel_dificultad", &niveles).Error
	if err != nil {
		return nil, err
	}

	return niveles, nil
}

func (r *EventoRepository) DistinctCiudades(ctx context.Context) ([]string, error) {
	var ciudades []string

	db := r.getDB(ctx)
	err := db.Model(&EventoModel{}).Distinct().
		Pluck("ciudad", &ciudades).Error
	if err != nil {
		return nil, err
	}

	return ciudades, nil
}

// direction normaliza la dirección de ordenamiento antes de interpolarla
func direction(orden string) string {
	if orden == "desc" {
		return "desc"
	}
	return "asc"
}

func (r *EventoRepository) toEntities(models []*EventoModel) ([]*entities.Evento, error) {
	eventos := make([]*entities.Evento, 0, len(models))
	for _, model := range models {
		evento, err := eventoToEntity(model)
		if err != nil {
			return nil, err
		}
		eventos = append(eventos, evento)
	}
	return eventos, nil
}

// getDB extrae la transacción del contexto si existe
func (r *EventoRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
