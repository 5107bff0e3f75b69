package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
	"github.com/rutaviva/eventos-backend/internal/domain/ports"
	"github.com/rutaviva/eventos-backend/internal/domain/repositories"
)

// noopLogger descarta todos los mensajes
type noopLogger struct{}

func (noopLogger) Info(string, ...any) {}

func (noopLogger) Error(string, ...any) {}

func (noopLogger) Debug(string, ...any) {}

func (noopLogger) Warn(string, ...any) {}

func (l noopLogger) With(...any) ports.Logger { return l }

// fakeUserRepo es una implementación en memoria de UserRepository
type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email.String() == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

// fakeEventoRepo es una implementación en memoria de EventoRepository
type fakeEventoRepo struct {
	eventos map[string]*entities.Evento

	// lastFilters registra la última llamada a FindWithFilters
	lastFilters repositories.EventoFilters
}

func newFakeEventoRepo() *fakeEventoRepo {
	return &fakeEventoRepo{eventos: make(map[string]*entities.Evento)}
}

func (r *fakeEventoRepo) Create(_ context.Context, evento *entities.Evento) error {
	if evento.ID == "" {
		evento.ID = uuid.NewString()
	}
	r.eventos[evento.ID] = evento
	return nil
}

func (r *fakeEventoRepo) FindByID(_ context.Context, id string) (*entities.Evento, error) {
	return r.eventos[id], nil
}

func (r *fakeEventoRepo) FindAll(_ context.Context) ([]*entities.Evento, error) {
	return r.all(), nil
}

func (r *fakeEventoRepo) Update(_ context.Context, id string, patch repositories.EventoPatch) error {
	evento, ok := r.eventos[id]
	if !ok {
		return nil
	}
	if patch.Nombre != nil {
		evento.Nombre = *patch.Nombre
	}
	if patch.Descripcion != nil {
		evento.Descripcion = patch.Descripcion
	}
	if patch.Ciudad != nil {
		evento.Ciudad = *patch.Ciudad
	}
	if patch.Fecha != nil {
		evento.Fecha = *patch.Fecha
	}
	if patch.NivelDificultad != nil {
		evento.NivelDificultad = *patch.NivelDificultad
	}
	if patch.ImagenURL != nil {
		evento.ImagenURL = *patch.ImagenURL
	}
	if patch.Destacado != nil {
		evento.Destacado = *patch.Destacado
	}
	return nil
}

func (r *fakeEventoRepo) Delete(_ context.Context, id string) error {
	delete(r.eventos, id)
	return nil
}

func (r *fakeEventoRepo) SearchByNombre(_ context.Context, nombre string) ([]*entities.Evento, error) {
	var result []*entities.Evento
	for _, evento := range r.eventos {
		if containsFold(evento.Nombre, nombre) {
			result = append(result, evento)
		}
	}
	return result, nil
}

func (r *fakeEventoRepo) FindByNivelDificultad(_ context.Context, nivel entities.NivelDificultad) ([]*entities.Evento, error) {
	var result []*entities.Evento
	for _, evento := range r.eventos {
		if evento.NivelDificultad == nivel {
			result = append(result, evento)
		}
	}
	return result, nil
}

func (r *fakeEventoRepo) FindByCiudad(_ context.Context, ciudad string) ([]*entities.Evento, error) {
	var result []*entities.Evento
	for _, evento := range r.eventos {
		if containsFold(evento.Ciudad, ciudad) {
			result = append(result, evento)
		}
	}
	return result, nil
}

func (r *fakeEventoRepo) FindOrderedByNombre(_ context.Context, orden string) ([]*entities.Evento, error) {
	eventos := r.all()
	sortEventosByNombre(eventos, orden == "desc")
	return eventos, nil
}

func (r *fakeEventoRepo) FindWithFilters(_ context.Context, filters repositories.EventoFilters) ([]*entities.Evento, error) {
	r.lastFilters = filters
	return r.all(), nil
}

func (r *fakeEventoRepo) FindProximos(_ context.Context, desde time.Time, limit int) ([]*entities.Evento, error) {
	var result []*entities.Evento
	for _, evento := range r.eventos {
		if !evento.Fecha.Before(desde) {
			result = append(result, evento)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Fecha.Before(result[j].Fecha) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeEventoRepo) DistinctNiveles(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var niveles []string
	for _, evento := range r.eventos {
		nivel := string(evento.NivelDificultad)
		if !seen[nivel] {
			seen[nivel] = true
			niveles = append(niveles, nivel)
		}
	}
	return niveles, nil
}

func (r *fakeEventoRepo) DistinctCiudades(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var ciudades []string
	for _, evento := range r.eventos {
		if !seen[evento.Ciudad] {
			seen[evento.Ciudad] = true
			ciudades = append(ciudades, evento.Ciudad)
		}
	}
	return ciudades, nil
}

func (r *fakeEventoRepo) all() []*entities.Evento {
	eventos := make([]*entities.Evento, 0, len(r.eventos))
	for _, evento := range r.eventos {
		eventos = append(eventos, evento)
	}
	return eventos
}

// fakeParticipacionRepo es una implementación en memoria de
// ParticipacionRepository
type fakeParticipacionRepo struct {
	participaciones map[string]*entities.Participacion
}

func newFakeParticipacionRepo() *fakeParticipacionRepo {
	return &fakeParticipacionRepo{participaciones: make(map[string]*entities.Participacion)}
}

func (r *fakeParticipacionRepo) Create(_ context.Context, participacion *entities.Participacion) error {
	if participacion.ID == "" {
		participacion.ID = uuid.NewString()
	}
	r.participaciones[participacion.ID] = participacion
	return nil
}

func (r *fakeParticipacionRepo) FindByUserAndEvento(_ context.Context, userID, eventoID string) (*entities.Participacion, error) {
	for _, participacion := range r.participaciones {
		if participacion.UserID == userID && participacion.EventoID == eventoID {
			return participacion, nil
		}
	}
	return nil, nil
}

func (r *fakeParticipacionRepo) FindByUser(_ context.Context, userID string) ([]*entities.Participacion, error) {
	var result []*entities.Participacion
	for _, participacion := range r.participaciones {
		if participacion.UserID == userID {
			result = append(result, participacion)
		}
	}
	return result, nil
}

func (r *fakeParticipacionRepo) FindByEvento(_ context.Context, eventoID string) ([]*entities.Participacion, error) {
	var result []*entities.Participacion
	for _, participacion := range r.participaciones {
		if participacion.EventoID == eventoID {
			result = append(result, participacion)
		}
	}
	return result, nil
}

func (r *fakeParticipacionRepo) Delete(_ context.Context, id string) error {
	delete(r.participaciones, id)
	return nil
}

// fakeUnitOfWork ejecuta la función directamente, sin transacción real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }

func (fakeUnitOfWork) Commit(context.Context) error { return nil }

func (fakeUnitOfWork) Rollback(context.Context) error { return nil }

func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortEventosByNombre(eventos []*entities.Evento, desc bool) {
	sort.Slice(eventos, func(i, j int) bool {
		if desc {
			return eventos[i].Nombre > eventos[j].Nombre
		}
		return eventos[i].Nombre < eventos[j].Nombre
	})
}
