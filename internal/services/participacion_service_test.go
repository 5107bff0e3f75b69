package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
	"github.com/rutaviva/eventos-backend/internal/domain/errors"
)

type participacionTestEnv struct {
	service *ParticipacionService
	userID  string
	evento  *entities.Evento
}

func newParticipacionTestEnv(t *testing.T) *participacionTestEnv {
	t.Helper()
	ctx := context.Background()

	userRepo := newFakeUserRepo()
	eventoRepo := newFakeEventoRepo()
	participacionRepo := newFakeParticipacionRepo()

	user := &entities.User{
		ID:          "user-1",
		Nombre:      "Ana",
		Apellidos:   "García",
		Email:       mustEmail(t, "ana@example.com"),
		TipoUsuario: entities.TipoCorredor,
	}
	require.NoError(t, userRepo.Create(ctx, user))

	evento := &entities.Evento{
		Nombre:          "Carrera del Retiro",
		Ciudad:          "Madrid",
		Fecha:           time.Now().Add(30 * 24 * time.Hour),
		NivelDificultad: entities.NivelIntermedio,
	}
	require.NoError(t, eventoRepo.Create(ctx, evento))

	service := NewParticipacionService(participacionRepo, userRepo, eventoRepo, fakeUnitOfWork{}, noopLogger{})

	return &participacionTestEnv{
		service: service,
		userID:  user.ID,
		evento:  evento,
	}
}

func TestParticipacionService_Inscribir(t *testing.T) {
	ctx := context.Background()

	t.Run("inscribe al usuario y retorna la inscripción unida", func(t *testing.T) {
		env := newParticipacionTestEnv(t)

		participacion, err := env.service.Inscribir(ctx, env.userID, env.evento.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, participacion.ID)
		assert.Equal(t, env.userID, participacion.UserID)
		assert.Equal(t, env.evento.ID, participacion.EventoID)
		assert.False(t, participacion.FechaInscripcion.IsZero())
		require.NotNil(t, participacion.Usuario)
		assert.Equal(t, "Ana", participacion.Usuario.Nombre)
		require.NotNil(t, participacion.Evento)
		assert.Equal(t, "Carrera del Retiro", participacion.Evento.Nombre)
	})

	t.Run("la doble inscripción falla con conflicto", func(t *testing.T) {
		env := newParticipacionTestEnv(t)

		_, err := env.service.Inscribir(ctx, env.userID, env.evento.ID)
		require.NoError(t, err)

		_, err = env.service.Inscribir(ctx, env.userID, env.evento.ID)
		assert.ErrorIs(t, err, errors.ErrYaInscrito)
	})

	t.Run("usuario inexistente falla con not found", func(t *testing.T) {
		env := newParticipacionTestEnv(t)

		_, err := env.service.Inscribir(ctx, "no-existe", env.evento.ID)
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})

	t.Run("evento inexistente falla con not found", func(t *testing.T) {
		env := newParticipacionTestEnv(t)

		_, err := env.service.Inscribir(ctx, env.userID, "no-existe")
		assert.ErrorIs(t, err, errors.ErrEventoNotFound)
	})
}

func TestParticipacionService_Cancelar(t *testing.T) {
	ctx := context.Background()

	t.Run("cancelar una inscripción existente retorna true", func(t *testing.T) {
		env := newParticipacionTestEnv(t)

		_, err := env.service.Inscribir(ctx, env.userID, env.evento.ID)
		require.NoError(t, err)

		cancelled, err := env.service.Cancelar(ctx, env.userID, env.evento.ID)
		require.NoError(t, err)
		assert.True(t, cancelled)

		inscrito, err := env.service.EstaInscrito(ctx, env.userID, env.evento.ID)
		require.NoError(t, err)
		assert.False(t, inscrito)
	})

	t.Run("cancelar una inscripción ausente retorna false", func(t *testing.T) {
		env := newParticipacionTestEnv(t)

		cancelled, err := env.service.Cancelar(ctx, env.userID, env.evento.ID)
		require.NoError(t, err)
		assert.False(t, cancelled)
	})

	t.Run("tras cancelar se puede volver a inscribir", func(t *testing.T) {
		env := newParticipacionTestEnv(t)

		_, err := env.service.Inscribir(ctx, env.userID, env.evento.ID)
		require.NoError(t, err)

		_, err = env.service.Cancelar(ctx, env.userID, env.evento.ID)
		require.NoError(t, err)

		_, err = env.service.Inscribir(ctx, env.userID, env.evento.ID)
		assert.NoError(t, err)
	})
}

func TestParticipacionService_InscripcionesPorUsuario(t *testing.T) {
	ctx := context.Background()

	t.Run("lista las inscripciones del usuario", func(t *testing.T) {
		env := newParticipacionTestEnv(t)

		_, err := env.service.Inscribir(ctx, env.userID, env.evento.ID)
		require.NoError(t, err)

		participaciones, err := env.service.InscripcionesPorUsuario(ctx, env.userID)
		require.NoError(t, err)
		require.Len(t, participaciones, 1)
		assert.Equal(t, env.evento.ID, participaciones[0].EventoID)
	})

	t.Run("usuario inexistente falla con not found", func(t *testing.T) {
		env := newParticipacionTestEnv(t)

		_, err := env.service.InscripcionesPorUsuario(ctx, "no-existe")
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})
}

func TestParticipacionService_InscripcionesPorEvento(t *testing.T) {
	ctx := context.Background()

	t.Run("evento inexistente falla con not found", func(t *testing.T) {
		env := newParticipacionTestEnv(t)

		_, err := env.service.InscripcionesPorEvento(ctx, "no-existe")
		assert.ErrorIs(t, err, errors.ErrEventoNotFound)
	})
}

func TestParticipacionService_EstaInscrito(t *testing.T) {
	ctx := context.Background()

	t.Run("retorna true solo para el par inscrito", func(t *testing.T) {
		env := newParticipacionTestEnv(t)

		_, err := env.service.Inscribir(ctx, env.userID, env.evento.ID)
		require.NoError(t, err)

		inscrito, err := env.service.EstaInscrito(ctx, env.userID, env.evento.ID)
		require.NoError(t, err)
		assert.True(t, inscrito)

		inscrito, err = env.service.EstaInscrito(ctx, "otro-usuario", env.evento.ID)
		require.NoError(t, err)
		assert.False(t, inscrito)
	})
}
