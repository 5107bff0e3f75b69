package postgres

import "time"

// UserModel es el model GORM para usuarios
type UserModel struct {
	ID              string               `gorm:"type:uuid;primary_key"`
	Nombre          string               `gorm:"type:varchar(255);not null"`
	Apellidos       string               `gorm:"type:varchar(255);not null"`
	Email           string               `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash    string               `gorm:"type:varchar(255);not null"`
	Genero          *string              `gorm:"type:varchar(50)"`
	TipoUsuario     string               `gorm:"type:varchar(50);not null;index"`
	Nivel           int                  `gorm:"not null;default:0"`
	Participaciones []ParticipacionModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt       int64                `gorm:"autoCreateTime;index"`
	UpdatedAt       int64                `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// EventoModel es el model GORM para eventos
type EventoModel struct {
	ID              string               `gorm:"type:uuid;primary_key"`
	Nombre          string               `gorm:"type:varchar(255);not null;index"`
	Descripcion     *string              `gorm:"type:text"`
	Ciudad          string               `gorm:"type:varchar(255);not null;index"`
	Fecha           time.Time            `gorm:"type:timestamptz;not null;index"`
	NivelDificultad string               `gorm:"type:varchar(50);not null;index"`
	ImagenURL       string               `gorm:"type:varchar(500);not null;default:''"`
	Destacado       bool                 `gorm:"not null;default:false"`
	Participantes   []ParticipacionModel `gorm:"foreignKey:EventoID;constraint:OnDelete:CASCADE"`
	CreatedAt       int64                `gorm:"autoCreateTime;index"`
	UpdatedAt       int64                `gorm:"autoUpdateTime"`
}

func (EventoModel) TableName() string {
	return "eventos"
}

// ParticipacionModel es el model GORM para inscripciones.
// El índice único compuesto (user_id, evento_id) garantiza a nivel de
// base de datos que no puedan existir inscripciones duplicadas aunque
// dos peticiones concurrentes pasen la verificación previa.
type ParticipacionModel struct {
	ID               string       `gorm:"type:uuid;primary_key"`
	UserID           string       `gorm:"type:uuid;not null;uniqueIndex:idx_participaciones_user_evento"`
	EventoID         string       `gorm:"type:uuid;not null;uniqueIndex:idx_participaciones_user_evento"`
	FechaInscripcion time.Time    `gorm:"type:timestamptz;not null"`
	Usuario          *UserModel   `gorm:"foreignKey:UserID"`
	Evento           *EventoModel `gorm:"foreignKey:EventoID"`
	CreatedAt        int64        `gorm:"autoCreateTime"`
	UpdatedAt        int64        `gorm:"autoUpdateTime"`
}

func (ParticipacionModel) TableName() string {
	return "participaciones"
}
