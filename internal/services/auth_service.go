package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rutaviva/eventos-backend/internal/domain/entities"
	"github.com/rutaviva/eventos-backend/internal/domain/errors"
	"github.com/rutaviva/eventos-backend/internal/domain/ports"
	"github.com/rutaviva/eventos-backend/internal/domain/repositories"
	"github.com/rutaviva/eventos-backend/internal/domain/valueobjects"
)

const defaultBcryptCost = 10

// TokenClaims es el payload de identidad que viaja dentro del JWT
type TokenClaims struct {
	UserID      string
	Email       string
	TipoUsuario string
}

type jwtClaims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	TipoUsuario string `json:"tipo_usuario"`
}

// AuthService contiene la lógica de credenciales: hashing de contraseñas
// y emisión/verificación de tokens JWT
type AuthService struct {
	userRepo   repositories.UserRepository
	logger     ports.Logger
	secret     []byte
	expiry     time.Duration
	bcryptCost int
}

// NewAuthService crea un nuevo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	logger ports.Logger,
	secret string,
	expiry time.Duration,
	bcryptCost int,
) *AuthService {
	if bcryptCost <= 0 {
		bcryptCost = defaultBcryptCost
	}
	if expiry <= 0 {
		expiry = 7 * 24 * time.Hour
	}

	return &AuthService{
		userRepo:   userRepo,
		logger:     logger,
		secret:     []byte(secret),
		expiry:     expiry,
		bcryptCost: bcryptCost,
	}
}

// HashPassword genera el hash bcrypt de una contraseña en claro
func (s *AuthService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compara una contraseña en claro contra su hash almacenado
func (s *AuthService) CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// GenerateToken firma un JWT con la identidad del usuario
func (s *AuthService) GenerateToken(user *entities.User) (string, error) {
	now := time.Now()

	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		Email:       user.Email.String(),
		TipoUsuario: string(user.TipoUsuario),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken verifica y decodifica un JWT.
// Retorna nil ante cualquier fallo (expirado, malformado, firma inválida);
// nunca propaga el error al caller.
func (s *AuthService) VerifyToken(tokenString string) *TokenClaims {
	var claims jwtClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	return &TokenClaims{
		UserID:      claims.Subject,
		Email:       claims.Email,
		TipoUsuario: claims.TipoUsuario,
	}
}

// Login valida credenciales y emite un token de sesión.
// El error es el mismo para email desconocido y contraseña incorrecta.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	if !s.CheckPassword(password, user.PasswordHash) {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}
