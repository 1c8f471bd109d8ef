package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/domain"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/domain/repository"
	"github.com/ptc-travel/backoffice/pkg/jwt"
	"github.com/ptc-travel/backoffice/pkg/logger"
)

const sessionPrefix = "session:"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

func (c JWTConfig) ttl() time.Duration {
	return time.Duration(c.ExpMinutes) * time.Minute
}

// Session sesión autenticada: el registro guardado más el id que firma el token.
type Session struct {
	ID   string
	User entity.AuthUser
}

// AuthUseCase login, logout y resolución de sesiones de operadores.
type AuthUseCase struct {
	operators repository.OperatorRepository
	sessions  ports.KVStore
	jwtCfg    JWTConfig
	log       *logger.Logger
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(operators repository.OperatorRepository, sessions ports.KVStore, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{operators: operators, sessions: sessions, jwtCfg: jwtCfg, log: log.Component("auth"), now: time.Now}
}

// Login verifica email/password, guarda el registro de sesión y devuelve el token que lo referencia.
// Email desconocido y contraseña incorrecta responden igual (ErrInvalidCredentials).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email, password, err := in.Validate()
	if err != nil {
		return nil, err
	}
	op, err := uc.operators.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar operador: %w", err)
	}
	if op == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !op.IsActive {
		return nil, domain.ErrForbidden
	}

	user := op.AuthUser()
	sid := uuid.New().String()
	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Set(ctx, sessionPrefix+sid, raw, uc.jwtCfg.ttl()); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		SessionID: sid,
		UserID:    user.ID,
		UserName:  user.UserName,
		Email:     user.Email,
		Role:      string(user.Role),
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		_ = uc.sessions.Delete(ctx, sessionPrefix+sid)
		return nil, err
	}

	if err := uc.operators.TouchLastLogin(ctx, op.ID); err != nil {
		uc.log.Warn().Err(err).Str("operator", op.ID).Msg("no se pudo registrar el último acceso")
	}
	uc.log.Info().Str("operator", op.ID).Str("role", string(op.Role)).Msg("login")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: uc.now().Add(uc.jwtCfg.ttl()).UTC(),
		User:      user,
	}, nil
}

// Session valida el token y exige que su registro siga guardado.
// Token inválido, expirado o sesión cerrada devuelven ErrUnauthorized.
func (uc *AuthUseCase) Session(ctx context.Context, token string) (*Session, error) {
	sub, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	raw, ok, err := uc.sessions.Get(ctx, sessionPrefix+sub.SessionID)
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	var user entity.AuthUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("%w: registro de sesión ilegible", domain.ErrUnauthorized)
	}
	return &Session{ID: sub.SessionID, User: user}, nil
}

// Logout borra el registro de sesión; el token deja de ser aceptado aunque no haya expirado.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrUnauthorized
	}
	if err := uc.sessions.Delete(ctx, sessionPrefix+sessionID); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}

// HashPassword hash bcrypt para altas de operadores (cmd/seed_operator).
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", errors.New("la contraseña debe tener al menos 8 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
