package http

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ptc-travel/backoffice/internal/application/auth"
	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/domain"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// Locals keys de la sesión en Fiber.
const (
	LocalSessionID = "session_id"
	LocalUser      = "auth_user"
)

// sessionResolver lo implementa *auth.AuthUseCase.
type sessionResolver interface {
	Session(ctx context.Context, token string) (*auth.Session, error)
}

// AuthMiddleware valida el Bearer Token y exige que su registro de sesión siga guardado.
// Sin sesión responde 401 UNAUTHENTICATED con redirect a /login.
func AuthMiddleware(sessions sessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(unauthenticated("Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(unauthenticated("formato: Bearer <token>"))
		}
		token := strings.TrimSpace(parts[1])
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(unauthenticated("token vacío"))
		}
		s, err := sessions.Session(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(unauthenticated("sesión inválida o expirada"))
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SESSION_STORE_UNAVAILABLE",
				Message: "no se pudo verificar la sesión, intente más tarde",
			})
		}
		c.Locals(LocalSessionID, s.ID)
		c.Locals(LocalUser, s.User)
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles indicados. Va después de AuthMiddleware.
func RequireRole(roles ...entity.StaffRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(unauthenticated("sesión requerida"))
		}
		if !slices.Contains(roles, user.Role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol " + string(user.Role) + " no puede realizar esta operación",
			})
		}
		return c.Next()
	}
}

// GetUser devuelve el operador de la sesión (después del middleware de auth).
func GetUser(c *fiber.Ctx) (entity.AuthUser, bool) {
	u, ok := c.Locals(LocalUser).(entity.AuthUser)
	return u, ok
}

// GetOperatorID devuelve el ID del operador autenticado.
func GetOperatorID(c *fiber.Ctx) string {
	u, _ := GetUser(c)
	return u.ID
}

// GetSessionID devuelve el ID de la sesión actual.
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}
