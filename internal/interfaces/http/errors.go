package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/application/query"
	"github.com/ptc-travel/backoffice/internal/domain"
)

const loginPath = "/login"

// mapError traduce un error de la aplicación a estado HTTP y cuerpo JSON.
func mapError(err error) (int, dto.ErrorResponse) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "revise los campos marcados", Fields: ve.Fields}
	}

	switch {
	case errors.Is(err, domain.ErrSubmissionInProgress):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "SUBMISSION_IN_PROGRESS", Message: domain.ErrSubmissionInProgress.Error()}
	case errors.Is(err, domain.ErrStatusContractUndefined):
		return fiber.StatusNotImplemented, dto.ErrorResponse{Code: "STATUS_CONTRACT_UNDEFINED", Message: domain.ErrStatusContractUndefined.Error()}
	case errors.Is(err, domain.ErrStatusChanged):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "STATUS_CHANGED", Message: domain.ErrStatusChanged.Error()}
	case errors.Is(err, domain.ErrNoTransition):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "NO_TRANSITION", Message: domain.ErrNoTransition.Error()}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: domain.ErrInvalidCredentials.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, unauthenticated("sesión inválida o expirada")
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: domain.ErrForbidden.Error()}
	}

	var fe *domain.FetchError
	if errors.As(err, &fe) {
		return mapFetchError(fe)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
}

func mapFetchError(fe *domain.FetchError) (int, dto.ErrorResponse) {
	switch fe.Kind {
	case domain.FetchNetwork:
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: "no se pudo conectar con el servidor"}
	case domain.FetchUnauthenticated:
		return fiber.StatusUnauthorized, unauthenticated("el servidor rechazó la sesión")
	}
	msg := fe.BackendMessage()
	if msg == "" {
		msg = "el servidor respondió con un error"
	}
	switch {
	case fe.IsNotFound():
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: msg}
	case fe.Status >= 400 && fe.Status < 500:
		return fe.Status, dto.ErrorResponse{Code: "BACKEND_ERROR", Message: msg}
	default:
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "BACKEND_ERROR", Message: msg}
	}
}

func unauthenticated(msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: msg, Redirect: loginPath}
}

// respondError escribe el error mapeado.
func respondError(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	return c.Status(status).JSON(body)
}

// respondMutation escribe el resultado de una escritura: la notificación de éxito con los
// datos, o el error mapeado con la notificación de fallo.
func respondMutation(c *fiber.Ctx, status int, n query.Notification, data any, err error) error {
	if err == nil {
		return c.Status(status).JSON(dto.MutationResponse{Notification: n, Data: data})
	}
	code, body := mapError(err)
	if n.Message != "" {
		body.Message = n.Message
		body.Notification = &n
	}
	return c.Status(code).JSON(body)
}

// ErrorHandler manejador de errores de Fiber: respuestas JSON con el mismo formato.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: httpCode(fe.Code), Message: fe.Message})
	}
	return respondError(c, err)
}

func httpCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "INVALID_BODY"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	default:
		return "INTERNAL"
	}
}
