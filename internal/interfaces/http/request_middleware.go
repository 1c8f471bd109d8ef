package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/ptc-travel/backoffice/pkg/logger"
)

const headerRequestID = "X-Request-ID"

// httpObserver lo implementa *metrics.Prometheus.
type httpObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// RequestID asigna un uuid a cada petición (o respeta el X-Request-ID entrante).
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    headerRequestID,
		Generator: uuid.NewString,
	})
}

// RequestLogger registra cada petición y alimenta las métricas HTTP por ruta.
func RequestLogger(log *logger.Logger, m httpObserver) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		// ruta registrada, no la URL: evita una serie por ID
		route := c.Route().Path
		if m != nil {
			m.ObserveHTTP(c.Method(), route, status, elapsed)
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", c.GetRespHeader(headerRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("elapsed", elapsed).
			Str("operator", GetOperatorID(c)).
			Msg("petición")
		return err
	}
}
