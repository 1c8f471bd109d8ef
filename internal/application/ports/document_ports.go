package ports

import (
	"context"

	"github.com/ptc-travel/backoffice/internal/application/view"
)

// LiquidationPDFGenerator puerto de salida para el estado de cuenta en PDF de una liquidación.
type LiquidationPDFGenerator interface {
	Generate(ctx context.Context, detail *view.LiquidationDetail) ([]byte, error)
}

// DocumentArchive guarda documentos generados (p. ej. en S3) y devuelve su ubicación.
type DocumentArchive interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (location string, err error)
}
