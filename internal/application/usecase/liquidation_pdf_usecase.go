package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/application/view"
	"github.com/ptc-travel/backoffice/pkg/logger"
)

// DetailSource fuente del detalle de una liquidación (LiquidationUseCase).
type DetailSource interface {
	Detail(ctx context.Context, id int64) (*view.LiquidationDetail, error)
}

// PDFExport documento generado y, si se archivó, su ubicación.
type PDFExport struct {
	Filename string
	Content  []byte
	Location string
}

// LiquidationPDFUseCase exporta el estado de cuenta de una liquidación.
type LiquidationPDFUseCase struct {
	details DetailSource
	gen     ports.LiquidationPDFGenerator
	archive ports.DocumentArchive
	log     *logger.Logger
	now     func() time.Time
}

// NewLiquidationPDFUseCase construye el caso de uso. archive puede ser nil (sin archivo en S3).
func NewLiquidationPDFUseCase(details DetailSource, gen ports.LiquidationPDFGenerator, archive ports.DocumentArchive, log *logger.Logger) *LiquidationPDFUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &LiquidationPDFUseCase{details: details, gen: gen, archive: archive, log: log.Component("pdf"), now: time.Now}
}

// Export genera el PDF. Un fallo al archivar no impide la descarga: queda en el log.
func (uc *LiquidationPDFUseCase) Export(ctx context.Context, id int64) (*PDFExport, error) {
	detail, err := uc.details.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	content, err := uc.gen.Generate(ctx, detail)
	if err != nil {
		return nil, fmt.Errorf("generar PDF de la liquidación %d: %w", id, err)
	}
	out := &PDFExport{
		Filename: fmt.Sprintf("liquidacion-%d.pdf", id),
		Content:  content,
	}
	if uc.archive == nil {
		return out, nil
	}
	key := fmt.Sprintf("liquidations/%d/%s.pdf", id, uc.now().UTC().Format("20060102T150405Z"))
	loc, err := uc.archive.Put(ctx, key, content, "application/pdf")
	if err != nil {
		uc.log.Warn().Err(err).Int64("liquidation", id).Msg("no se pudo archivar el PDF")
		return out, nil
	}
	out.Location = loc
	return out, nil
}
