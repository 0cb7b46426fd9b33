package reports

import (
	"context"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
)

// StatementPDFGenerator renderiza el estado de cuenta contable como PDF.
// Implementado en infrastructure/pdf con Maroto.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, username string, report *dto.AccountingReportDTO) ([]byte, error)
}
