// Package reports contiene los casos de uso de exportación de reportes
// (hoy: estado de cuenta contable en PDF).
package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/Libreta-api/internal/application/analytics"
)

// StatementUseCase genera el estado de cuenta del usuario en PDF:
// el libro contable completo con totales, listo para compartir con el proveedor.
type StatementUseCase struct {
	accountingUC *analytics.AccountingUseCase
	generator    StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(accountingUC *analytics.AccountingUseCase, generator StatementPDFGenerator) *StatementUseCase {
	return &StatementUseCase{accountingUC: accountingUC, generator: generator}
}

// GenerateStatement arma el reporte contable y lo renderiza como PDF.
func (uc *StatementUseCase) GenerateStatement(ctx context.Context, userID, username string) ([]byte, error) {
	report, err := uc.accountingUC.GetReport(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("statement: reporte contable: %w", err)
	}
	pdfBytes, err := uc.generator.GenerateStatementPDF(ctx, username, report)
	if err != nil {
		return nil, fmt.Errorf("statement: render PDF: %w", err)
	}
	return pdfBytes, nil
}
