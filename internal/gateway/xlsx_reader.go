package gateway

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"spending-analyzer/internal/domain"
)

// XLSXStatementRepository implements the StatementRepository interface for
// Excel workbooks. Only the first sheet is read.
type XLSXStatementRepository struct{}

// NewXLSXStatementRepository creates a new repository instance.
func NewXLSXStatementRepository() *XLSXStatementRepository {
	return &XLSXStatementRepository{}
}

// GetRecords reads the first sheet of the workbook at path.
func (r *XLSXStatementRepository) GetRecords(ctx context.Context, path string) ([]domain.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open statement file %s: %w", domain.ErrSourceRead, path, err)
	}
	defer file.Close()

	return r.ReadRecords(ctx, file)
}

// ReadRecords parses workbook data from any reader.
func (r *XLSXStatementRepository) ReadRecords(ctx context.Context, in io.Reader) ([]domain.Record, error) {
	xl, err := excelize.OpenReader(in)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook: %w", domain.ErrSourceRead, err)
	}
	defer xl.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sheet := xl.GetSheetName(0)
	rows, err := xl.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get rows of sheet %q: %w", domain.ErrSourceRead, sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return recordsFromRows(rows[0], rows[1:]), nil
}
