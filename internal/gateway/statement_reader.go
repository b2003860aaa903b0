package gateway

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"spending-analyzer/internal/domain"
)

// FileStatementRepository picks a reader by file extension.
type FileStatementRepository struct {
	csv  *CSVStatementRepository
	xlsx *XLSXStatementRepository
}

// NewFileStatementRepository creates a repository handling .csv and .xlsx files.
func NewFileStatementRepository() *FileStatementRepository {
	return &FileStatementRepository{
		csv:  NewCSVStatementRepository(),
		xlsx: NewXLSXStatementRepository(),
	}
}

// GetRecords reads the statement at path with the reader matching its extension.
func (r *FileStatementRepository) GetRecords(ctx context.Context, path string) ([]domain.Record, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", "":
		return r.csv.GetRecords(ctx, path)
	case ".xlsx", ".xlsm":
		return r.xlsx.GetRecords(ctx, path)
	default:
		return nil, fmt.Errorf("%w: unsupported statement format %q", domain.ErrSourceRead, ext)
	}
}
