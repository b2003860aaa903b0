package gateway

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"spending-analyzer/internal/domain"
)

const utf8BOM = "\ufeff"

// CSVStatementRepository implements the StatementRepository interface for CSV files.
type CSVStatementRepository struct{}

// NewCSVStatementRepository creates a new repository instance.
func NewCSVStatementRepository() *CSVStatementRepository {
	return &CSVStatementRepository{}
}

// GetRecords reads a CSV statement whose first row names the columns.
func (r *CSVStatementRepository) GetRecords(ctx context.Context, path string) ([]domain.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open statement file %s: %w", domain.ErrSourceRead, path, err)
	}
	defer file.Close()

	return r.ReadRecords(ctx, file)
}

// ReadRecords parses CSV statement data from any reader.
func (r *CSVStatementRepository) ReadRecords(ctx context.Context, in io.Reader) ([]domain.Record, error) {
	buffered := bufio.NewReader(in)
	if bom, _ := buffered.Peek(len(utf8BOM)); string(bom) == utf8BOM {
		_, _ = buffered.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(buffered)
	// Statements exported by banks are often ragged.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", domain.ErrSourceRead, err)
	}

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: error reading record: %w", domain.ErrSourceRead, err)
		}
		rows = append(rows, row)
	}
	return recordsFromRows(header, rows), nil
}

// recordsFromRows keys every row by the header names. Cells beyond the
// header are ignored and missing cells read as empty.
func recordsFromRows(header []string, rows [][]string) []domain.Record {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		fields := make(map[string]string, 2)
		for _, name := range []string{domain.FieldMerchant, domain.FieldAmount} {
			if i, ok := columns[name]; ok && i < len(row) {
				fields[name] = row[i]
			}
		}
		records = append(records, domain.RecordFromFields(fields))
	}
	return records
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
