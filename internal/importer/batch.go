package importer

import (
	"github.com/google/uuid"

	"github.com/grachmannico95/casedesk-be/internal/domain"
)

// Batch holds the rows of one upload together with their validation results.
// It is owned by a single Session and never shared.
type Batch struct {
	ID       string
	Filename string

	rows    []domain.RawRow
	results []rowOutcome

	valid  []domain.CaseRecord
	errors []domain.ValidationError
	index  ErrorIndex
}

func newBatch(filename string, rows []domain.RawRow, v RowValidator) *Batch {
	b := &Batch{
		ID:       uuid.New().String(),
		Filename: filename,
		rows:     rows,
		results:  make([]rowOutcome, len(rows)),
	}
	for i, row := range rows {
		b.results[i] = validateRow(v, row)
	}
	b.rebuild()
	return b
}

// rebuild recomputes the flat record and error lists plus the index from the
// per-row cache.
func (b *Batch) rebuild() {
	result := collect(b.rows, b.results)
	b.valid = result.ValidRecords
	b.errors = result.Errors
	b.index = BuildIndex(b.errors)
}

func (b *Batch) replaceRow(rowNumber int, row domain.RawRow, v RowValidator) error {
	if rowNumber < 1 || rowNumber > len(b.rows) {
		return domain.ErrRowNotFound
	}
	b.rows[rowNumber-1] = row
	b.results[rowNumber-1] = validateRow(v, row)
	b.rebuild()
	return nil
}

// deleteRow removes a row; later rows move up one position.
func (b *Batch) deleteRow(rowNumber int) error {
	if rowNumber < 1 || rowNumber > len(b.rows) {
		return domain.ErrRowNotFound
	}
	i := rowNumber - 1
	b.rows = append(b.rows[:i], b.rows[i+1:]...)
	b.results = append(b.results[:i], b.results[i+1:]...)
	b.rebuild()
	return nil
}

func (b *Batch) snapshot() BatchView {
	rows := make([]domain.RawRow, len(b.rows))
	for i, r := range b.rows {
		rows[i] = r.Clone()
	}
	valid := make([]domain.CaseRecord, len(b.valid))
	copy(valid, b.valid)
	errs := make([]domain.ValidationError, len(b.errors))
	copy(errs, b.errors)

	return BatchView{
		ID:           b.ID,
		Filename:     b.Filename,
		Rows:         rows,
		ValidRecords: valid,
		Errors:       errs,
		Index:        b.index.Clone(),
	}
}

// BatchView is a read-only copy of a Batch.
type BatchView struct {
	ID           string                   `json:"id"`
	Filename     string                   `json:"filename"`
	Rows         []domain.RawRow          `json:"rows"`
	ValidRecords []domain.CaseRecord      `json:"valid_records"`
	Errors       []domain.ValidationError `json:"errors"`
	Index        ErrorIndex               `json:"error_index"`
}

func (v BatchView) Summary() Summary {
	invalidRows := make(map[int]struct{})
	for _, e := range v.Errors {
		invalidRows[e.Row] = struct{}{}
	}
	return Summary{
		TotalRows:   len(v.Rows),
		ValidRows:   len(v.ValidRecords),
		InvalidRows: len(invalidRows),
		ErrorCount:  len(v.Errors),
	}
}

type Summary struct {
	TotalRows   int `json:"total_rows"`
	ValidRows   int `json:"valid_rows"`
	InvalidRows int `json:"invalid_rows"`
	ErrorCount  int `json:"error_count"`
}
