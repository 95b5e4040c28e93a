package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/grachmannico95/casedesk-be/internal/domain"
)

// Parser turns file bytes into header-keyed rows.
type Parser interface {
	Parse(r io.Reader) ([]domain.RawRow, error)
}

// CSVParser treats the first record as the header and skips fully empty lines.
type CSVParser struct{}

func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

func (p *CSVParser) Parse(r io.Reader) ([]domain.RawRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", domain.ErrParse, domain.ErrEmptyFile)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	keys := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		keys[i] = normalizeHeader(h)
	}

	rows := make([]domain.RawRow, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
		}
		if isRecordEmpty(record) {
			continue
		}
		rows = append(rows, rowToMap(keys, record))
	}

	return rows, nil
}

// ParseBytes is a convenience wrapper around Parse.
func ParseBytes(p Parser, data []byte) ([]domain.RawRow, error) {
	return p.Parse(bytes.NewReader(data))
}

func normalizeHeader(h string) string {
	return strings.TrimSpace(strings.ToLower(h))
}

func isRecordEmpty(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func rowToMap(header []string, record []string) domain.RawRow {
	out := make(domain.RawRow, len(header))
	for idx, key := range header {
		if key == "" {
			continue
		}
		val := ""
		if idx < len(record) {
			val = strings.TrimSpace(record[idx])
		}
		out[key] = val
	}
	return out
}
