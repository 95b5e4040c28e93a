package importer

import "github.com/grachmannico95/casedesk-be/internal/domain"

// RowValidator validates one untyped row.
type RowValidator interface {
	Validate(row domain.RawRow) (domain.CaseRecord, []domain.FieldError)
}

type ProcessResult struct {
	ValidRecords []domain.CaseRecord
	Errors       []domain.ValidationError
}

// rowOutcome is the validator's verdict on one source row.
type rowOutcome struct {
	record domain.CaseRecord
	errs   []domain.FieldError
}

func validateRow(v RowValidator, row domain.RawRow) rowOutcome {
	record, errs := v.Validate(row)
	return rowOutcome{record: record, errs: errs}
}

// Process validates rows in input order. Errors carry the 1-based position of
// the source row; ValidRecords keeps the relative order of the passing rows.
func Process(v RowValidator, rows []domain.RawRow) ProcessResult {
	outcomes := make([]rowOutcome, len(rows))
	for i, row := range rows {
		outcomes[i] = validateRow(v, row)
	}
	return collect(rows, outcomes)
}

// collect folds per-row outcomes into records and attributed errors.
// outcomes[i] must belong to rows[i].
func collect(rows []domain.RawRow, outcomes []rowOutcome) ProcessResult {
	result := ProcessResult{
		ValidRecords: make([]domain.CaseRecord, 0, len(rows)),
		Errors:       make([]domain.ValidationError, 0),
	}
	for i, out := range outcomes {
		if len(out.errs) == 0 {
			result.ValidRecords = append(result.ValidRecords, out.record)
			continue
		}
		result.Errors = append(result.Errors, attribute(i+1, rows[i], out.errs)...)
	}
	return result
}

func attribute(rowNumber int, row domain.RawRow, fieldErrs []domain.FieldError) []domain.ValidationError {
	out := make([]domain.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, domain.ValidationError{
			Row:     rowNumber,
			Field:   fe.Field,
			Message: fe.Message,
			Value:   row[fe.Field],
		})
	}
	return out
}
