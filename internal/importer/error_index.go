package importer

import (
	"strconv"

	"github.com/grachmannico95/casedesk-be/internal/domain"
)

// ErrorIndex groups validation errors by "row-field" so a grid can annotate
// a cell without scanning the whole error list. Rows are 1-based parse
// positions, not positions in the valid record list.
type ErrorIndex map[string][]domain.ValidationError

func IndexKey(row int, field string) string {
	return strconv.Itoa(row) + "-" + field
}

// BuildIndex preserves the insertion order of errs within each group.
func BuildIndex(errs []domain.ValidationError) ErrorIndex {
	index := make(ErrorIndex, len(errs))
	for _, e := range errs {
		key := IndexKey(e.Row, e.Field)
		index[key] = append(index[key], e)
	}
	return index
}

func (ix ErrorIndex) Lookup(row int, field string) []domain.ValidationError {
	return ix[IndexKey(row, field)]
}

func (ix ErrorIndex) Has(row int, field string) bool {
	return len(ix[IndexKey(row, field)]) > 0
}

// Clone returns a copy whose groups can be modified independently.
func (ix ErrorIndex) Clone() ErrorIndex {
	out := make(ErrorIndex, len(ix))
	for key, group := range ix {
		out[key] = append([]domain.ValidationError(nil), group...)
	}
	return out
}
