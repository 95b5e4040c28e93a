package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grachmannico95/casedesk-be/internal/domain"
)

func TestCSVParser_Parse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []domain.RawRow
	}{
		{
			name:  "header keyed rows",
			input: "case_id,applicant_name\nC-1,Ana\nC-2,Budi\n",
			expected: []domain.RawRow{
				{"case_id": "C-1", "applicant_name": "Ana"},
				{"case_id": "C-2", "applicant_name": "Budi"},
			},
		},
		{
			name:  "headers normalized and bom stripped",
			input: "\ufeff Case_ID ,APPLICANT_NAME\nC-1,Ana\n",
			expected: []domain.RawRow{
				{"case_id": "C-1", "applicant_name": "Ana"},
			},
		},
		{
			name:  "empty lines skipped",
			input: "case_id,priority\n\nC-1,HIGH\n , \nC-2,LOW\n",
			expected: []domain.RawRow{
				{"case_id": "C-1", "priority": "HIGH"},
				{"case_id": "C-2", "priority": "LOW"},
			},
		},
		{
			name:  "short record fills missing cells",
			input: "case_id,email,phone\nC-1,a@b.co\n",
			expected: []domain.RawRow{
				{"case_id": "C-1", "email": "a@b.co", "phone": ""},
			},
		},
		{
			name:  "values trimmed",
			input: "case_id,category\n  C-1  ,TAX  \n",
			expected: []domain.RawRow{
				{"case_id": "C-1", "category": "TAX"},
			},
		},
		{
			name:     "header only",
			input:    "case_id,applicant_name\n",
			expected: []domain.RawRow{},
		},
	}

	parser := NewCSVParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := parser.Parse(strings.NewReader(tt.input))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, rows)
		})
	}
}

func TestCSVParser_Parse_EmptyFile(t *testing.T) {
	_, err := NewCSVParser().Parse(strings.NewReader(""))

	assert.ErrorIs(t, err, domain.ErrParse)
	assert.ErrorIs(t, err, domain.ErrEmptyFile)
}

func TestCSVParser_Parse_Malformed(t *testing.T) {
	_, err := ParseBytes(NewCSVParser(), []byte("case_id,name\n\"C-1,Ana\n"))

	assert.ErrorIs(t, err, domain.ErrParse)
}
