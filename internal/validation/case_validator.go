// Package validation checks untyped case rows against the case record shape.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/grachmannico95/casedesk-be/internal/domain"
)

const (
	MsgCaseIDRequired        = "Case ID is required"
	MsgApplicantNameRequired = "Applicant name is required"
	MsgInvalidDate           = "Date of birth must be between 1900 and today"
	MsgInvalidEmail          = "Invalid email"
	MsgInvalidPhone          = "Invalid E.164 phone format"
	MsgInvalidCategory       = "Category must be TAX, LICENSE, or PERMIT"
	MsgInvalidPriority       = "Priority must be LOW, MEDIUM, or HIGH"
)

var phoneRx = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

var minDOB = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

type Validator struct {
	now      func() time.Time
	validate *validator.Validate
}

type Option func(*Validator)

// WithClock overrides the clock used for the upper date-of-birth bound.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{
		now:      time.Now,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks every field of row and returns either a normalized record
// or one FieldError per violated rule, in case_id..priority order. The record
// is the zero value whenever errors are returned.
func (v *Validator) Validate(row domain.RawRow) (domain.CaseRecord, []domain.FieldError) {
	var errs []domain.FieldError
	fail := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}

	caseID := strings.TrimSpace(row[domain.FieldCaseID])
	if caseID == "" {
		fail(domain.FieldCaseID, MsgCaseIDRequired)
	}

	name := strings.TrimSpace(row[domain.FieldApplicantName])
	if name == "" {
		fail(domain.FieldApplicantName, MsgApplicantNameRequired)
	}

	dob := strings.TrimSpace(row[domain.FieldDOB])
	if !v.validDOB(dob) {
		fail(domain.FieldDOB, MsgInvalidDate)
	}

	email := strings.TrimSpace(row[domain.FieldEmail])
	if email != "" && v.validate.Var(email, "email") != nil {
		fail(domain.FieldEmail, MsgInvalidEmail)
	}

	phone := strings.TrimSpace(row[domain.FieldPhone])
	if phone != "" && !phoneRx.MatchString(phone) {
		fail(domain.FieldPhone, MsgInvalidPhone)
	}

	category, ok := ParseCategory(row[domain.FieldCategory])
	if !ok {
		fail(domain.FieldCategory, MsgInvalidCategory)
	}

	priority := domain.PriorityLow
	if raw := strings.TrimSpace(row[domain.FieldPriority]); raw != "" {
		p, ok := ParsePriority(raw)
		if !ok {
			fail(domain.FieldPriority, MsgInvalidPriority)
		}
		priority = p
	}

	if len(errs) > 0 {
		return domain.CaseRecord{}, errs
	}

	return domain.CaseRecord{
		CaseID:        caseID,
		ApplicantName: name,
		DOB:           dob,
		Email:         email,
		Phone:         phone,
		Category:      category,
		Priority:      priority,
	}, nil
}

// ValidateRecord re-checks an already typed record.
func (v *Validator) ValidateRecord(record domain.CaseRecord) (domain.CaseRecord, []domain.FieldError) {
	return v.Validate(record.Raw())
}

func (v *Validator) validDOB(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, ok := parseDate(raw)
	if !ok {
		return false
	}
	now := v.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !parsed.Before(minDOB) && !parsed.After(today)
}

// parseDate returns the UTC calendar date of raw at midnight.
func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			t = t.UTC()
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func ParseCategory(raw string) (domain.Category, bool) {
	c := domain.Category(strings.TrimSpace(raw))
	for _, known := range domain.Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

func ParsePriority(raw string) (domain.Priority, bool) {
	p := domain.Priority(strings.TrimSpace(raw))
	for _, known := range domain.Priorities {
		if p == known {
			return p, true
		}
	}
	return "", false
}

func ParseStatus(raw string) (domain.CaseStatus, bool) {
	s := domain.CaseStatus(strings.TrimSpace(raw))
	for _, known := range domain.CaseStatuses {
		if s == known {
			return s, true
		}
	}
	return "", false
}
