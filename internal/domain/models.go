package domain

import "time"

type Category string

const (
	CategoryTax     Category = "TAX"
	CategoryLicense Category = "LICENSE"
	CategoryPermit  Category = "PERMIT"
)

var Categories = []Category{CategoryTax, CategoryLicense, CategoryPermit}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

type CaseStatus string

const (
	CaseStatusPending    CaseStatus = "PENDING"
	CaseStatusInProgress CaseStatus = "IN_PROGRESS"
	CaseStatusCompleted  CaseStatus = "COMPLETED"
	CaseStatusRejected   CaseStatus = "REJECTED"
)

var CaseStatuses = []CaseStatus{CaseStatusPending, CaseStatusInProgress, CaseStatusCompleted, CaseStatusRejected}

// Field names as they appear in CSV headers and JSON payloads.
const (
	FieldCaseID        = "case_id"
	FieldApplicantName = "applicant_name"
	FieldDOB           = "dob"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldCategory      = "category"
	FieldPriority      = "priority"
)

// RecordFields lists the case record fields in validation order.
var RecordFields = []string{
	FieldCaseID,
	FieldApplicantName,
	FieldDOB,
	FieldEmail,
	FieldPhone,
	FieldCategory,
	FieldPriority,
}

// RawRow is one untyped input row keyed by header name.
type RawRow map[string]string

// Clone returns an independent copy of the row.
func (r RawRow) Clone() RawRow {
	out := make(RawRow, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// CaseRecord is the canonical, validated shape of a case.
type CaseRecord struct {
	CaseID        string   `json:"case_id"`
	ApplicantName string   `json:"applicant_name"`
	DOB           string   `json:"dob"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Category      Category `json:"category"`
	Priority      Priority `json:"priority"`
}

// Raw converts the record back into a RawRow.
func (r CaseRecord) Raw() RawRow {
	return RawRow{
		FieldCaseID:        r.CaseID,
		FieldApplicantName: r.ApplicantName,
		FieldDOB:           r.DOB,
		FieldEmail:         r.Email,
		FieldPhone:         r.Phone,
		FieldCategory:      string(r.Category),
		FieldPriority:      string(r.Priority),
	}
}

type Case struct {
	ID string `json:"id"`
	CaseRecord
	Status    CaseStatus `json:"status"`
	Assignee  *string    `json:"assignee,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	CreatedBy string     `json:"createdBy"`
}

// FieldError is a single rule violation reported by the validator.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError attributes a FieldError to a 1-based source row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

type ImportResult struct {
	Success int               `json:"success"`
	Failed  int               `json:"failed"`
	Errors  []ValidationError `json:"errors"`
	Cases   []Case            `json:"cases"`
}

// MaxPageLimit caps the page size of a case listing.
const MaxPageLimit = 100

type CaseFilter struct {
	Page     int
	Limit    int
	Search   string
	Status   *CaseStatus
	Category *Category
	Priority *Priority
}

// CasePatch carries the fields of a partial update. Nil means unchanged.
type CasePatch struct {
	CaseID        *string     `json:"case_id,omitempty"`
	ApplicantName *string     `json:"applicant_name,omitempty"`
	DOB           *string     `json:"dob,omitempty"`
	Email         *string     `json:"email,omitempty"`
	Phone         *string     `json:"phone,omitempty"`
	Category      *string     `json:"category,omitempty"`
	Priority      *string     `json:"priority,omitempty"`
	Status        *CaseStatus `json:"status,omitempty"`
	Assignee      *string     `json:"assignee,omitempty"`
}

type CaseStats struct {
	Total      int                `json:"total"`
	ByStatus   map[CaseStatus]int `json:"by_status"`
	ByCategory map[Category]int   `json:"by_category"`
	ByPriority map[Priority]int   `json:"by_priority"`
}

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOperator Role = "OPERATOR"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ActivityAction string

const (
	ActivityCreated  ActivityAction = "created"
	ActivityUpdated  ActivityAction = "updated"
	ActivityDeleted  ActivityAction = "deleted"
	ActivityImported ActivityAction = "imported"
)

type Activity struct {
	EventID   string         `json:"event_id"`
	CaseID    string         `json:"case_id"`
	Action    ActivityAction `json:"action"`
	Actor     string         `json:"actor"`
	Timestamp time.Time      `json:"timestamp"`
}
