package storage

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/internal/validation"
)

func newCase(caseID, name string, category domain.Category, priority domain.Priority) domain.Case {
	return domain.Case{
		CaseRecord: domain.CaseRecord{
			CaseID:        caseID,
			ApplicantName: name,
			DOB:           "1990-01-01",
			Email:         "a@example.com",
			Phone:         "+14155550100",
			Category:      category,
			Priority:      priority,
		},
		CreatedBy: "Test User",
	}
}

func TestMemoryStore_CreateCase(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.CreateCase(ctx, newCase("C-1", "Jane", domain.CategoryTax, domain.PriorityHigh))
	require.NoError(t, err)
	second, err := store.CreateCase(ctx, newCase("C-2", "John", domain.CategoryPermit, domain.PriorityLow))
	require.NoError(t, err)

	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)
	assert.Equal(t, domain.CaseStatusPending, first.Status)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	got, err := store.GetCase(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "C-1", got.CaseID)
}

func TestMemoryStore_GetCase_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetCase(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
}

func TestMemoryStore_ReturnedCasesAreCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	assignee := "Test User"
	c := newCase("C-1", "Jane", domain.CategoryTax, domain.PriorityHigh)
	c.Assignee = &assignee

	created, err := store.CreateCase(ctx, c)
	require.NoError(t, err)

	got, err := store.GetCase(ctx, created.ID)
	require.NoError(t, err)
	*got.Assignee = "Someone Else"
	got.ApplicantName = "Mutated"

	again, err := store.GetCase(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", again.ApplicantName)
	assert.Equal(t, "Test User", *again.Assignee)
}

func TestMemoryStore_UpdateCase(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	created, err := store.CreateCase(ctx, newCase("C-1", "Jane", domain.CategoryTax, domain.PriorityHigh))
	require.NoError(t, err)

	update := *created
	update.Status = domain.CaseStatusCompleted
	update.CreatedBy = "ignored"
	updated, err := store.UpdateCase(ctx, update)

	require.NoError(t, err)
	assert.Equal(t, domain.CaseStatusCompleted, updated.Status)
	assert.Equal(t, "Test User", updated.CreatedBy)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = store.UpdateCase(ctx, domain.Case{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
}

func TestMemoryStore_DeleteCase(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	created, err := store.CreateCase(ctx, newCase("C-1", "Jane", domain.CategoryTax, domain.PriorityHigh))
	require.NoError(t, err)

	require.NoError(t, store.DeleteCase(ctx, created.ID))

	_, err = store.GetCase(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
	assert.ErrorIs(t, store.DeleteCase(ctx, created.ID), domain.ErrCaseNotFound)

	cases, total, err := store.ListCases(ctx, domain.CaseFilter{})
	require.NoError(t, err)
	assert.Empty(t, cases)
	assert.Equal(t, 0, total)
}

func TestMemoryStore_ListCases(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seed := []domain.Case{
		newCase("C-100", "Asha Verma", domain.CategoryTax, domain.PriorityHigh),
		newCase("C-101", "John Doe", domain.CategoryLicense, domain.PriorityLow),
		newCase("C-102", "Li Wei", domain.CategoryTax, domain.PriorityLow),
		newCase("X-200", "Maria Santos", domain.CategoryPermit, domain.PriorityMedium),
	}
	for _, c := range seed {
		_, err := store.CreateCase(ctx, c)
		require.NoError(t, err)
	}

	tax := domain.CategoryTax
	low := domain.PriorityLow
	pending := domain.CaseStatusPending
	rejected := domain.CaseStatusRejected

	tests := []struct {
		name          string
		filter        domain.CaseFilter
		expectedIDs   []string
		expectedTotal int
	}{
		{name: "defaults", filter: domain.CaseFilter{}, expectedIDs: []string{"C-100", "C-101", "C-102", "X-200"}, expectedTotal: 4},
		{name: "search by case id", filter: domain.CaseFilter{Search: "c-10"}, expectedIDs: []string{"C-100", "C-101", "C-102"}, expectedTotal: 3},
		{name: "search by name case insensitive", filter: domain.CaseFilter{Search: "MARIA"}, expectedIDs: []string{"X-200"}, expectedTotal: 1},
		{name: "category filter", filter: domain.CaseFilter{Category: &tax}, expectedIDs: []string{"C-100", "C-102"}, expectedTotal: 2},
		{name: "category and priority", filter: domain.CaseFilter{Category: &tax, Priority: &low}, expectedIDs: []string{"C-102"}, expectedTotal: 1},
		{name: "status filter", filter: domain.CaseFilter{Status: &pending}, expectedIDs: []string{"C-100", "C-101", "C-102", "X-200"}, expectedTotal: 4},
		{name: "status no match", filter: domain.CaseFilter{Status: &rejected}, expectedIDs: []string{}, expectedTotal: 0},
		{name: "second page", filter: domain.CaseFilter{Page: 2, Limit: 3}, expectedIDs: []string{"X-200"}, expectedTotal: 4},
		{name: "page past end", filter: domain.CaseFilter{Page: 5, Limit: 3}, expectedIDs: []string{}, expectedTotal: 4},
		{name: "huge page", filter: domain.CaseFilter{Page: 1<<62 + 1, Limit: 3}, expectedIDs: []string{}, expectedTotal: 4},
		{name: "huge page and limit", filter: domain.CaseFilter{Page: math.MaxInt, Limit: math.MaxInt}, expectedIDs: []string{}, expectedTotal: 4},
		{name: "huge limit is capped", filter: domain.CaseFilter{Page: 1, Limit: math.MaxInt}, expectedIDs: []string{"C-100", "C-101", "C-102", "X-200"}, expectedTotal: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases, total, err := store.ListCases(ctx, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, total)
			ids := make([]string, 0, len(cases))
			for _, c := range cases {
				ids = append(ids, c.CaseID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestMemoryStore_Stats(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.CreateCase(ctx, newCase("C-1", "Jane", domain.CategoryTax, domain.PriorityHigh))
	require.NoError(t, err)
	_, err = store.CreateCase(ctx, newCase("C-2", "John", domain.CategoryTax, domain.PriorityLow))
	require.NoError(t, err)

	stats, err := store.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[domain.CaseStatusPending])
	assert.Equal(t, 0, stats.ByStatus[domain.CaseStatusCompleted])
	assert.Equal(t, 2, stats.ByCategory[domain.CategoryTax])
	assert.Equal(t, 0, stats.ByCategory[domain.CategoryPermit])
	assert.Equal(t, 1, stats.ByPriority[domain.PriorityHigh])
	assert.Len(t, stats.ByStatus, len(domain.CaseStatuses))
}

func TestMemoryStore_Activity(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.AddActivity(ctx, domain.Activity{EventID: "e1", CaseID: "1", Action: domain.ActivityCreated}))
	require.NoError(t, store.AddActivity(ctx, domain.Activity{EventID: "e2", CaseID: "1", Action: domain.ActivityUpdated}))
	require.NoError(t, store.AddActivity(ctx, domain.Activity{EventID: "e3", CaseID: "2", Action: domain.ActivityCreated}))

	entries, err := store.ListActivity(ctx, "1")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.ActivityCreated, entries[0].Action)
	assert.Equal(t, domain.ActivityUpdated, entries[1].Action)

	empty, err := store.ListActivity(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore_EventIdempotency(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	processed, err := store.IsEventProcessed(ctx, "event-1")
	require.NoError(t, err)
	assert.False(t, processed)

	require.NoError(t, store.MarkEventProcessed(ctx, "event-1"))

	processed, err = store.IsEventProcessed(ctx, "event-1")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestMemoryStore_Users(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	created, err := store.CreateUser(ctx, domain.User{Email: "Test@Example.com", Name: "Test User", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	byEmail, err := store.FindUserByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := store.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", byID.Name)

	_, err = store.CreateUser(ctx, domain.User{Email: "test@example.com"})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	_, err = store.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = store.FindUserByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSeedDemoCases(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, SeedDemoCases(ctx, store, DemoCaseCount, 42))

	cases, total, err := store.ListCases(ctx, domain.CaseFilter{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, DemoCaseCount, total)
	assert.Equal(t, "C-1000", cases[0].CaseID)
	assert.Equal(t, "C-1049", cases[total-1].CaseID)

	v := validation.New()
	for _, c := range cases {
		_, errs := v.ValidateRecord(c.CaseRecord)
		assert.Empty(t, errs, "seeded case %s should validate", c.CaseID)
	}
}
