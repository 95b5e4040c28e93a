package storage

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/grachmannico95/casedesk-be/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

type MemoryStore struct {
	cases           map[string]*domain.Case
	order           []string
	nextCaseID      int
	users           map[string]*domain.User
	usersByEmail    map[string]string
	activity        map[string][]domain.Activity
	processedEvents map[string]bool
	now             func() time.Time
	mu              sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cases:           make(map[string]*domain.Case),
		nextCaseID:      1,
		users:           make(map[string]*domain.User),
		usersByEmail:    make(map[string]string),
		activity:        make(map[string][]domain.Activity),
		processedEvents: make(map[string]bool),
		now:             time.Now,
	}
}

func (s *MemoryStore) ListCases(ctx context.Context, filter domain.CaseFilter) ([]domain.Case, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]domain.Case, 0)
	for _, id := range s.order {
		c := s.cases[id]
		if search != "" &&
			!strings.Contains(strings.ToLower(c.CaseID), search) &&
			!strings.Contains(strings.ToLower(c.ApplicantName), search) {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if filter.Category != nil && c.Category != *filter.Category {
			continue
		}
		if filter.Priority != nil && c.Priority != *filter.Priority {
			continue
		}
		filtered = append(filtered, copyCase(c))
	}

	total := len(filtered)

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > domain.MaxPageLimit {
		limit = domain.MaxPageLimit
	}

	// compare in pages so start never overflows for huge page numbers
	pages := (total + limit - 1) / limit
	if page-1 >= pages {
		return []domain.Case{}, total, nil
	}
	start := (page - 1) * limit
	end := min(start+limit, total)

	return filtered[start:end], total, nil
}

func (s *MemoryStore) GetCase(ctx context.Context, id string) (*domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.cases[id]
	if !exists {
		return nil, domain.ErrCaseNotFound
	}
	out := copyCase(c)
	return &out, nil
}

// CreateCase assigns the store id and timestamps. Status defaults to PENDING.
func (s *MemoryStore) CreateCase(ctx context.Context, c domain.Case) (*domain.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c.ID = strconv.Itoa(s.nextCaseID)
	s.nextCaseID++
	if c.Status == "" {
		c.Status = domain.CaseStatusPending
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	stored := copyCase(&c)
	s.cases[c.ID] = &stored
	s.order = append(s.order, c.ID)

	return &c, nil
}

func (s *MemoryStore) UpdateCase(ctx context.Context, c domain.Case) (*domain.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.cases[c.ID]
	if !exists {
		return nil, domain.ErrCaseNotFound
	}

	c.CreatedAt = existing.CreatedAt
	c.CreatedBy = existing.CreatedBy
	c.UpdatedAt = s.now()

	stored := copyCase(&c)
	s.cases[c.ID] = &stored

	return &c, nil
}

func (s *MemoryStore) DeleteCase(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cases[id]; !exists {
		return domain.ErrCaseNotFound
	}
	delete(s.cases, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

func (s *MemoryStore) Stats(ctx context.Context) (domain.CaseStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.CaseStats{
		Total:      len(s.cases),
		ByStatus:   make(map[domain.CaseStatus]int, len(domain.CaseStatuses)),
		ByCategory: make(map[domain.Category]int, len(domain.Categories)),
		ByPriority: make(map[domain.Priority]int, len(domain.Priorities)),
	}
	for _, st := range domain.CaseStatuses {
		stats.ByStatus[st] = 0
	}
	for _, cat := range domain.Categories {
		stats.ByCategory[cat] = 0
	}
	for _, p := range domain.Priorities {
		stats.ByPriority[p] = 0
	}
	for _, c := range s.cases {
		stats.ByStatus[c.Status]++
		stats.ByCategory[c.Category]++
		stats.ByPriority[c.Priority]++
	}

	return stats, nil
}

func (s *MemoryStore) AddActivity(ctx context.Context, activity domain.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activity[activity.CaseID] = append(s.activity[activity.CaseID], activity)

	return nil
}

func (s *MemoryStore) ListActivity(ctx context.Context, caseID string) ([]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.activity[caseID]
	out := make([]domain.Activity, len(entries))
	copy(out, entries)

	return out, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}

// CreateUser stores a user keyed by lower-cased email.
func (s *MemoryStore) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(user.Email)
	if _, exists := s.usersByEmail[email]; exists {
		return nil, domain.ErrUserExists
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}

	stored := user
	s.users[user.ID] = &stored
	s.usersByEmail[email] = user.ID

	return &user, nil
}

func (s *MemoryStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.usersByEmail[normalizeEmail(email)]
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	user := *s.users[id]
	return &user, nil
}

func (s *MemoryStore) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[id]
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func copyCase(c *domain.Case) domain.Case {
	out := *c
	if c.Assignee != nil {
		assignee := *c.Assignee
		out.Assignee = &assignee
	}
	return out
}
