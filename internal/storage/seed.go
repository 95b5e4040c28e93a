package storage

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/grachmannico95/casedesk-be/internal/domain"
)

const (
	DemoCaseCount = 50
	demoActor     = "Test User"
)

var demoNames = []string{"Asha Verma", "John Doe", "Li Wei", "Maria Santos", "Ahmed Khan"}

// SeedDemoCases inserts count cases C-1000 onwards. The same seed always
// yields the same data.
func SeedDemoCases(ctx context.Context, repo domain.CaseRepository, count int, seed uint64) error {
	rng := rand.New(rand.NewPCG(seed, seed))
	now := time.Now().UTC()

	for i := 0; i < count; i++ {
		dob := time.Date(1970+rng.IntN(40), time.Month(1+rng.IntN(12)), 1+rng.IntN(28), 0, 0, 0, 0, time.UTC)

		c := domain.Case{
			CaseRecord: domain.CaseRecord{
				CaseID:        fmt.Sprintf("C-%d", 1000+i),
				ApplicantName: demoNames[rng.IntN(len(demoNames))],
				DOB:           dob.Format(time.DateOnly),
				Email:         fmt.Sprintf("user%d@example.com", i),
				Phone:         fmt.Sprintf("+1%d", 1000000000+rng.Int64N(9000000000)),
				Category:      domain.Categories[rng.IntN(len(domain.Categories))],
				Priority:      domain.Priorities[rng.IntN(len(domain.Priorities))],
			},
			Status:    domain.CaseStatuses[rng.IntN(len(domain.CaseStatuses))],
			CreatedAt: now.Add(-time.Duration(rng.IntN(30)) * 24 * time.Hour),
			CreatedBy: demoActor,
		}
		if rng.IntN(2) == 0 {
			assignee := demoActor
			c.Assignee = &assignee
		}

		if _, err := repo.CreateCase(ctx, c); err != nil {
			return fmt.Errorf("seed case %s: %w", c.CaseID, err)
		}
	}

	return nil
}
