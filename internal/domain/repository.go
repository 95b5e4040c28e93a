package domain

import "context"

type CaseRepository interface {
	// Case records
	ListCases(ctx context.Context, filter CaseFilter) ([]Case, int, error)
	GetCase(ctx context.Context, id string) (*Case, error)
	CreateCase(ctx context.Context, c Case) (*Case, error)
	UpdateCase(ctx context.Context, c Case) (*Case, error)
	DeleteCase(ctx context.Context, id string) error
	Stats(ctx context.Context) (CaseStats, error)

	// Activity feed
	AddActivity(ctx context.Context, activity Activity) error
	ListActivity(ctx context.Context, caseID string) ([]Activity, error)

	// Idempotency tracking
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user User) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUserByID(ctx context.Context, id string) (*User, error)
}
