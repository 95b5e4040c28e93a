package eventbus

import (
	"time"

	"github.com/google/uuid"

	"github.com/grachmannico95/casedesk-be/internal/domain"
)

type EventType string

const (
	EventTypeCaseActivity EventType = "case_activity"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	Retries   int         `json:"retries"`
}

type CaseEvent struct {
	CaseID string                `json:"case_id"`
	Action domain.ActivityAction `json:"action"`
	Actor  string                `json:"actor"`
}

func NewCaseEvent(caseID string, action domain.ActivityAction, actor string) Event {
	return Event{
		ID:   uuid.New().String(),
		Type: EventTypeCaseActivity,
		Payload: CaseEvent{
			CaseID: caseID,
			Action: action,
			Actor:  actor,
		},
		Timestamp: time.Now(),
	}
}
