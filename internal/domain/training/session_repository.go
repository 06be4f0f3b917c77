package training

import (
	"context"

	"github.com/google/uuid"
)

// SessionRepository defines the persistence contract for training sessions
type SessionRepository interface {
	// FindBySchedule matches a session by its composite natural key
	// (order, date, start time, end time).
	FindBySchedule(ctx context.Context, orderID uuid.UUID, date, startTime, endTime string) (*Session, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]Session, error)
	Save(ctx context.Context, s *Session) error
}
