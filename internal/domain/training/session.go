package training

import (
	"github.com/erp/order-import/internal/domain/shared"
	"github.com/google/uuid"
)

// SessionState represents the lifecycle state of a training session
type SessionState string

const (
	SessionStateConfirmed SessionState = "confirmed"
	SessionStateCancelled SessionState = "cancelled"
)

// Session represents a scheduled training session attached to a sales order.
// Sessions are append-only through the import path: the composite key
// (order, date, start, end) is never updated once present.
type Session struct {
	shared.BaseEntity
	OrderID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_session_schedule,priority:1"`
	Name      string       `gorm:"type:varchar(200);not null"` // training title
	TrainerID uuid.UUID    `gorm:"type:uuid;not null"`
	Date      string       `gorm:"type:varchar(10);not null;index:idx_session_schedule,priority:2"` // YYYY-MM-DD
	StartTime string       `gorm:"type:varchar(5);not null;index:idx_session_schedule,priority:3"`  // HH:MM
	EndTime   string       `gorm:"type:varchar(5);not null;index:idx_session_schedule,priority:4"`  // HH:MM
	Location  string       `gorm:"type:varchar(200)"`
	Modality  string       `gorm:"type:varchar(50)"`
	State     SessionState `gorm:"type:varchar(20);not null;default:'confirmed'"`
}

// TableName returns the table name for GORM
func (Session) TableName() string {
	return "training_sessions"
}

// NewSession creates a confirmed training session
func NewSession(orderID, trainerID uuid.UUID, name, date, startTime, endTime, location, modality string) (*Session, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if trainerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TRAINER", "Trainer ID cannot be empty")
	}
	if date == "" {
		return nil, shared.NewDomainError("INVALID_DATE", "Session date cannot be empty")
	}
	if startTime == "" || endTime == "" {
		return nil, shared.NewDomainError("INVALID_TIMES", "Session times cannot be empty")
	}
	return &Session{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		Name:       name,
		TrainerID:  trainerID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		Location:   location,
		Modality:   modality,
		State:      SessionStateConfirmed,
	}, nil
}
