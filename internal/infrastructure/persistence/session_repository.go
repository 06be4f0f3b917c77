package persistence

import (
	"context"
	"errors"

	"github.com/erp/order-import/internal/domain/shared"
	"github.com/erp/order-import/internal/domain/training"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSessionRepository implements SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// FindBySchedule matches a session by its composite natural key
func (r *GormSessionRepository) FindBySchedule(ctx context.Context, orderID uuid.UUID, date, startTime, endTime string) (*training.Session, error) {
	var s training.Session
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND date = ? AND start_time = ? AND end_time = ?", orderID, date, startTime, endTime).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByOrder returns all sessions of an order ordered by schedule
func (r *GormSessionRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]training.Session, error) {
	var sessions []training.Session
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("date ASC, start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// Save creates or updates a session
func (r *GormSessionRepository) Save(ctx context.Context, s *training.Session) error {
	return r.db.WithContext(ctx).Save(s).Error
}
