// Package collaborators provides database-backed adapters for the external
// systems consulted during manual move precondition checks: the issue tracker
// and the production-status feed. Both systems replicate their per-order state
// into local tables, so the adapters read those tables instead of calling out.
package collaborators

import (
	"context"

	"flowtrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueDTO represents one replicated issue row attached to an order.
type IssueDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	Status  string    `gorm:"index"`
	Summary string
}

// TableName specifies the database table name for replicated issues.
func (IssueDTO) TableName() string {
	return "order_issues"
}

const issueStatusOpen = "OPEN"

// GormIssueTracker implements IssueTracker against the replicated issue table.
type GormIssueTracker struct {
	db *gorm.DB
}

// NewGormIssueTracker creates a new issue tracker adapter.
func NewGormIssueTracker(db *gorm.DB) *GormIssueTracker {
	return &GormIssueTracker{db: db}
}

// OpenIssueCount returns the number of OPEN issues attached to the order.
// Orders without issue rows report zero.
func (t *GormIssueTracker) OpenIssueCount(ctx context.Context, orderID kernel.UUID) (int, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := t.db.WithContext(ctx).
		Model(&IssueDTO{}).
		Where("order_id = ? AND status = ?", orderID.Bytes(), issueStatusOpen).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
