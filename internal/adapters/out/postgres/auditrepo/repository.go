// Package auditrepo persists the append-only manual move log. Entries are
// written once by the move use case and never updated or deleted; the schema
// and the repository surface both enforce that shape.
package auditrepo

import (
	"context"
	"time"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MoveAuditEntryDTO represents one audit log row in the database.
type MoveAuditEntryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	FromArea      string
	ToArea        string
	Justification string
	MovedAt       time.Time `gorm:"index"`
	Actor         string
}

// TableName specifies the database table name for audit entries.
func (MoveAuditEntryDTO) TableName() string {
	return "move_audit_entries"
}

// GormMoveAuditRepository implements MoveAuditRepository using GORM.
type GormMoveAuditRepository struct {
	db *gorm.DB
}

// NewGormMoveAuditRepository creates a new GORM move audit repository.
func NewGormMoveAuditRepository(db *gorm.DB) *GormMoveAuditRepository {
	return &GormMoveAuditRepository{db: db}
}

// Add appends one audit entry.
func (r *GormMoveAuditRepository) Add(ctx context.Context, entry ports.MoveAuditEntry) error {
	if err := entry.ID.Validate(); err != nil {
		return err
	}
	if err := entry.OrderID.Validate(); err != nil {
		return err
	}

	dto := MoveAuditEntryDTO{
		ID:            entry.ID.Bytes(),
		OrderID:       entry.OrderID.Bytes(),
		FromArea:      entry.FromArea.String(),
		ToArea:        entry.ToArea.String(),
		Justification: entry.Justification,
		MovedAt:       entry.MovedAt,
		Actor:         entry.Actor,
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrder retrieves the audit trail of one order, newest first.
func (r *GormMoveAuditRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]ports.MoveAuditEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MoveAuditEntryDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("moved_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]ports.MoveAuditEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func toDomain(dto MoveAuditEntryDTO) (ports.MoveAuditEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.MoveAuditEntry{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return ports.MoveAuditEntry{}, err
	}

	fromArea, err := kernel.AreaFromString(dto.FromArea)
	if err != nil {
		return ports.MoveAuditEntry{}, err
	}

	toArea, err := kernel.AreaFromString(dto.ToArea)
	if err != nil {
		return ports.MoveAuditEntry{}, err
	}

	return ports.MoveAuditEntry{
		ID:            id,
		OrderID:       orderID,
		FromArea:      fromArea,
		ToArea:        toArea,
		Justification: dto.Justification,
		MovedAt:       dto.MovedAt,
		Actor:         dto.Actor,
	}, nil
}
