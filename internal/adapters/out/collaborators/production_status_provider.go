package collaborators

import (
	"context"
	"errors"

	"flowtrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductionStatusDTO represents the replicated production state of one order.
type ProductionStatusDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status  string
}

// TableName specifies the database table name for replicated production state.
func (ProductionStatusDTO) TableName() string {
	return "production_statuses"
}

// GormProductionStatusProvider implements ProductionStatusProvider against the
// replicated production-status table.
type GormProductionStatusProvider struct {
	db *gorm.DB
}

// NewGormProductionStatusProvider creates a new production status adapter.
func NewGormProductionStatusProvider(db *gorm.DB) *GormProductionStatusProvider {
	return &GormProductionStatusProvider{db: db}
}

// Status returns the order's production status. Orders the feed has never
// reported on are treated as not started and report PENDING.
func (p *GormProductionStatusProvider) Status(
	ctx context.Context,
	orderID kernel.UUID,
) (kernel.ProductionStatus, error) {
	if err := orderID.Validate(); err != nil {
		return kernel.UnknownProductionStatus, err
	}

	var dto ProductionStatusDTO
	err := p.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.ProductionPending, nil
	}
	if err != nil {
		return kernel.UnknownProductionStatus, err
	}

	return kernel.ProductionStatusFromString(dto.Status)
}
