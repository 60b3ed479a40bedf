// Package orderrepo provides data transfer objects and mapping functions for
// manufacturing order persistence. It implements the repository pattern for the
// order aggregate, handling the conversion between the domain model and the
// relational representation.
package orderrepo

import (
	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Areas and the placement source are stored by name, quantities as numerics,
// and the change report as a JSON array. Version carries the optimistic
// concurrency token.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number            string          `gorm:"uniqueIndex"`
	Plant             string
	Material          string
	StartDate         string
	FinishDate        string
	OrderQuantity     decimal.Decimal `gorm:"type:numeric(14,3)"`
	DeliveredQuantity decimal.Decimal `gorm:"type:numeric(14,3)"`
	RawStatus         string
	CurrentArea       string          `gorm:"index"`
	SapArea           string
	Source            string
	Discrepancy       bool
	ChangedFields     []string        `gorm:"serializer:json"`
	HasChanges        bool
	Version           int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.ManufacturingOrder) OrderDTO {
	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		Number:            aggregate.Number(),
		Plant:             aggregate.Plant(),
		Material:          aggregate.Material(),
		StartDate:         aggregate.StartDate(),
		FinishDate:        aggregate.FinishDate(),
		OrderQuantity:     aggregate.OrderQuantity(),
		DeliveredQuantity: aggregate.DeliveredQuantity(),
		RawStatus:         aggregate.RawStatus(),
		CurrentArea:       aggregate.CurrentArea().String(),
		SapArea:           aggregate.SapArea().String(),
		Source:            aggregate.Source().String(),
		Discrepancy:       aggregate.Discrepancy(),
		ChangedFields:     aggregate.ChangedFields(),
		HasChanges:        aggregate.HasChanges(),
		Version:           aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order aggregate using
// RestoreManufacturingOrder, including the placement state and version token.
func toDomain(dto OrderDTO) (*order.ManufacturingOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	currentArea, err := kernel.AreaFromString(dto.CurrentArea)
	if err != nil {
		return nil, err
	}

	sapArea, err := kernel.AreaFromString(dto.SapArea)
	if err != nil {
		return nil, err
	}

	source, err := kernel.SourceFromString(dto.Source)
	if err != nil {
		return nil, err
	}

	return order.RestoreManufacturingOrder(
		id,
		dto.Number,
		dto.Plant,
		dto.Material,
		dto.StartDate,
		dto.FinishDate,
		dto.OrderQuantity,
		dto.DeliveredQuantity,
		dto.RawStatus,
		currentArea,
		sapArea,
		source,
		dto.Discrepancy,
		dto.ChangedFields,
		dto.HasChanges,
		dto.Version,
	)
}
