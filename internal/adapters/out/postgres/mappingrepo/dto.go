// Package mappingrepo persists the status mapping table. The table is small,
// edited as a whole, and read on every assignment pass and resolution.
package mappingrepo

import (
	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/domain/model/statusmap"
)

// StatusMappingDTO represents one mapping table row in the database.
type StatusMappingDTO struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	StatusValue string `gorm:"index"`
	Area        string
	Label       string
	SortOrder   int
	IsActive    bool `gorm:"index"`
}

// TableName specifies the database table name for mapping rows.
func (StatusMappingDTO) TableName() string {
	return "status_mappings"
}

// fromDomain converts a mapping value object to its database representation.
func fromDomain(mapping statusmap.StatusMapping) StatusMappingDTO {
	return StatusMappingDTO{
		StatusValue: mapping.StatusValue(),
		Area:        mapping.Area().String(),
		Label:       mapping.Label(),
		SortOrder:   mapping.SortOrder(),
		IsActive:    mapping.IsActive(),
	}
}

// toDomain converts a database row to a mapping value object.
func toDomain(dto StatusMappingDTO) (statusmap.StatusMapping, error) {
	area, err := kernel.AreaFromString(dto.Area)
	if err != nil {
		return statusmap.StatusMapping{}, err
	}

	return statusmap.NewStatusMapping(dto.StatusValue, area, dto.Label, dto.SortOrder, dto.IsActive)
}
