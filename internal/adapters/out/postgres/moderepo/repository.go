// Package moderepo persists the per-area placement mode configuration. One row
// per configurable area; areas without a row default to AUTO on read.
package moderepo

import (
	"context"

	"flowtrack/internal/core/domain/model/areamode"
	"flowtrack/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AreaModeDTO represents one area's stored placement mode.
type AreaModeDTO struct {
	Area string `gorm:"primaryKey"`
	Mode string
}

// TableName specifies the database table name for area modes.
func (AreaModeDTO) TableName() string {
	return "area_modes"
}

// GormAreaModeRepository implements AreaModeRepository using GORM.
type GormAreaModeRepository struct {
	db *gorm.DB
}

// NewGormAreaModeRepository creates a new GORM mode configuration repository.
func NewGormAreaModeRepository(db *gorm.DB) *GormAreaModeRepository {
	return &GormAreaModeRepository{db: db}
}

// Get retrieves the current mode set. Missing rows default to AUTO, so an
// empty table yields the all-AUTO configuration.
func (r *GormAreaModeRepository) Get(ctx context.Context) (areamode.ModeSet, error) {
	var dtos []AreaModeDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return areamode.ModeSet{}, err
	}

	stored := make(map[kernel.Area]areamode.Mode, len(dtos))
	for _, dto := range dtos {
		area, err := kernel.AreaFromString(dto.Area)
		if err != nil {
			return areamode.ModeSet{}, err
		}
		mode, err := areamode.ModeFromString(dto.Mode)
		if err != nil {
			return areamode.ModeSet{}, err
		}
		stored[area] = mode
	}

	return areamode.RestoreModeSet(stored)
}

// Save persists the mode set, upserting one row per configurable area.
func (r *GormAreaModeRepository) Save(ctx context.Context, modes areamode.ModeSet) error {
	if err := modes.Validate(); err != nil {
		return err
	}

	dtos := make([]AreaModeDTO, 0, len(modes.All()))
	for area, mode := range modes.All() {
		dtos = append(dtos, AreaModeDTO{
			Area: area.String(),
			Mode: mode.String(),
		})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "area"}},
			DoUpdates: clause.AssignmentColumns([]string{"mode"}),
		}).
		Create(&dtos).Error
}
