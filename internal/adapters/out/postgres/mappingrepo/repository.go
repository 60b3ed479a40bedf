package mappingrepo

import (
	"context"

	"flowtrack/internal/core/domain/model/statusmap"

	"gorm.io/gorm"
)

// GormStatusMappingRepository implements StatusMappingRepository using GORM.
type GormStatusMappingRepository struct {
	db *gorm.DB
}

// NewGormStatusMappingRepository creates a new GORM mapping table repository.
func NewGormStatusMappingRepository(db *gorm.DB) *GormStatusMappingRepository {
	return &GormStatusMappingRepository{db: db}
}

// GetActive retrieves the active mapping rows ordered by sort order.
func (r *GormStatusMappingRepository) GetActive(ctx context.Context) ([]statusmap.StatusMapping, error) {
	var dtos []StatusMappingDTO
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// GetAll retrieves every mapping row, active or not.
func (r *GormStatusMappingRepository) GetAll(ctx context.Context) ([]statusmap.StatusMapping, error) {
	var dtos []StatusMappingDTO
	if err := r.db.WithContext(ctx).Order("sort_order").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// ReplaceAll atomically replaces the whole mapping table with the given rows.
// Callers run it inside a unit of work so the deletion and the inserts commit
// together with the subsequent order reassignment.
func (r *GormStatusMappingRepository) ReplaceAll(ctx context.Context, mappings []statusmap.StatusMapping) error {
	if err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&StatusMappingDTO{}).Error; err != nil {
		return err
	}

	if len(mappings) == 0 {
		return nil
	}

	dtos := make([]StatusMappingDTO, 0, len(mappings))
	for _, mapping := range mappings {
		dtos = append(dtos, fromDomain(mapping))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

func toDomainList(dtos []StatusMappingDTO) ([]statusmap.StatusMapping, error) {
	mappings := make([]statusmap.StatusMapping, 0, len(dtos))
	for _, dto := range dtos {
		mapping, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, mapping)
	}
	return mappings, nil
}
