package postautomatrepo

import (
	"context"
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/postautomat"
	"pickpoint/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPostautomatRepository implements ports.PostautomatRepository using GORM.
type GormPostautomatRepository struct {
	db *gorm.DB
}

// NewGormPostautomatRepository creates a new GORM locker repository.
func NewGormPostautomatRepository(db *gorm.DB) *GormPostautomatRepository {
	return &GormPostautomatRepository{db: db}
}

// GetByNumber retrieves a locker by its formatted number.
func (r *GormPostautomatRepository) GetByNumber(
	ctx context.Context, number kernel.LockerNumber,
) (*postautomat.Postautomat, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto PostautomatDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("postautomat", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
