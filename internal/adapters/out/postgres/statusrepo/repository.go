package statusrepo

import (
	"context"
	"errors"

	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderStatusRepository implements ports.OrderStatusRepository using GORM.
type GormOrderStatusRepository struct {
	db *gorm.DB
}

// NewGormOrderStatusRepository creates a new GORM status repository.
func NewGormOrderStatusRepository(db *gorm.DB) *GormOrderStatusRepository {
	return &GormOrderStatusRepository{db: db}
}

// GetByID retrieves a status by its numeric identifier. Statuses outside the
// seeded reference rows come back as object-not-found, which is how an
// out-of-range status in a request is rejected.
func (r *GormOrderStatusRepository) GetByID(ctx context.Context, id int) (order.Status, error) {
	var dto OrderStatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Unknown, errs.NewObjectNotFoundError("status", id)
		}
		return order.Unknown, err
	}

	status := order.Status(dto.ID)
	if err := status.Validate(); err != nil {
		return order.Unknown, err
	}

	return status, nil
}
