package orderrepo

import (
	"context"
	"errors"

	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/core/ports"
	"pickpoint/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(number int, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Create(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNothingSaved
	}

	r.tracker.TrackAggregate(aggregate.Number(), aggregate)
	return nil
}

// Update persists changes to an existing order. The order row is updated in
// place; line items are replaced wholesale with the aggregate's current
// composition. Runs inside the unit of work's transaction, so a failure
// partway through is rolled back with everything else.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("status_id", "cost", "recipient_name", "recipient_phone", "postautomat_number").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNothingSaved
	}

	if err := r.db.WithContext(ctx).
		Delete(&OrderItemDTO{}, "order_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.Number(), aggregate)
	return nil
}

// Delete removes the order; line items go with it by cascade.
func (r *GormOrderRepository) Delete(ctx context.Context, number int) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", number)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNothingSaved
	}

	return nil
}

// GetByNumber retrieves an order with its line items resolved to product names.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number int) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number)
		}
		return nil, err
	}

	productNames, err := r.resolveProductNames(ctx, dto.Items)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, productNames)
}

// Exists reports whether an order with the given number is stored.
func (r *GormOrderRepository) Exists(ctx context.Context, number int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

type productNameRow struct {
	ID   int64
	Name string
}

func (r *GormOrderRepository) resolveProductNames(
	ctx context.Context, items []OrderItemDTO,
) (map[int64]string, error) {
	names := make(map[int64]string, len(items))
	if len(items) == 0 {
		return names, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	var rows []productNameRow
	if err := r.db.WithContext(ctx).
		Table("products").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		names[row.ID] = row.Name
	}

	return names, nil
}
