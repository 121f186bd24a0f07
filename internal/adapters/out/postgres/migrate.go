package postgres

import (
	"pickpoint/internal/adapters/out/postgres/orderrepo"
	"pickpoint/internal/adapters/out/postgres/postautomatrepo"
	"pickpoint/internal/adapters/out/postgres/productrepo"
	"pickpoint/internal/adapters/out/postgres/statusrepo"
	"pickpoint/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates the database schema and seeds the status
// reference table. Safe to run on every startup; the seed is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&statusrepo.OrderStatusDTO{},
		&productrepo.ProductDTO{},
		&postautomatrepo.PostautomatDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	); err != nil {
		return err
	}

	return seedStatuses(db)
}

func seedStatuses(db *gorm.DB) error {
	statuses := make([]statusrepo.OrderStatusDTO, 0, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		statuses = append(statuses, statusrepo.OrderStatusDTO{
			ID:          int(status),
			Description: status.String(),
		})
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&statuses).Error
}
