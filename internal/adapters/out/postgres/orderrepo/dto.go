// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number is the primary key; it comes from the client, not a
// sequence. Line items live in their own table and are removed by cascade
// with the order row.
type OrderDTO struct {
	ID                int             `gorm:"primaryKey;autoIncrement:false"`
	StatusID          int             `gorm:"index"`
	Cost              decimal.Decimal `gorm:"type:numeric(12,2)"`
	RecipientName     string          `gorm:"type:varchar(100)"`
	RecipientPhone    string          `gorm:"type:varchar(12)"`
	PostautomatNumber string          `gorm:"type:varchar(9);index"`
	Items             []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one product position of an order.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   int       `gorm:"index"`
	ProductID int64     `gorm:"index"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Each line item gets a fresh UUID; item identity in the domain is the
// product, not the row.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        uuid.New(),
			OrderID:   aggregate.Number(),
			ProductID: item.ProductID(),
		})
	}

	return OrderDTO{
		ID:                aggregate.Number(),
		StatusID:          int(aggregate.Status()),
		Cost:              aggregate.Cost(),
		RecipientName:     aggregate.RecipientName(),
		RecipientPhone:    aggregate.RecipientPhone().String(),
		PostautomatNumber: aggregate.Postautomat().String(),
		Items:             items,
	}
}

// toDomain converts a database DTO to an order aggregate. productNames maps
// product identifiers to catalog names for the item rows.
func toDomain(dto OrderDTO, productNames map[int64]string) (*order.Order, error) {
	phone, err := kernel.NewPhone(dto.RecipientPhone)
	if err != nil {
		return nil, err
	}

	locker, err := kernel.NewLockerNumber(dto.PostautomatNumber)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ProductID, productNames[itemDTO.ProductID])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		order.Status(dto.StatusID),
		dto.Cost,
		dto.RecipientName,
		phone,
		locker,
		items,
	)
}
