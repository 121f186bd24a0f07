// Package statusrepo provides read access to the order-status reference table.
package statusrepo

// OrderStatusDTO represents one row of the fixed status reference table.
// The six rows are seeded at migration time.
type OrderStatusDTO struct {
	ID          int `gorm:"primaryKey;autoIncrement:false"`
	Description string
}

// TableName specifies the database table name for status reference rows.
func (OrderStatusDTO) TableName() string {
	return "order_statuses"
}
