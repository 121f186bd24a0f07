package queries

import (
	"context"

	"pickpoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its line items directly from the
// database, bypassing the aggregate. The write side re-reads through this
// handler to build response bodies, so the returned shape is exactly what
// the API serves.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order read queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError if no order with the number is stored.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.readOrderRow(ctx, query.Number())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	composition, err := h.readComposition(ctx, query.Number())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Composition = composition

	return resp, nil
}

func (h GetOrderQueryHandler) readOrderRow(ctx context.Context, number int) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status_id,
			cost,
			recipient_name,
			recipient_phone,
			postautomat_number
		FROM orders
		WHERE id = ?
	`, number).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", number)
	}

	var resp GetOrderQueryResponse
	var cost decimal.Decimal
	if err = rows.Scan(
		&resp.Number,
		&resp.Status,
		&cost,
		&resp.Recipient,
		&resp.Phone,
		&resp.Postautomat,
	); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Cost = cost

	return resp, rows.Err()
}

func (h GetOrderQueryHandler) readComposition(ctx context.Context, number int) ([]string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.name
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?
		ORDER BY p.name
	`, number).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	composition := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		composition = append(composition, name)
	}

	return composition, rows.Err()
}
