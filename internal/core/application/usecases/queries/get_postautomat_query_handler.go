package queries

import (
	"context"

	"pickpoint/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPostautomatQueryHandler reads a single locker row from the database.
type GetPostautomatQueryHandler struct {
	db *gorm.DB
}

// NewGetPostautomatQueryHandler creates a handler for locker read queries.
func NewGetPostautomatQueryHandler(db *gorm.DB) GetPostautomatQueryHandler {
	return GetPostautomatQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError if no locker with the number is stored.
func (h GetPostautomatQueryHandler) Handle(
	ctx context.Context,
	query GetPostautomatQuery,
) (GetPostautomatQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPostautomatQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			address,
			is_open
		FROM postautomats
		WHERE number = ?
	`, query.Number().String()).Rows()
	if err != nil {
		return GetPostautomatQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetPostautomatQueryResponse{}, err
		}
		return GetPostautomatQueryResponse{},
			errs.NewObjectNotFoundError("postautomat", query.Number().String())
	}

	var resp GetPostautomatQueryResponse
	if err = rows.Scan(&resp.Number, &resp.Address, &resp.IsOpen); err != nil {
		return GetPostautomatQueryResponse{}, err
	}

	return resp, rows.Err()
}
