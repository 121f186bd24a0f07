package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOpenPostautomatsQueryHandler lists the lockers whose availability flag
// is set. Results are sorted by locker number for consistent output.
type GetOpenPostautomatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenPostautomatsQueryHandler creates a handler for open-locker queries.
func NewGetOpenPostautomatsQueryHandler(db *gorm.DB) GetOpenPostautomatsQueryHandler {
	return GetOpenPostautomatsQueryHandler{db: db}
}

// Handle executes the query. A database with no open lockers yields an empty
// slice, not an error.
func (h GetOpenPostautomatsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenPostautomatsQuery,
) ([]GetPostautomatQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			address,
			is_open
		FROM postautomats
		WHERE is_open
		ORDER BY number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lockers := make([]GetPostautomatQueryResponse, 0)
	for rows.Next() {
		var resp GetPostautomatQueryResponse
		if err = rows.Scan(&resp.Number, &resp.Address, &resp.IsOpen); err != nil {
			return nil, err
		}
		lockers = append(lockers, resp)
	}

	return lockers, rows.Err()
}
