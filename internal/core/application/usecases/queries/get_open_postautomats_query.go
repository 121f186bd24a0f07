package queries

import (
	"errors"

	"pickpoint/internal/pkg/guard"
)

var (
	ErrGetOpenPostautomatsQueryIsNotConstructed = errors.New(
		"GetOpenPostautomatsQuery must be created via NewGetOpenPostautomatsQuery constructor",
	)
)

// GetOpenPostautomatsQuery retrieves every locker currently accepting
// parcels. This is a parameterless query.
//
// Example:
//
//	query := NewGetOpenPostautomatsQuery()
//	handler := NewGetOpenPostautomatsQueryHandler(db)
//
//	lockers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open lockers: %w", err)
//	}
//
//	fmt.Printf("%d lockers accepting parcels\n", len(lockers))
type GetOpenPostautomatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenPostautomatsQuery creates a query to list open lockers.
func NewGetOpenPostautomatsQuery() GetOpenPostautomatsQuery {
	return GetOpenPostautomatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenPostautomatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenPostautomatsQueryIsNotConstructed)
}
