package queries

import (
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/pkg/guard"
)

var (
	ErrGetPostautomatQueryIsNotConstructed = errors.New(
		"GetPostautomatQuery must be created via NewGetPostautomatQuery constructor",
	)
)

// GetPostautomatQuery retrieves a single locker by its number.
type GetPostautomatQuery struct {
	number kernel.LockerNumber

	guard guard.ConstructorGuard
}

// NewGetPostautomatQuery creates a query to retrieve a locker. The number
// must already be a validated kernel.LockerNumber, so callers surface format
// errors before touching the database.
func NewGetPostautomatQuery(number kernel.LockerNumber) (GetPostautomatQuery, error) {
	if err := number.Validate(); err != nil {
		return GetPostautomatQuery{}, err
	}

	return GetPostautomatQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPostautomatQuery) Validate() error {
	return q.guard.Validate(ErrGetPostautomatQueryIsNotConstructed)
}

// Number returns the requested locker number.
func (q GetPostautomatQuery) Number() kernel.LockerNumber {
	return q.number
}

// GetPostautomatQueryResponse is the read model for a locker. IsOpen mirrors
// the stored availability flag and is served on the wire as "status".
type GetPostautomatQueryResponse struct {
	Number  string
	Address string
	IsOpen  bool
}
