package ports

import (
	"context"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/postautomat"
)

// PostautomatRepository defines read access to the postautomat reference data.
// The order service never modifies lockers; they are seeded out-of-band.
type PostautomatRepository interface {
	// GetByNumber retrieves a locker by its formatted number.
	// Returns errs.ObjectNotFoundError if the locker is absent.
	GetByNumber(ctx context.Context, number kernel.LockerNumber) (*postautomat.Postautomat, error)
}
