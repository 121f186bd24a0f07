// Package postautomatrepo provides read access to the locker reference data.
package postautomatrepo

import (
	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/postautomat"
)

// PostautomatDTO represents the database structure for locker reference rows.
// The formatted number is the natural key. IsOpen is indexed for the
// availability listing.
type PostautomatDTO struct {
	Number  string `gorm:"type:varchar(9);primaryKey"`
	Address string
	IsOpen  bool `gorm:"index"`
}

// TableName specifies the database table name for locker entities.
func (PostautomatDTO) TableName() string {
	return "postautomats"
}

// FromDomain converts a locker entity to its database representation.
// Exported for test fixtures; production code never writes lockers.
func FromDomain(p *postautomat.Postautomat) PostautomatDTO {
	return PostautomatDTO{
		Number:  p.Number().String(),
		Address: p.Address(),
		IsOpen:  p.IsOpen(),
	}
}

func toDomain(dto PostautomatDTO) (*postautomat.Postautomat, error) {
	number, err := kernel.NewLockerNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	return postautomat.NewPostautomat(number, dto.Address, dto.IsOpen)
}
