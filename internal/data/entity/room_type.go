package entity

import (
	"github.com/shopspring/decimal"
)

type RoomType struct {
	Base
	Name         string          `db:"name"` // unique
	Description  *string         `db:"description"`
	BaseCapacity int             `db:"base_capacity"`
	MaxCapacity  int             `db:"max_capacity"`
	BasePrice    decimal.Decimal `db:"base_price"`
	Amenities    *string         `db:"amenities"`
}
