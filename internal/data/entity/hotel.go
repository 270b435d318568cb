package entity

type HotelStatus string

const (
	HotelStatusActive      HotelStatus = "active"
	HotelStatusInactive    HotelStatus = "inactive"
	HotelStatusMaintenance HotelStatus = "maintenance"
)

type Hotel struct {
	Base
	Name         string      `db:"name"`
	Description  *string     `db:"description"`
	Address      string      `db:"address"`
	City         string      `db:"city"`
	Country      string      `db:"country"`
	PostalCode   *string     `db:"postal_code"`
	StarRating   *int        `db:"star_rating"`
	Amenities    *string     `db:"amenities"`
	CheckInTime  string      `db:"check_in_time"`  // "15:00"
	CheckOutTime string      `db:"check_out_time"` // "11:00"
	Status       HotelStatus `db:"status"`
}
