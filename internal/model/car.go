// File: internal/model/car.go
package model

type Car struct {
	ID                 int     `db:"id" json:"id"`
	Make               string  `db:"make" json:"make"`
	Model              string  `db:"model" json:"model"`
	Year               int     `db:"year" json:"year"`
	Specifications     string  `db:"specifications" json:"specifications"`
	PricePerDay        float64 `db:"price_per_day" json:"price_per_day"`
	AvailabilityStatus bool    `db:"availability_status" json:"availability_status"`
	Location           string  `db:"location" json:"location"`
	ImageURL           string  `db:"image_url" json:"image_url"`
}
