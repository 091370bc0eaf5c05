// File: internal/model/reservation.go
package model

import "time"

// ReservationStatusConfirmed 為新建預約的預設狀態
const ReservationStatusConfirmed = "Confirmed"

type Reservation struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	CarID       int       `db:"car_id" json:"car_id"`
	PickupDate  time.Time `db:"pickup_date" json:"pickup_date"`
	DropoffDate time.Time `db:"dropoff_date" json:"dropoff_date"`
	TotalPrice  float64   `db:"total_price" json:"total_price"`
	Status      string    `db:"status" json:"status"`
}

// ReservationSummary 為報表產生所需的彙總數據
type ReservationSummary struct {
	TotalReservations int
	TotalRevenue      float64
	TopCars           []string
	MostActiveUser    string
}
