// File: internal/model/admin_report.go
package model

import "time"

type AdminReport struct {
	ID                int       `db:"id" json:"id"`
	ReportDate        time.Time `db:"report_date" json:"report_date"`
	TotalReservations int       `db:"total_reservations" json:"total_reservations"`
	TotalRevenue      float64   `db:"total_revenue" json:"total_revenue"`
	TopCars           string    `db:"top_cars" json:"top_cars"`
	MostActiveUser    string    `db:"most_active_user" json:"most_active_user"`
}
