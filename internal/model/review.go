// File: internal/model/review.go
package model

import "time"

type Review struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"user_id"`
	CarID      int       `db:"car_id" json:"car_id"`
	Rating     int       `db:"rating" json:"rating"`
	Comment    string    `db:"comment" json:"comment"`
	ReviewDate time.Time `db:"review_date" json:"review_date"`
}
