// File: internal/api/reservation.go
package api

import (
	"road-ready/internal/booking"
	"road-ready/internal/model"
)

// swagger:model api.ReservationDTO
type ReservationDTO struct {
	ReservationID     int     `json:"reservationId" example:"1"`
	UserID            int     `json:"userId" example:"1"`
	CarID             int     `json:"carId" validate:"required" example:"5"`
	PickupDate        Date    `json:"pickupDate" validate:"required" swaggertype:"string" format:"date" example:"2024-06-01"`
	DropOffDate       Date    `json:"dropOffDate" validate:"required" swaggertype:"string" format:"date" example:"2024-06-04"`
	TotalPrice        float64 `json:"totalPrice" validate:"gte=0" example:"3000"`
	ReservationStatus string  `json:"reservationStatus" validate:"max=50" example:"Confirmed"`
}

// CreateReservationRequest 建立預約；userId 與 totalPrice 由伺服器決定，傳入值會被忽略
// swagger:model api.CreateReservationRequest
type CreateReservationRequest struct {
	UserID            int     `json:"userId" example:"0"`
	CarID             int     `json:"carId" validate:"required" example:"5"`
	PickupDate        Date    `json:"pickupDate" validate:"required" swaggertype:"string" format:"date" example:"2024-06-01"`
	DropOffDate       Date    `json:"dropOffDate" validate:"required" swaggertype:"string" format:"date" example:"2024-06-04"`
	TotalPrice        float64 `json:"totalPrice" example:"0"`
	ReservationStatus string  `json:"reservationStatus" validate:"max=50" example:"Confirmed"`
}

func ToReservationDTO(r model.Reservation) ReservationDTO {
	return ReservationDTO{
		ReservationID:     r.ID,
		UserID:            r.UserID,
		CarID:             r.CarID,
		PickupDate:        NewDate(r.PickupDate),
		DropOffDate:       NewDate(r.DropoffDate),
		TotalPrice:        r.TotalPrice,
		ReservationStatus: r.Status,
	}
}

func ToReservationDTOs(rs []model.Reservation) []ReservationDTO {
	out := make([]ReservationDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToReservationDTO(r))
	}
	return out
}

func ReservationDTOToModel(d ReservationDTO) model.Reservation {
	return model.Reservation{
		ID:          d.ReservationID,
		UserID:      d.UserID,
		CarID:       d.CarID,
		PickupDate:  d.PickupDate.Time,
		DropoffDate: d.DropOffDate.Time,
		TotalPrice:  d.TotalPrice,
		Status:      d.ReservationStatus,
	}
}

// BookingRequest 轉成 booking.Request
func (r CreateReservationRequest) BookingRequest() booking.Request {
	return booking.Request{
		CarID:       r.CarID,
		PickupDate:  r.PickupDate.Time,
		DropoffDate: r.DropOffDate.Time,
		Status:      r.ReservationStatus,
	}
}
