// File: internal/api/payment.go
package api

import "road-ready/internal/model"

// swagger:model api.PaymentDTO
type PaymentDTO struct {
	PaymentID     int     `json:"paymentId" example:"1"`
	ReservationID int     `json:"reservationId" validate:"required" example:"1"`
	Amount        float64 `json:"amount" validate:"gt=0" example:"3000"`
	PaymentDate   Date    `json:"paymentDate" validate:"required" swaggertype:"string" format:"date" example:"2024-06-01"`
	PaymentMethod string  `json:"paymentMethod" validate:"max=50" example:"CreditCard"`
	Status        string  `json:"status" validate:"omitempty,oneof=Pending Completed Failed Refunded" example:"Completed"`
}

func ToPaymentDTO(p model.Payment) PaymentDTO {
	return PaymentDTO{
		PaymentID:     p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount,
		PaymentDate:   NewDate(p.PaymentDate),
		PaymentMethod: p.PaymentMethod,
		Status:        string(p.Status),
	}
}

func ToPaymentDTOs(ps []model.Payment) []PaymentDTO {
	out := make([]PaymentDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToPaymentDTO(p))
	}
	return out
}

func PaymentDTOToModel(d PaymentDTO) model.Payment {
	return model.Payment{
		ID:            d.PaymentID,
		ReservationID: d.ReservationID,
		Amount:        d.Amount,
		PaymentDate:   d.PaymentDate.Time,
		PaymentMethod: d.PaymentMethod,
		Status:        model.PaymentStatus(d.Status),
	}
}
