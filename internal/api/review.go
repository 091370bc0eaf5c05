// File: internal/api/review.go
package api

import "road-ready/internal/model"

// swagger:model api.ReviewDTO
type ReviewDTO struct {
	ReviewID   int    `json:"reviewId" example:"1"`
	UserID     int    `json:"userId" example:"1"`
	CarID      int    `json:"carId" validate:"required" example:"5"`
	Rating     int    `json:"rating" validate:"min=1,max=5" example:"5"`
	Comment    string `json:"comment" validate:"max=500" example:"Smooth ride."`
	ReviewDate Date   `json:"reviewDate" swaggertype:"string" format:"date" example:"2024-06-05"`
}

func ToReviewDTO(r model.Review) ReviewDTO {
	return ReviewDTO{
		ReviewID:   r.ID,
		UserID:     r.UserID,
		CarID:      r.CarID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		ReviewDate: NewDate(r.ReviewDate),
	}
}

func ToReviewDTOs(rs []model.Review) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToReviewDTO(r))
	}
	return out
}

func ReviewDTOToModel(d ReviewDTO) model.Review {
	return model.Review{
		ID:         d.ReviewID,
		UserID:     d.UserID,
		CarID:      d.CarID,
		Rating:     d.Rating,
		Comment:    d.Comment,
		ReviewDate: d.ReviewDate.Time,
	}
}
