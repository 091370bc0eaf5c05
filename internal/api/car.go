// File: internal/api/car.go
package api

import "road-ready/internal/model"

// swagger:model api.CarDTO
type CarDTO struct {
	CarID              int     `json:"carId" example:"1"`
	Make               string  `json:"make" validate:"required,max=100" example:"Toyota"`
	Model              string  `json:"model" validate:"required,max=100" example:"Corolla"`
	Year               int     `json:"year" validate:"min=1900,max=2100" example:"2022"`
	Specifications     string  `json:"specifications" example:"Automatic, 5 seats"`
	PricePerDay        float64 `json:"pricePerDay" validate:"gte=0" example:"1000"`
	AvailabilityStatus bool    `json:"availabilityStatus" example:"true"`
	Location           string  `json:"location" validate:"required,max=255" example:"Chennai"`
	ImageURL           string  `json:"imageUrl" validate:"omitempty,url" example:"https://example.com/car.png"`
}

func ToCarDTO(c model.Car) CarDTO {
	return CarDTO{
		CarID:              c.ID,
		Make:               c.Make,
		Model:              c.Model,
		Year:               c.Year,
		Specifications:     c.Specifications,
		PricePerDay:        c.PricePerDay,
		AvailabilityStatus: c.AvailabilityStatus,
		Location:           c.Location,
		ImageURL:           c.ImageURL,
	}
}

func ToCarDTOs(cars []model.Car) []CarDTO {
	out := make([]CarDTO, 0, len(cars))
	for _, c := range cars {
		out = append(out, ToCarDTO(c))
	}
	return out
}

func CarDTOToModel(d CarDTO) model.Car {
	return model.Car{
		ID:                 d.CarID,
		Make:               d.Make,
		Model:              d.Model,
		Year:               d.Year,
		Specifications:     d.Specifications,
		PricePerDay:        d.PricePerDay,
		AvailabilityStatus: d.AvailabilityStatus,
		Location:           d.Location,
		ImageURL:           d.ImageURL,
	}
}
