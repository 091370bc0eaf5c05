// File: internal/api/admin_report.go
package api

import "road-ready/internal/model"

// swagger:model api.AdminReportDTO
type AdminReportDTO struct {
	ReportID          int     `json:"reportId" example:"1"`
	ReportDate        Date    `json:"reportDate" validate:"required" swaggertype:"string" format:"date" example:"2024-06-30"`
	TotalReservations int     `json:"totalReservations" validate:"gte=0" example:"42"`
	TotalRevenue      float64 `json:"totalRevenue" validate:"gte=0" example:"125000"`
	TopCars           string  `json:"topCars" example:"Toyota Corolla, Honda City"`
	MostActiveUser    string  `json:"mostActiveUser" example:"alice@example.com"`
}

func ToAdminReportDTO(a model.AdminReport) AdminReportDTO {
	return AdminReportDTO{
		ReportID:          a.ID,
		ReportDate:        NewDate(a.ReportDate),
		TotalReservations: a.TotalReservations,
		TotalRevenue:      a.TotalRevenue,
		TopCars:           a.TopCars,
		MostActiveUser:    a.MostActiveUser,
	}
}

func ToAdminReportDTOs(as []model.AdminReport) []AdminReportDTO {
	out := make([]AdminReportDTO, 0, len(as))
	for _, a := range as {
		out = append(out, ToAdminReportDTO(a))
	}
	return out
}

func AdminReportDTOToModel(d AdminReportDTO) model.AdminReport {
	return model.AdminReport{
		ID:                d.ReportID,
		ReportDate:        d.ReportDate.Time,
		TotalReservations: d.TotalReservations,
		TotalRevenue:      d.TotalRevenue,
		TopCars:           d.TopCars,
		MostActiveUser:    d.MostActiveUser,
	}
}
