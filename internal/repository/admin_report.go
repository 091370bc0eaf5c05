package repository

import (
	"context"
	"fmt"

	"road-ready/internal/apperror"
	"road-ready/internal/database"
	"road-ready/internal/model"
)

const adminReportColumns = `id, report_date, total_reservations, total_revenue, top_cars, most_active_user`

type AdminReportRepository struct {
	db database.DB
}

func NewAdminReportRepository(db database.DB) *AdminReportRepository {
	return &AdminReportRepository{db: db}
}

func scanAdminReport(row scanner) (model.AdminReport, error) {
	var a model.AdminReport
	err := row.Scan(&a.ID, &a.ReportDate, &a.TotalReservations, &a.TotalRevenue, &a.TopCars, &a.MostActiveUser)
	return a, err
}

func (r *AdminReportRepository) GetAll(ctx context.Context) ([]model.AdminReport, error) {
	out, err := list(ctx, r.db, "GetAllAdminReports", scanAdminReport,
		`SELECT `+adminReportColumns+` FROM admin_reports ORDER BY report_date DESC, id`)
	if err != nil {
		return nil, apperror.Internal(err, "An error occurred while retrieving the reports.")
	}
	return out, nil
}

func (r *AdminReportRepository) GetByID(ctx context.Context, id int) (*model.AdminReport, error) {
	a, err := scanAdminReport(r.db.QueryRow(ctx,
		`SELECT `+adminReportColumns+` FROM admin_reports WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("Report with ID %d not found.", id)
		}
		return nil, apperror.Internal(fmt.Errorf("GetAdminReportByID: %w", err), "An error occurred while retrieving the report.")
	}
	return &a, nil
}

// Add 若帶入的 ID 已存在回傳 DuplicateResource，新 ID 由資料庫產生
func (r *AdminReportRepository) Add(ctx context.Context, a *model.AdminReport) error {
	if a == nil || a.ReportDate.IsZero() {
		return apperror.Validation("Report details cannot be null.")
	}
	if a.ID != 0 {
		dup, err := exists(ctx, r.db, "AddAdminReport",
			`SELECT EXISTS(SELECT 1 FROM admin_reports WHERE id = $1)`, a.ID)
		if err != nil {
			return apperror.Internal(err, "An error occurred while adding the report.")
		}
		if dup {
			return apperror.Duplicate("A report with ID %d already exists.", a.ID)
		}
	}
	if err := r.db.QueryRow(ctx,
		`INSERT INTO admin_reports (report_date, total_reservations, total_revenue, top_cars, most_active_user)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		a.ReportDate,
		a.TotalReservations,
		a.TotalRevenue,
		a.TopCars,
		a.MostActiveUser,
	).Scan(&a.ID); err != nil {
		return apperror.Internal(fmt.Errorf("AddAdminReport: %w", err), "An error occurred while adding the report.")
	}
	return nil
}

func (r *AdminReportRepository) Update(ctx context.Context, a *model.AdminReport) error {
	if a == nil {
		return apperror.Validation("Updated report details cannot be null.")
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE admin_reports SET report_date = $1, total_reservations = $2, total_revenue = $3,
		        top_cars = $4, most_active_user = $5
		 WHERE id = $6`,
		a.ReportDate,
		a.TotalReservations,
		a.TotalRevenue,
		a.TopCars,
		a.MostActiveUser,
		a.ID,
	)
	if err != nil {
		return apperror.Internal(fmt.Errorf("UpdateAdminReport: %w", err), "An error occurred while updating the report.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Report with ID %d not found.", a.ID)
	}
	return nil
}

func (r *AdminReportRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM admin_reports WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("DeleteAdminReport: %w", err), "An error occurred while deleting the report.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Report with ID %d not found.", id)
	}
	return nil
}
