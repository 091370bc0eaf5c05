package repository

import (
	"context"
	"fmt"

	"road-ready/internal/apperror"
	"road-ready/internal/database"
	"road-ready/internal/model"
)

const reservationColumns = `id, user_id, car_id, pickup_date, dropoff_date, total_price, status`

type ReservationRepository struct {
	db database.DB
}

func NewReservationRepository(db database.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func scanReservation(row scanner) (model.Reservation, error) {
	var res model.Reservation
	err := row.Scan(&res.ID, &res.UserID, &res.CarID, &res.PickupDate, &res.DropoffDate, &res.TotalPrice, &res.Status)
	return res, err
}

func (r *ReservationRepository) GetAll(ctx context.Context) ([]model.Reservation, error) {
	out, err := list(ctx, r.db, "GetAllReservations", scanReservation,
		`SELECT `+reservationColumns+` FROM reservations ORDER BY id`)
	if err != nil {
		return nil, apperror.Internal(err, "An error occurred while retrieving the reservations.")
	}
	return out, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int) (*model.Reservation, error) {
	res, err := scanReservation(r.db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("Reservation with ID %d not found.", id)
		}
		return nil, apperror.Internal(fmt.Errorf("GetReservationByID: %w", err), "An error occurred while retrieving the reservation.")
	}
	return &res, nil
}

// GetByUserID 零筆時回傳 NotFound
func (r *ReservationRepository) GetByUserID(ctx context.Context, userID int) ([]model.Reservation, error) {
	out, err := list(ctx, r.db, "GetReservationsByUserID", scanReservation,
		`SELECT `+reservationColumns+` FROM reservations WHERE user_id = $1 ORDER BY pickup_date, id`, userID)
	if err != nil {
		return nil, apperror.Internal(err, "An error occurred while retrieving the reservations for user %d.", userID)
	}
	if len(out) == 0 {
		return nil, apperror.NotFound("No reservations found for user ID %d.", userID)
	}
	return out, nil
}

// GetByCarID 零筆時回傳 NotFound
func (r *ReservationRepository) GetByCarID(ctx context.Context, carID int) ([]model.Reservation, error) {
	out, err := list(ctx, r.db, "GetReservationsByCarID", scanReservation,
		`SELECT `+reservationColumns+` FROM reservations WHERE car_id = $1 ORDER BY pickup_date, id`, carID)
	if err != nil {
		return nil, apperror.Internal(err, "An error occurred while retrieving the reservations for car %d.", carID)
	}
	if len(out) == 0 {
		return nil, apperror.NotFound("No reservations found for car ID %d.", carID)
	}
	return out, nil
}

// Add 以 (user, car, pickup date) 做重複檢查後新增；檢查與寫入之間沒有鎖，
// 同時送出的相同預約仍可能都寫入。日期區間重疊不檢查。
func (r *ReservationRepository) Add(ctx context.Context, res *model.Reservation) error {
	if res == nil || res.UserID == 0 || res.CarID == 0 || res.PickupDate.IsZero() {
		return apperror.Validation("Reservation details cannot be null.")
	}
	dup, err := exists(ctx, r.db, "AddReservation",
		`SELECT EXISTS(SELECT 1 FROM reservations WHERE user_id = $1 AND car_id = $2 AND pickup_date = $3)`,
		res.UserID, res.CarID, res.PickupDate)
	if err != nil {
		return apperror.Internal(err, "An error occurred while adding the reservation.")
	}
	if dup {
		return apperror.Duplicate("A reservation already exists with the same user, car, and pickup date.")
	}
	if res.Status == "" {
		res.Status = model.ReservationStatusConfirmed
	}
	if err := r.db.QueryRow(ctx,
		`INSERT INTO reservations (user_id, car_id, pickup_date, dropoff_date, total_price, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		res.UserID,
		res.CarID,
		res.PickupDate,
		res.DropoffDate,
		res.TotalPrice,
		res.Status,
	).Scan(&res.ID); err != nil {
		return apperror.Internal(fmt.Errorf("AddReservation: %w", err), "An error occurred while adding the reservation.")
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *model.Reservation) error {
	if res == nil {
		return apperror.Validation("Updated reservation details cannot be null.")
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET user_id = $1, car_id = $2, pickup_date = $3, dropoff_date = $4,
		        total_price = $5, status = $6
		 WHERE id = $7`,
		res.UserID,
		res.CarID,
		res.PickupDate,
		res.DropoffDate,
		res.TotalPrice,
		res.Status,
		res.ID,
	)
	if err != nil {
		return apperror.Internal(fmt.Errorf("UpdateReservation: %w", err), "An error occurred while updating the reservation.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Reservation with ID %d not found.", res.ID)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("DeleteReservation: %w", err), "An error occurred while deleting the reservation.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Reservation with ID %d not found.", id)
	}
	return nil
}

// Summary 彙總預約數、營收、預約最多的前三台車與最活躍使用者
func (r *ReservationRepository) Summary(ctx context.Context) (*model.ReservationSummary, error) {
	s := &model.ReservationSummary{}
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_price), 0)::float8 FROM reservations`,
	).Scan(&s.TotalReservations, &s.TotalRevenue); err != nil {
		return nil, apperror.Internal(fmt.Errorf("ReservationSummary: %w", err), "An error occurred while summarizing reservations.")
	}

	top, err := list(ctx, r.db, "ReservationSummary", func(row scanner) (string, error) {
		var name string
		err := row.Scan(&name)
		return name, err
	},
		`SELECT c.make || ' ' || c.model
		 FROM reservations r JOIN cars c ON c.id = r.car_id
		 GROUP BY c.id, c.make, c.model
		 ORDER BY COUNT(*) DESC, c.id
		 LIMIT 3`)
	if err != nil {
		return nil, apperror.Internal(err, "An error occurred while summarizing reservations.")
	}
	s.TopCars = top

	err = r.db.QueryRow(ctx,
		`SELECT u.email
		 FROM reservations r JOIN users u ON u.id = r.user_id
		 GROUP BY u.id, u.email
		 ORDER BY COUNT(*) DESC, u.id
		 LIMIT 1`,
	).Scan(&s.MostActiveUser)
	if err != nil && !isNoRows(err) {
		return nil, apperror.Internal(fmt.Errorf("ReservationSummary: %w", err), "An error occurred while summarizing reservations.")
	}
	return s, nil
}
