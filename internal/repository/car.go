package repository

import (
	"context"
	"fmt"

	"road-ready/internal/apperror"
	"road-ready/internal/database"
	"road-ready/internal/model"
)

const carColumns = `id, make, model, year, specifications, price_per_day, availability_status, location, image_url`

type CarRepository struct {
	db database.DB
}

func NewCarRepository(db database.DB) *CarRepository {
	return &CarRepository{db: db}
}

func scanCar(row scanner) (model.Car, error) {
	var c model.Car
	err := row.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Specifications,
		&c.PricePerDay, &c.AvailabilityStatus, &c.Location, &c.ImageURL)
	return c, err
}

func (r *CarRepository) GetAll(ctx context.Context) ([]model.Car, error) {
	cars, err := list(ctx, r.db, "GetAllCars", scanCar,
		`SELECT `+carColumns+` FROM cars ORDER BY id`)
	if err != nil {
		return nil, apperror.Internal(err, "An error occurred while retrieving the cars.")
	}
	return cars, nil
}

func (r *CarRepository) GetByID(ctx context.Context, id int) (*model.Car, error) {
	c, err := scanCar(r.db.QueryRow(ctx,
		`SELECT `+carColumns+` FROM cars WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("Car with ID %d not found.", id)
		}
		return nil, apperror.Internal(fmt.Errorf("GetCarByID: %w", err), "An error occurred while retrieving the car.")
	}
	return &c, nil
}

// Add 新增車輛；若帶入的 ID 已存在則回傳 DuplicateResource，新 ID 一律由資料庫產生
func (r *CarRepository) Add(ctx context.Context, c *model.Car) error {
	if c == nil || c.Make == "" || c.Model == "" {
		return apperror.Validation("Car details cannot be null.")
	}
	if c.ID != 0 {
		dup, err := exists(ctx, r.db, "AddCar",
			`SELECT EXISTS(SELECT 1 FROM cars WHERE id = $1)`, c.ID)
		if err != nil {
			return apperror.Internal(err, "An error occurred while adding the car.")
		}
		if dup {
			return apperror.Duplicate("A car with ID %d already exists.", c.ID)
		}
	}
	if err := r.db.QueryRow(ctx,
		`INSERT INTO cars (make, model, year, specifications, price_per_day, availability_status, location, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		c.Make,
		c.Model,
		c.Year,
		c.Specifications,
		c.PricePerDay,
		c.AvailabilityStatus,
		c.Location,
		c.ImageURL,
	).Scan(&c.ID); err != nil {
		return apperror.Internal(fmt.Errorf("AddCar: %w", err), "An error occurred while adding the car.")
	}
	return nil
}

func (r *CarRepository) Update(ctx context.Context, c *model.Car) error {
	if c == nil {
		return apperror.Validation("Updated car details cannot be null.")
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE cars SET make = $1, model = $2, year = $3, specifications = $4, price_per_day = $5,
		        availability_status = $6, location = $7, image_url = $8
		 WHERE id = $9`,
		c.Make,
		c.Model,
		c.Year,
		c.Specifications,
		c.PricePerDay,
		c.AvailabilityStatus,
		c.Location,
		c.ImageURL,
		c.ID,
	)
	if err != nil {
		return apperror.Internal(fmt.Errorf("UpdateCar: %w", err), "An error occurred while updating the car.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Car with ID %d not found.", c.ID)
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("DeleteCar: %w", err), "An error occurred while deleting the car.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Car with ID %d not found.", id)
	}
	return nil
}
