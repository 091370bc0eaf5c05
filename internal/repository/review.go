package repository

import (
	"context"
	"fmt"

	"road-ready/internal/apperror"
	"road-ready/internal/database"
	"road-ready/internal/model"
)

const reviewColumns = `id, user_id, car_id, rating, comment, review_date`

type ReviewRepository struct {
	db database.DB
}

func NewReviewRepository(db database.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func scanReview(row scanner) (model.Review, error) {
	var rv model.Review
	err := row.Scan(&rv.ID, &rv.UserID, &rv.CarID, &rv.Rating, &rv.Comment, &rv.ReviewDate)
	return rv, err
}

func (r *ReviewRepository) GetAll(ctx context.Context) ([]model.Review, error) {
	out, err := list(ctx, r.db, "GetAllReviews", scanReview,
		`SELECT `+reviewColumns+` FROM reviews ORDER BY id`)
	if err != nil {
		return nil, apperror.Internal(err, "An error occurred while retrieving the reviews.")
	}
	return out, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int) (*model.Review, error) {
	rv, err := scanReview(r.db.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("Review with ID %d not found.", id)
		}
		return nil, apperror.Internal(fmt.Errorf("GetReviewByID: %w", err), "An error occurred while retrieving the review.")
	}
	return &rv, nil
}

// GetByCarID 零筆時回傳 NotFound
func (r *ReviewRepository) GetByCarID(ctx context.Context, carID int) ([]model.Review, error) {
	out, err := list(ctx, r.db, "GetReviewsByCarID", scanReview,
		`SELECT `+reviewColumns+` FROM reviews WHERE car_id = $1 ORDER BY review_date DESC, id`, carID)
	if err != nil {
		return nil, apperror.Internal(err, "An error occurred while retrieving the reviews for car %d.", carID)
	}
	if len(out) == 0 {
		return nil, apperror.NotFound("No reviews found for car ID %d.", carID)
	}
	return out, nil
}

// Add 同一使用者對同一台車只能評論一次
func (r *ReviewRepository) Add(ctx context.Context, rv *model.Review) error {
	if rv == nil || rv.UserID == 0 || rv.CarID == 0 {
		return apperror.Validation("Review details cannot be null.")
	}
	dup, err := exists(ctx, r.db, "AddReview",
		`SELECT EXISTS(SELECT 1 FROM reviews WHERE user_id = $1 AND car_id = $2)`, rv.UserID, rv.CarID)
	if err != nil {
		return apperror.Internal(err, "An error occurred while adding the review.")
	}
	if dup {
		return apperror.Duplicate("User %d has already reviewed car %d.", rv.UserID, rv.CarID)
	}
	if err := r.db.QueryRow(ctx,
		`INSERT INTO reviews (user_id, car_id, rating, comment, review_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		rv.UserID,
		rv.CarID,
		rv.Rating,
		rv.Comment,
		rv.ReviewDate,
	).Scan(&rv.ID); err != nil {
		return apperror.Internal(fmt.Errorf("AddReview: %w", err), "An error occurred while adding the review.")
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *model.Review) error {
	if rv == nil {
		return apperror.Validation("Updated review details cannot be null.")
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE reviews SET user_id = $1, car_id = $2, rating = $3, comment = $4, review_date = $5
		 WHERE id = $6`,
		rv.UserID,
		rv.CarID,
		rv.Rating,
		rv.Comment,
		rv.ReviewDate,
		rv.ID,
	)
	if err != nil {
		return apperror.Internal(fmt.Errorf("UpdateReview: %w", err), "An error occurred while updating the review.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Review with ID %d not found.", rv.ID)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("DeleteReview: %w", err), "An error occurred while deleting the review.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Review with ID %d not found.", id)
	}
	return nil
}
