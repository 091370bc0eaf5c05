package repository

import (
	"context"
	"fmt"

	"road-ready/internal/apperror"
	"road-ready/internal/database"
	"road-ready/internal/model"
)

const paymentColumns = `id, reservation_id, amount, payment_date, payment_method, status`

type PaymentRepository struct {
	db database.DB
}

func NewPaymentRepository(db database.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func scanPayment(row scanner) (model.Payment, error) {
	var p model.Payment
	err := row.Scan(&p.ID, &p.ReservationID, &p.Amount, &p.PaymentDate, &p.PaymentMethod, &p.Status)
	return p, err
}

func (r *PaymentRepository) GetAll(ctx context.Context) ([]model.Payment, error) {
	out, err := list(ctx, r.db, "GetAllPayments", scanPayment,
		`SELECT `+paymentColumns+` FROM payments ORDER BY id`)
	if err != nil {
		return nil, apperror.Internal(err, "An error occurred while retrieving the payments.")
	}
	return out, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int) (*model.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("Payment with ID %d not found.", id)
		}
		return nil, apperror.Internal(fmt.Errorf("GetPaymentByID: %w", err), "An error occurred while retrieving the payment.")
	}
	return &p, nil
}

// GetByReservationID 零筆時回傳 NotFound
func (r *PaymentRepository) GetByReservationID(ctx context.Context, reservationID int) ([]model.Payment, error) {
	out, err := list(ctx, r.db, "GetPaymentsByReservationID", scanPayment,
		`SELECT `+paymentColumns+` FROM payments WHERE reservation_id = $1 ORDER BY id`, reservationID)
	if err != nil {
		return nil, apperror.Internal(err, "An error occurred while retrieving the payments for reservation %d.", reservationID)
	}
	if len(out) == 0 {
		return nil, apperror.NotFound("No payments found for reservation ID %d.", reservationID)
	}
	return out, nil
}

func (r *PaymentRepository) Add(ctx context.Context, p *model.Payment) error {
	if p == nil || p.ReservationID == 0 {
		return apperror.Validation("Payment details cannot be null.")
	}
	if p.Status == "" {
		p.Status = model.PaymentPending
	}
	if err := r.db.QueryRow(ctx,
		`INSERT INTO payments (reservation_id, amount, payment_date, payment_method, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		p.ReservationID,
		p.Amount,
		p.PaymentDate,
		p.PaymentMethod,
		p.Status,
	).Scan(&p.ID); err != nil {
		return apperror.Internal(fmt.Errorf("AddPayment: %w", err), "An error occurred while adding the payment.")
	}
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *model.Payment) error {
	if p == nil {
		return apperror.Validation("Updated payment details cannot be null.")
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE payments SET reservation_id = $1, amount = $2, payment_date = $3, payment_method = $4, status = $5
		 WHERE id = $6`,
		p.ReservationID,
		p.Amount,
		p.PaymentDate,
		p.PaymentMethod,
		p.Status,
		p.ID,
	)
	if err != nil {
		return apperror.Internal(fmt.Errorf("UpdatePayment: %w", err), "An error occurred while updating the payment.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Payment with ID %d not found.", p.ID)
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(fmt.Errorf("DeletePayment: %w", err), "An error occurred while deleting the payment.")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Payment with ID %d not found.", id)
	}
	return nil
}
