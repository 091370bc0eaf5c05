// File: internal/booking/booking.go
package booking

import (
	"context"
	"math"
	"time"

	"road-ready/internal/apperror"
	"road-ready/internal/model"
)

// CompareDates 還車日必須晚於取車日（以日曆日比較）
func CompareDates(pickup, dropoff time.Time) error {
	if !dateOnly(dropoff).After(dateOnly(pickup)) {
		return apperror.Validation("Drop-off date must be after the pickup date.")
	}
	return nil
}

const secondsPerDay = 24 * 60 * 60

// Days 回傳兩個日曆日之間的整日數
// 以 Unix 秒相減，time.Duration 在約 292 年後會飽和
func Days(pickup, dropoff time.Time) int {
	return int((dateOnly(dropoff).Unix() - dateOnly(pickup).Unix()) / secondsPerDay)
}

// TotalPrice = days × pricePerDay，四捨五入到分
func TotalPrice(days int, pricePerDay float64) float64 {
	return math.Round(float64(days)*pricePerDay*100) / 100
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type CarFinder interface {
	GetByID(ctx context.Context, id int) (*model.Car, error)
}

type ReservationAdder interface {
	Add(ctx context.Context, r *model.Reservation) error
}

// Request 建立預約的輸入；總價一律由伺服器計算
type Request struct {
	CarID       int
	PickupDate  time.Time
	DropoffDate time.Time
	Status      string
}

type Service struct {
	cars         CarFinder
	reservations ReservationAdder
}

func NewService(cars CarFinder, reservations ReservationAdder) *Service {
	return &Service{cars: cars, reservations: reservations}
}

// Book 驗證日期、讀取車輛計價後新增預約。
// 只擋完全相同的 (user, car, pickup date)，不做區間重疊檢查。
func (s *Service) Book(ctx context.Context, userID int, req Request) (*model.Reservation, error) {
	if err := CompareDates(req.PickupDate, req.DropoffDate); err != nil {
		return nil, err
	}
	car, err := s.cars.GetByID(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = model.ReservationStatusConfirmed
	}
	res := &model.Reservation{
		UserID:      userID,
		CarID:       car.ID,
		PickupDate:  dateOnly(req.PickupDate),
		DropoffDate: dateOnly(req.DropoffDate),
		TotalPrice:  TotalPrice(Days(req.PickupDate, req.DropoffDate), car.PricePerDay),
		Status:      status,
	}
	if err := s.reservations.Add(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}
