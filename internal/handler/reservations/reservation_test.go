package reservations

import (
	"context"
	"net/http"
	"sort"
	"testing"
	"time"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/booking"
	"road-ready/internal/handler/handlertest"
	"road-ready/internal/model"

	"github.com/stretchr/testify/require"
)

type memCars map[int]model.Car

func (m memCars) GetByID(_ context.Context, id int) (*model.Car, error) {
	car, ok := m[id]
	if !ok {
		return nil, apperror.NotFound("Car with ID %d not found.", id)
	}
	return &car, nil
}

// memStore 模擬 ReservationRepository 的重複與 NotFound 規則
type memStore struct {
	rows map[int]model.Reservation
	next int
}

func newMemStore(rows ...model.Reservation) *memStore {
	m := &memStore{rows: map[int]model.Reservation{}}
	for _, r := range rows {
		m.rows[r.ID] = r
		if r.ID > m.next {
			m.next = r.ID
		}
	}
	return m
}

func (m *memStore) filter(keep func(model.Reservation) bool) []model.Reservation {
	var out []model.Reservation
	for _, r := range m.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memStore) GetAll(context.Context) ([]model.Reservation, error) {
	return m.filter(func(model.Reservation) bool { return true }), nil
}

func (m *memStore) GetByID(_ context.Context, id int) (*model.Reservation, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, apperror.NotFound("Reservation with ID %d not found.", id)
	}
	return &r, nil
}

func (m *memStore) GetByUserID(_ context.Context, userID int) ([]model.Reservation, error) {
	out := m.filter(func(r model.Reservation) bool { return r.UserID == userID })
	if len(out) == 0 {
		return nil, apperror.NotFound("No reservations found for user ID %d.", userID)
	}
	return out, nil
}

func (m *memStore) GetByCarID(_ context.Context, carID int) ([]model.Reservation, error) {
	out := m.filter(func(r model.Reservation) bool { return r.CarID == carID })
	if len(out) == 0 {
		return nil, apperror.NotFound("No reservations found for car ID %d.", carID)
	}
	return out, nil
}

func (m *memStore) Add(_ context.Context, r *model.Reservation) error {
	for _, e := range m.rows {
		if e.UserID == r.UserID && e.CarID == r.CarID && e.PickupDate.Equal(r.PickupDate) {
			return apperror.Duplicate("A reservation for this car on the selected date already exists.")
		}
	}
	m.next++
	r.ID = m.next
	m.rows[r.ID] = *r
	return nil
}

func (m *memStore) Update(_ context.Context, r *model.Reservation) error {
	if _, ok := m.rows[r.ID]; !ok {
		return apperror.NotFound("Reservation with ID %d not found.", r.ID)
	}
	m.rows[r.ID] = *r
	return nil
}

func (m *memStore) Delete(_ context.Context, id int) error {
	if _, ok := m.rows[id]; !ok {
		return apperror.NotFound("Reservation with ID %d not found.", id)
	}
	delete(m.rows, id)
	return nil
}

func day(s string) time.Time {
	t, _ := time.Parse(api.DateLayout, s)
	return t
}

var cars = memCars{5: {ID: 5, Make: "Toyota", Model: "Corolla", PricePerDay: 1000}}

func TestCreateReservationHandler(t *testing.T) {
	store := newMemStore()
	h := CreateReservationHandler(booking.NewService(cars, store))
	body := `{"userId":99,"carId":5,"pickupDate":"2024-06-01","dropOffDate":"2024-06-04","totalPrice":1}`

	c, rec := handlertest.NewContext(http.MethodPost, body)
	require.NoError(t, h(handlertest.As(c, 7, model.RoleUser)))
	require.Equal(t, http.StatusCreated, rec.Code)
	var dto api.ReservationDTO
	handlertest.Decode(t, rec, &dto)
	require.Equal(t, 7, dto.UserID)
	require.Equal(t, 3000.0, dto.TotalPrice)
	require.Equal(t, "Confirmed", dto.ReservationStatus)
	require.Contains(t, rec.Body.String(), `"dropOffDate":"2024-06-04"`)

	// 相同 (user, car, pickup) 第二次送出
	c, rec = handlertest.NewContext(http.MethodPost, body)
	require.NoError(t, h(handlertest.As(c, 7, model.RoleUser)))
	require.Equal(t, http.StatusConflict, rec.Code)

	// 其他使用者的重疊區間不會被擋
	c, rec = handlertest.NewContext(http.MethodPost, `{"carId":5,"pickupDate":"2024-06-02","dropOffDate":"2024-06-03"}`)
	require.NoError(t, h(handlertest.As(c, 8, model.RoleUser)))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.rows, 2)
}

func TestCreateReservationHandler_Rejections(t *testing.T) {
	h := CreateReservationHandler(booking.NewService(cars, newMemStore()))
	cases := []struct {
		name string
		body string
		code int
	}{
		{"dropoff before pickup", `{"carId":5,"pickupDate":"2024-06-04","dropOffDate":"2024-06-01"}`, http.StatusBadRequest},
		{"same day", `{"carId":5,"pickupDate":"2024-06-04","dropOffDate":"2024-06-04"}`, http.StatusBadRequest},
		{"unknown car", `{"carId":6,"pickupDate":"2024-06-01","dropOffDate":"2024-06-04"}`, http.StatusNotFound},
		{"missing dates", `{"carId":5}`, http.StatusBadRequest},
		{"bad date", `{"carId":5,"pickupDate":"June 1","dropOffDate":"2024-06-04"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := handlertest.NewContext(http.MethodPost, tc.body)
			require.NoError(t, h(handlertest.As(c, 7, model.RoleUser)))
			require.Equal(t, tc.code, rec.Code, rec.Body.String())
		})
	}
}

func seeded() *memStore {
	return newMemStore(
		model.Reservation{ID: 1, UserID: 7, CarID: 5, PickupDate: day("2024-06-01"), DropoffDate: day("2024-06-04"), TotalPrice: 3000, Status: "Confirmed"},
		model.Reservation{ID: 2, UserID: 8, CarID: 5, PickupDate: day("2024-07-01"), DropoffDate: day("2024-07-02"), TotalPrice: 1000, Status: "Confirmed"},
	)
}

func TestUpdateReservationHandler(t *testing.T) {
	body := `{"reservationId":1,"userId":8,"carId":5,"pickupDate":"2024-06-01","dropOffDate":"2024-06-06","totalPrice":0}`

	t.Run("owner", func(t *testing.T) {
		store := seeded()
		c, rec := handlertest.NewContext(http.MethodPut, body)
		require.NoError(t, UpdateReservationHandler(store, cars)(handlertest.As(c, 7, model.RoleUser)))
		require.Equal(t, http.StatusNoContent, rec.Code)
		got := store.rows[1]
		require.Equal(t, 7, got.UserID)
		require.Equal(t, 5000.0, got.TotalPrice)
		require.Equal(t, "Confirmed", got.Status)
	})

	t.Run("other user forbidden", func(t *testing.T) {
		store := seeded()
		c, rec := handlertest.NewContext(http.MethodPut, body)
		require.NoError(t, UpdateReservationHandler(store, cars)(handlertest.As(c, 8, model.RoleUser)))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, "ForbiddenError", handlertest.ErrorType(t, rec))
		require.Equal(t, 3000.0, store.rows[1].TotalPrice)
	})

	t.Run("admin any", func(t *testing.T) {
		store := seeded()
		c, rec := handlertest.NewContext(http.MethodPut, body)
		require.NoError(t, UpdateReservationHandler(store, cars)(handlertest.As(c, 1, model.RoleAdmin)))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		c, rec := handlertest.NewContext(http.MethodPut, `{"reservationId":9,"carId":5,"pickupDate":"2024-06-01","dropOffDate":"2024-06-02"}`)
		require.NoError(t, UpdateReservationHandler(seeded(), cars)(handlertest.As(c, 1, model.RoleAdmin)))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad dates", func(t *testing.T) {
		c, rec := handlertest.NewContext(http.MethodPut, `{"reservationId":1,"carId":5,"pickupDate":"2024-06-05","dropOffDate":"2024-06-02"}`)
		require.NoError(t, UpdateReservationHandler(seeded(), cars)(handlertest.As(c, 7, model.RoleUser)))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteReservationHandler(t *testing.T) {
	store := seeded()

	c, rec := handlertest.NewContext(http.MethodDelete, "")
	c = handlertest.WithParam(handlertest.As(c, 7, model.RoleUser), "reservationId", "2")
	require.NoError(t, DeleteReservationHandler(store)(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, store.rows, 2)

	c, rec = handlertest.NewContext(http.MethodDelete, "")
	c = handlertest.WithParam(handlertest.As(c, 7, model.RoleUser), "reservationId", "1")
	require.NoError(t, DeleteReservationHandler(store)(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotContains(t, store.rows, 1)

	c, rec = handlertest.NewContext(http.MethodDelete, "")
	c = handlertest.WithParam(handlertest.As(c, 1, model.RoleAdmin), "reservationId", "2")
	require.NoError(t, DeleteReservationHandler(store)(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReadHandlers(t *testing.T) {
	store := seeded()

	c, rec := handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, ListReservationsHandler(store)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var all []api.ReservationDTO
	handlertest.Decode(t, rec, &all)
	require.Len(t, all, 2)

	c, rec = handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, GetReservationHandler(store)(handlertest.WithParam(c, "reservationId", "2")))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, MyReservationsHandler(store)(handlertest.As(c, 8, model.RoleUser)))
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []api.ReservationDTO
	handlertest.Decode(t, rec, &mine)
	require.Len(t, mine, 1)
	require.Equal(t, 2, mine[0].ReservationID)

	c, rec = handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, MyReservationsHandler(store)(handlertest.As(c, 42, model.RoleUser)))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, CarReservationsHandler(store)(handlertest.WithParam(c, "carId", "5")))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, CarReservationsHandler(store)(handlertest.WithParam(c, "carId", "6")))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
