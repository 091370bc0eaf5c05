package reports

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/database"
	"road-ready/internal/handler/handlertest"
	"road-ready/internal/model"
	"road-ready/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	reports map[int]model.AdminReport
	added   []model.AdminReport
}

func (f *fakeStore) GetAll(context.Context) ([]model.AdminReport, error) {
	out := []model.AdminReport{}
	for _, r := range f.reports {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeStore) GetByID(_ context.Context, id int) (*model.AdminReport, error) {
	r, ok := f.reports[id]
	if !ok {
		return nil, apperror.NotFound("Report with ID %d not found.", id)
	}
	return &r, nil
}

func (f *fakeStore) Add(_ context.Context, a *model.AdminReport) error {
	a.ID = 100 + len(f.added)
	f.added = append(f.added, *a)
	return nil
}

func (f *fakeStore) Update(_ context.Context, a *model.AdminReport) error {
	if _, ok := f.reports[a.ID]; !ok {
		return apperror.NotFound("Report with ID %d not found.", a.ID)
	}
	f.reports[a.ID] = *a
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id int) error {
	if _, ok := f.reports[id]; !ok {
		return apperror.NotFound("Report with ID %d not found.", id)
	}
	delete(f.reports, id)
	return nil
}

func newStore() *fakeStore {
	return &fakeStore{reports: map[int]model.AdminReport{
		1: {ID: 1, ReportDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), TotalReservations: 4},
	}}
}

func TestGenerateReportHandler(t *testing.T) {
	orig := timeNow
	t.Cleanup(func() { timeNow = orig })
	timeNow = func() time.Time { return time.Date(2024, 7, 1, 18, 45, 0, 0, time.UTC) }

	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			if strings.Contains(sql, "u.email") {
				return database.FakeRow{Values: []any{"alice@example.com"}}
			}
			return database.FakeRow{Values: []any{4, 12000.5}}
		},
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &database.FakeRows{Data: [][]any{{"Toyota Corolla"}, {"Honda City"}}}, nil
		},
	}
	store := newStore()
	c, rec := handlertest.NewContext(http.MethodPost, "")
	require.NoError(t, GenerateReportHandler(store, repository.NewReservationRepository(db))(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var dto api.AdminReportDTO
	handlertest.Decode(t, rec, &dto)
	require.Equal(t, 100, dto.ReportID)
	require.Equal(t, 4, dto.TotalReservations)
	require.Equal(t, 12000.5, dto.TotalRevenue)
	require.Equal(t, "Toyota Corolla, Honda City", dto.TopCars)
	require.Equal(t, "alice@example.com", dto.MostActiveUser)
	require.Contains(t, rec.Body.String(), `"reportDate":"2024-07-01"`)
	require.Len(t, store.added, 1)
}

func TestGenerateReportHandler_Empty(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			if strings.Contains(sql, "u.email") {
				return database.FakeRow{Err: pgx.ErrNoRows}
			}
			return database.FakeRow{Values: []any{0, 0.0}}
		},
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return &database.FakeRows{}, nil },
	}
	store := newStore()
	c, rec := handlertest.NewContext(http.MethodPost, "")
	require.NoError(t, GenerateReportHandler(store, repository.NewReservationRepository(db))(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "", store.added[0].TopCars)
	require.Equal(t, "", store.added[0].MostActiveUser)
}

func TestGenerateReportHandler_SummaryFails(t *testing.T) {
	db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return database.FakeRow{Err: errors.New("timeout")}
	}}
	store := newStore()
	c, rec := handlertest.NewContext(http.MethodPost, "")
	require.NoError(t, GenerateReportHandler(store, repository.NewReservationRepository(db))(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Empty(t, store.added)
}

func TestReportCRUD(t *testing.T) {
	store := newStore()

	c, rec := handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, ListReportsHandler(store)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, GetReportHandler(store)(handlertest.WithParam(c, "reportId", "1")))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = handlertest.NewContext(http.MethodPost, `{"reportDate":"2024-06-30","totalReservations":2,"totalRevenue":10}`)
	require.NoError(t, CreateReportHandler(store)(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = handlertest.NewContext(http.MethodPost, `{"totalReservations":2}`)
	require.NoError(t, CreateReportHandler(store)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = handlertest.NewContext(http.MethodPut, `{"reportId":2,"reportDate":"2024-06-30"}`)
	require.NoError(t, UpdateReportHandler(store)(handlertest.WithParam(c, "reportId", "1")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Report ID mismatch.")

	c, rec = handlertest.NewContext(http.MethodPut, `{"reportDate":"2024-06-30","totalReservations":9}`)
	require.NoError(t, UpdateReportHandler(store)(handlertest.WithParam(c, "reportId", "1")))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, 9, store.reports[1].TotalReservations)

	c, rec = handlertest.NewContext(http.MethodDelete, "")
	require.NoError(t, DeleteReportHandler(store)(handlertest.WithParam(c, "reportId", "1")))
	require.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = handlertest.NewContext(http.MethodDelete, "")
	require.NoError(t, DeleteReportHandler(store)(handlertest.WithParam(c, "reportId", "1")))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
