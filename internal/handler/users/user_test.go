package users

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"testing"

	"road-ready/internal/api"
	"road-ready/internal/apperror"
	"road-ready/internal/handler/handlertest"
	"road-ready/internal/model"
	"road-ready/internal/service"

	"github.com/stretchr/testify/require"
)

type memStore struct {
	users map[int]*model.User
	next  int
	err   error
}

func newMemStore(users ...model.User) *memStore {
	m := &memStore{users: map[int]*model.User{}}
	for i := range users {
		u := users[i]
		m.users[u.ID] = &u
		if u.ID > m.next {
			m.next = u.ID
		}
	}
	return m
}

func (m *memStore) GetAll(context.Context) ([]model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) GetByID(_ context.Context, id int) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("User with ID %d not found.", id)
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) Add(_ context.Context, u *model.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return apperror.Duplicate("User with email %s already exists.", u.Email)
		}
	}
	m.next++
	u.ID = m.next
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memStore) Update(_ context.Context, u *model.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return apperror.NotFound("User with ID %d not found.", u.ID)
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memStore) Delete(_ context.Context, id int) error {
	if _, ok := m.users[id]; !ok {
		return apperror.NotFound("User with ID %d not found.", id)
	}
	delete(m.users, id)
	return nil
}

func restore() {
	hashPassword = service.HashPassword
}

var alice = model.User{ID: 1, FirstName: "Alice", LastName: "Wong", Email: "alice@example.com", Password: "h1", Role: model.RoleUser}

func TestListUsersHandler(t *testing.T) {
	store := newMemStore(alice, model.User{ID: 2, Email: "bob@example.com", Role: model.RoleHost})
	c, rec := handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, ListUsersHandler(store)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var got []api.UserDTO
	handlertest.Decode(t, rec, &got)
	require.Len(t, got, 2)
	require.Equal(t, "alice@example.com", got[0].Email)
	require.NotContains(t, rec.Body.String(), "h1")

	store.err = apperror.Internal(errors.New("boom"), "An error occurred while retrieving the users.")
	c, rec = handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, ListUsersHandler(store)(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateUserHandler(t *testing.T) {
	t.Cleanup(restore)
	hashPassword = func(p string) (string, error) { return "hashed:" + p, nil }
	store := newMemStore(alice)

	c, rec := handlertest.NewContext(http.MethodPost, `{"firstName":"Ada","lastName":"L","email":"ADA@example.com","password":"Secret123","role":"Admin"}`)
	require.NoError(t, CreateUserHandler(store)(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	var dto api.UserDTO
	handlertest.Decode(t, rec, &dto)
	require.Equal(t, "ada@example.com", dto.Email)
	require.Equal(t, "Admin", dto.Role)
	require.Equal(t, "hashed:Secret123", store.users[dto.UserID].Password)

	c, rec = handlertest.NewContext(http.MethodPost, `{"firstName":"A","lastName":"W","email":"alice@example.com","password":"Secret123","role":"User"}`)
	require.NoError(t, CreateUserHandler(store)(c))
	require.Equal(t, http.StatusConflict, rec.Code)

	t.Run("hash error", func(t *testing.T) {
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		c, rec := handlertest.NewContext(http.MethodPost, `{"firstName":"B","lastName":"C","email":"b@example.com","password":"Secret123","role":"User"}`)
		require.NoError(t, CreateUserHandler(store)(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("bad role", func(t *testing.T) {
		c, rec := handlertest.NewContext(http.MethodPost, `{"firstName":"B","lastName":"C","email":"b@example.com","password":"Secret123","role":"Root"}`)
		require.NoError(t, CreateUserHandler(store)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProfileHandler(t *testing.T) {
	store := newMemStore(alice)

	c, rec := handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, ProfileHandler(store)(handlertest.As(c, 1, model.RoleUser)))
	require.Equal(t, http.StatusOK, rec.Code)
	var dto api.UserDTO
	handlertest.Decode(t, rec, &dto)
	require.Equal(t, 1, dto.UserID)

	c, rec = handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, ProfileHandler(store)(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, ProfileHandler(store)(handlertest.As(c, 99, model.RoleUser)))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMeHandler(t *testing.T) {
	store := newMemStore(alice)
	c, rec := handlertest.NewContext(http.MethodPut, `{"firstName":"Ally","lastName":"Chen","email":"Alice.Chen@Example.com"}`)
	require.NoError(t, UpdateMeHandler(store)(handlertest.As(c, 1, model.RoleUser)))
	require.Equal(t, http.StatusNoContent, rec.Code)

	got := store.users[1]
	require.Equal(t, "Ally", got.FirstName)
	require.Equal(t, "Chen", got.LastName)
	require.Equal(t, "alice.chen@example.com", got.Email)
	require.Empty(t, got.PhoneNumber)
	require.Equal(t, model.RoleUser, got.Role)

	// 全欄位覆寫：缺少必填欄位不接受部分更新
	c, rec = handlertest.NewContext(http.MethodPut, `{"lastName":"Lin"}`)
	require.NoError(t, UpdateMeHandler(store)(handlertest.As(c, 1, model.RoleUser)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Chen", store.users[1].LastName)

	c, rec = handlertest.NewContext(http.MethodPut, `{"email":"not-an-email"}`)
	require.NoError(t, UpdateMeHandler(store)(handlertest.As(c, 1, model.RoleUser)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteHandlers(t *testing.T) {
	store := newMemStore(alice, model.User{ID: 2, Email: "bob@example.com"})

	c, rec := handlertest.NewContext(http.MethodDelete, "")
	require.NoError(t, DeleteMeHandler(store)(handlertest.As(c, 1, model.RoleUser)))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotContains(t, store.users, 1)

	c, rec = handlertest.NewContext(http.MethodDelete, "")
	require.NoError(t, DeleteUserHandler(store)(handlertest.WithParam(c, "userId", "2")))
	require.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = handlertest.NewContext(http.MethodDelete, "")
	require.NoError(t, DeleteUserHandler(store)(handlertest.WithParam(c, "userId", "2")))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NotFoundError", handlertest.ErrorType(t, rec))

	c, rec = handlertest.NewContext(http.MethodDelete, "")
	require.NoError(t, DeleteUserHandler(store)(handlertest.WithParam(c, "userId", "x")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserHandler(t *testing.T) {
	store := newMemStore(alice)
	c, rec := handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, GetUserHandler(store)(handlertest.WithParam(c, "userId", "1")))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = handlertest.NewContext(http.MethodGet, "")
	require.NoError(t, GetUserHandler(store)(handlertest.WithParam(c, "userId", "5")))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
