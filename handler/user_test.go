package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tuiter/models"
	"tuiter/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUsers struct {
	user *models.User
	err  error
}

func (s *stubUsers) List(context.Context) ([]*models.User, error) { return nil, s.err }

func (s *stubUsers) Get(context.Context, int64) (*models.User, error) { return s.user, s.err }

func (s *stubUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	return u, s.err
}

func (s *stubUsers) Update(context.Context, int64, map[string]any) (int64, error) {
	return 0, s.err
}

func (s *stubUsers) Delete(context.Context, int64) (int64, error) { return 0, s.err }

func (s *stubUsers) DeleteByUsername(context.Context, string) (int64, error) { return 0, s.err }

func (s *stubUsers) DeleteAll(context.Context) (int64, error) { return 0, s.err }

func newUserRouter(stub *stubUsers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &User{UserService: stub}
	h.RegisterRouter(r)
	return r
}

func getUser(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/7", nil))
	return w
}

func TestGetUserOK(t *testing.T) {
	r := newUserRouter(&stubUsers{user: &models.User{ID: 7, Username: "alice"}})

	w := getUser(r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestGetUserNotFound(t *testing.T) {
	r := newUserRouter(&stubUsers{err: gorm.ErrRecordNotFound})

	w := getUser(r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.Nil(t, resp.Data, "missing user falls through as null data")
}

func TestGetUserStoreError(t *testing.T) {
	r := newUserRouter(&stubUsers{err: errors.New("connection refused")})

	w := getUser(r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, resp.Code, "store failures must not masquerade as missing users")
}
