package context

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tuiter/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWrapped(h func(*gin.Context) error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", Wrap(h))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestWrapBizError(t *testing.T) {
	w := serveWrapped(func(c *gin.Context) error {
		return response.NewError(http.StatusBadRequest, "bad uid")
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "bad uid", resp.Msg)
}

func TestWrapUnexpectedError(t *testing.T) {
	w := serveWrapped(func(c *gin.Context) error {
		return errors.New("boom")
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "boom", resp.Msg)
}

func TestWrapWrittenResponseUntouched(t *testing.T) {
	w := serveWrapped(func(c *gin.Context) error {
		c.String(http.StatusNotFound, "gone")
		return errors.New("already answered")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "gone", w.Body.String())
}
