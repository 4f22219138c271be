package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	ctxpkg "tuiter/pkg/context"
	"tuiter/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReactions struct {
	err     error
	userID  int64
	tuitID  int64
	toggled int
}

func (s *stubReactions) ToggleLike(_ context.Context, userID, tuitID int64) error {
	s.userID, s.tuitID = userID, tuitID
	s.toggled++
	return s.err
}

func (s *stubReactions) ToggleDislike(_ context.Context, userID, tuitID int64) error {
	s.userID, s.tuitID = userID, tuitID
	s.toggled++
	return s.err
}

func newLikeRouter(stub *stubReactions, sessionUID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if sessionUID != 0 {
		r.Use(func(c *gin.Context) {
			c.Set(ctxpkg.CtxUserID, sessionUID)
			c.Next()
		})
	}
	h := &Like{ReactionService: stub}
	r.PUT("/users/:uid/likes/:tid", ctxpkg.Wrap(h.ToggleLike))
	return r
}

func TestToggleLikeOK(t *testing.T) {
	stub := &stubReactions{}
	r := newLikeRouter(stub, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/7/likes/100", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, int64(7), stub.userID)
	assert.Equal(t, int64(100), stub.tuitID)
}

func TestToggleLikeMeResolvesSession(t *testing.T) {
	stub := &stubReactions{}
	r := newLikeRouter(stub, 42)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/me/likes/100", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), stub.userID)
}

func TestToggleLikeMeWithoutSession(t *testing.T) {
	stub := &stubReactions{}
	r := newLikeRouter(stub, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/me/likes/100", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, stub.toggled, "service must not be reached without an identity")
}

func TestToggleLikeServiceError(t *testing.T) {
	stub := &stubReactions{err: service.ErrTuitNotFound}
	r := newLikeRouter(stub, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/7/likes/100", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestToggleLikeBadTuitID(t *testing.T) {
	stub := &stubReactions{}
	r := newLikeRouter(stub, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/7/likes/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, stub.toggled)
}
