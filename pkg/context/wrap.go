package context

import (
	"errors"
	"net/http"

	"tuiter/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// handler already produced a response
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			response.Fail(c, http.StatusInternalServerError, err.Error())
		}
	}
}

// GetUserID returns the session-resolved user id set by the session middleware.
func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("no session identity")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id has wrong type")
	}

	return uid, nil
}
