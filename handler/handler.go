package handler

import (
	"strconv"

	"tuiter/pkg/context"

	"github.com/gin-gonic/gin"
)

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// resolveUserID resolves the :uid path parameter. The literal "me" stands
// for the session-bound identity and fails when no session is present.
func resolveUserID(c *gin.Context) (int64, error) {
	param := c.Param("uid")
	if param == "me" {
		return context.GetUserID(c)
	}
	return parseID(param)
}
