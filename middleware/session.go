package middleware

import (
	"tuiter/config"
	"tuiter/dao/cache"
	"tuiter/pkg/context"

	"github.com/gin-gonic/gin"
)

// Session resolves the session cookie into a user id on the request context.
// Requests without a valid session pass through unauthenticated; handlers
// that need an identity check for it themselves.
func Session(store *cache.SessionStorage, conf *config.Config) gin.HandlerFunc {
	cookie := conf.Session.Cookie()
	return func(c *gin.Context) {
		token, err := c.Cookie(cookie)
		if err == nil && token != "" {
			if uid, err := store.UserID(c.Request.Context(), token); err == nil && uid != 0 {
				c.Set(context.CtxUserID, uid)
			}
		}
		c.Next()
	}
}
