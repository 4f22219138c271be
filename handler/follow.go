package handler

import (
	"net/http"

	"tuiter/pkg/context"
	"tuiter/pkg/response"
	"tuiter/service"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	r.POST("/users/:uid/follows/:ouid", context.Wrap(f.FollowUser))
	r.DELETE("/users/:uid/follows/:ouid", context.Wrap(f.UnfollowUser))
	r.GET("/users/:uid/following", context.Wrap(f.Following))
	r.GET("/users/:uid/followers", context.Wrap(f.Followers))
	r.GET("/users/:uid/follows/:ouid", context.Wrap(f.Get))
}

func (f *Follow) FollowUser(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	otherID, err := parseID(c.Param("ouid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad ouid")
	}
	follow, err := f.FollowService.Follow(c.Request.Context(), userID, otherID)
	if err != nil {
		return err
	}
	response.Success(c, follow)
	return nil
}

func (f *Follow) UnfollowUser(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	otherID, err := parseID(c.Param("ouid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad ouid")
	}
	deleted, err := f.FollowService.Unfollow(c.Request.Context(), userID, otherID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": deleted})
	return nil
}

// Following 该用户关注的人
func (f *Follow) Following(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	follows, err := f.FollowService.Following(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, follows)
	return nil
}

// Followers 关注该用户的人
func (f *Follow) Followers(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	follows, err := f.FollowService.Followers(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, follows)
	return nil
}

func (f *Follow) Get(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	otherID, err := parseID(c.Param("ouid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad ouid")
	}
	follow, err := f.FollowService.Get(c.Request.Context(), userID, otherID)
	if err != nil {
		return err
	}
	response.Success(c, follow)
	return nil
}
