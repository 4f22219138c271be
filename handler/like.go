package handler

import (
	"net/http"

	"tuiter/pkg/context"
	"tuiter/pkg/response"
	"tuiter/service"

	"github.com/gin-gonic/gin"
)

type Like struct {
	LikeService     service.ILikeService
	ReactionService service.IReactionService
}

func (l *Like) RegisterRouter(r gin.IRouter) {
	r.GET("/tuits/:tid/likes", context.Wrap(l.UsersWhoLiked))
	r.GET("/users/:uid/likes", context.Wrap(l.TuitsLikedBy))
	r.POST("/users/:uid/likes/:tid", context.Wrap(l.LikeTuit))
	r.DELETE("/users/:uid/likes/:tid", context.Wrap(l.UnlikeTuit))
	r.PUT("/users/:uid/likes/:tid", context.Wrap(l.ToggleLike))
}

// UsersWhoLiked 点赞该推文的用户列表
func (l *Like) UsersWhoLiked(c *gin.Context) error {
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	likes, err := l.LikeService.UsersWhoLiked(c.Request.Context(), tuitID)
	if err != nil {
		return err
	}
	response.Success(c, likes)
	return nil
}

// TuitsLikedBy 用户点赞过的推文列表
func (l *Like) TuitsLikedBy(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	likes, err := l.LikeService.TuitsLikedBy(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, likes)
	return nil
}

// LikeTuit inserts a raw like row. No toggle, no counter maintenance.
func (l *Like) LikeTuit(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	like, err := l.LikeService.Like(c.Request.Context(), userID, tuitID)
	if err != nil {
		return err
	}
	response.Success(c, like)
	return nil
}

func (l *Like) UnlikeTuit(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	deleted, err := l.LikeService.Unlike(c.Request.Context(), userID, tuitID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": deleted})
	return nil
}

// ToggleLike flips the caller's like on a tuit. Answers 200 with an empty
// body, or a generic 404 on any failure (unresolved "me", missing tuit,
// store error), matching the resource's external contract.
func (l *Like) ToggleLike(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		c.Status(http.StatusNotFound)
		return nil
	}
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return nil
	}
	if err := l.ReactionService.ToggleLike(c.Request.Context(), userID, tuitID); err != nil {
		c.Status(http.StatusNotFound)
		return nil
	}
	c.Status(http.StatusOK)
	return nil
}
