package handler

import (
	"net/http"

	"tuiter/pkg/context"
	"tuiter/pkg/response"
	"tuiter/service"

	"github.com/gin-gonic/gin"
)

type Dislike struct {
	DislikeService  service.IDislikeService
	ReactionService service.IReactionService
}

func (d *Dislike) RegisterRouter(r gin.IRouter) {
	r.GET("/tuits/:tid/dislikes", context.Wrap(d.UsersWhoDisliked))
	r.GET("/users/:uid/dislikes", context.Wrap(d.TuitsDislikedBy))
	r.POST("/users/:uid/dislikes/:tid", context.Wrap(d.DislikeTuit))
	r.DELETE("/users/:uid/dislikes/:tid", context.Wrap(d.UndislikeTuit))
	r.PUT("/users/:uid/dislikes/:tid", context.Wrap(d.ToggleDislike))
}

// UsersWhoDisliked 点踩该推文的用户列表
func (d *Dislike) UsersWhoDisliked(c *gin.Context) error {
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	dislikes, err := d.DislikeService.UsersWhoDisliked(c.Request.Context(), tuitID)
	if err != nil {
		return err
	}
	response.Success(c, dislikes)
	return nil
}

// TuitsDislikedBy 用户点踩过的推文列表
func (d *Dislike) TuitsDislikedBy(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	dislikes, err := d.DislikeService.TuitsDislikedBy(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, dislikes)
	return nil
}

// DislikeTuit inserts a raw dislike row. No toggle, no counter maintenance.
func (d *Dislike) DislikeTuit(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	dislike, err := d.DislikeService.Dislike(c.Request.Context(), userID, tuitID)
	if err != nil {
		return err
	}
	response.Success(c, dislike)
	return nil
}

func (d *Dislike) UndislikeTuit(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	deleted, err := d.DislikeService.Undislike(c.Request.Context(), userID, tuitID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": deleted})
	return nil
}

// ToggleDislike mirrors Like.ToggleLike with the roles swapped.
func (d *Dislike) ToggleDislike(c *gin.Context) error {
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
	if err := d.ReactionService.ToggleDislike(c.Request.Context(), userID, tuitID); err != nil {
		c.Status(http.StatusNotFound)
		return nil
	}
	c.Status(http.StatusOK)
	return nil
}
