package handler

import (
	"net/http"

	"tuiter/pkg/context"
	"tuiter/pkg/response"
	"tuiter/service"

	"github.com/gin-gonic/gin"
)

type Tuit struct {
	TuitService service.ITuitService
}

type createTuitRequest struct {
	Tuit string `json:"tuit" binding:"required"`
}

type updateTuitRequest struct {
	Tuit string `json:"tuit" binding:"required"`
}

func (t *Tuit) RegisterRouter(r gin.IRouter) {
	r.GET("/tuits", context.Wrap(t.List))
	r.GET("/tuits/:tid", context.Wrap(t.Get))
	r.GET("/users/:uid/tuits", context.Wrap(t.ListByUser))
	r.POST("/users/:uid/tuits", context.Wrap(t.Create))
	r.PUT("/tuits/:tid", context.Wrap(t.Update))
	r.DELETE("/tuits/:tid", context.Wrap(t.Delete))
	r.DELETE("/users/:uid/tuits", context.Wrap(t.DeleteByUser))
}

func (t *Tuit) List(c *gin.Context) error {
	tuits, err := t.TuitService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tuits)
	return nil
}

func (t *Tuit) Get(c *gin.Context) error {
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	tuit, err := t.TuitService.Get(c.Request.Context(), tuitID)
	if err != nil {
		return err
	}
	response.Success(c, tuit)
	return nil
}

func (t *Tuit) ListByUser(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	tuits, err := t.TuitService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, tuits)
	return nil
}

func (t *Tuit) Create(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	var req createTuitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	tuit, err := t.TuitService.Create(c.Request.Context(), userID, req.Tuit)
	if err != nil {
		return err
	}
	response.Success(c, tuit)
	return nil
}

func (t *Tuit) Update(c *gin.Context) error {
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	var req updateTuitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	updated, err := t.TuitService.Update(c.Request.Context(), tuitID, req.Tuit)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"updated": updated})
	return nil
}

func (t *Tuit) Delete(c *gin.Context) error {
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	deleted, err := t.TuitService.Delete(c.Request.Context(), tuitID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": deleted})
	return nil
}

func (t *Tuit) DeleteByUser(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	deleted, err := t.TuitService.DeleteByUser(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": deleted})
	return nil
}
