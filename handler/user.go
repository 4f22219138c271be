package handler

import (
	"errors"
	"net/http"

	"tuiter/models"
	"tuiter/pkg/context"
	"tuiter/pkg/response"
	"tuiter/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type User struct {
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	r.GET("/users", context.Wrap(u.List))
	r.GET("/users/:uid", context.Wrap(u.Get))
	r.POST("/users", context.Wrap(u.Create))
	r.PUT("/users/:uid", context.Wrap(u.Update))
	r.DELETE("/users/:uid", context.Wrap(u.Delete))
	r.DELETE("/users", context.Wrap(u.DeleteAll))
	r.DELETE("/usernames/:username", context.Wrap(u.DeleteByUsername))
}

func (u *User) List(c *gin.Context) error {
	users, err := u.UserService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}

func (u *User) Get(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	user, err := u.UserService.Get(c.Request.Context(), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// absent users fall through as empty data, same as the other reads
		response.Success(c, nil)
		return nil
	}
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) Create(c *gin.Context) error {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	created, err := u.UserService.Create(c.Request.Context(), &user)
	if err != nil {
		return err
	}
	response.Success(c, created)
	return nil
}

func (u *User) Update(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	// id is the key, never an updatable column
	delete(data, "id")
	updated, err := u.UserService.Update(c.Request.Context(), userID, data)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"updated": updated})
	return nil
}

func (u *User) Delete(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	deleted, err := u.UserService.Delete(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": deleted})
	return nil
}

// DeleteAll wipes the users table. Exists for integration-test resets only.
func (u *User) DeleteAll(c *gin.Context) error {
	deleted, err := u.UserService.DeleteAll(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": deleted})
	return nil
}

func (u *User) DeleteByUsername(c *gin.Context) error {
	username := c.Param("username")
	if username == "" {
		return response.NewError(http.StatusBadRequest, "missing username")
	}
	deleted, err := u.UserService.DeleteByUsername(c.Request.Context(), username)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": deleted})
	return nil
}
