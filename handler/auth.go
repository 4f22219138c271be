package handler

import (
	"errors"
	"net/http"

	"tuiter/config"
	"tuiter/models"
	"tuiter/pkg/context"
	"tuiter/pkg/response"
	"tuiter/service"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
	Config      *config.Config
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	r.POST("/auth/signup", context.Wrap(a.Signup))
	r.POST("/auth/login", context.Wrap(a.Login))
	r.POST("/auth/profile", context.Wrap(a.Profile))
	r.POST("/auth/logout", context.Wrap(a.Logout))
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *Auth) setSessionCookie(c *gin.Context, token string) {
	maxAge := a.Config.Session.Hours() * 3600
	c.SetCookie(a.Config.Session.Cookie(), token, maxAge, "/", "", false, true)
}

func (a *Auth) clearSessionCookie(c *gin.Context) {
	c.SetCookie(a.Config.Session.Cookie(), "", -1, "/", "", false, true)
}

// Signup registers a new account and opens a session. A taken username
// answers 403, same as the login failure path.
func (a *Auth) Signup(c *gin.Context) error {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	if user.Username == "" || user.Password == "" {
		return response.NewError(http.StatusBadRequest, "username and password are required")
	}

	created, token, err := a.AuthService.Signup(c.Request.Context(), &user)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.Status(http.StatusForbidden)
			return nil
		}
		return err
	}

	a.setSessionCookie(c, token)
	response.Success(c, created)
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, token, err := a.AuthService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			c.Status(http.StatusForbidden)
			return nil
		}
		return err
	}

	a.setSessionCookie(c, token)
	response.Success(c, user)
	return nil
}

// Profile returns the session-bound user, 403 when no session is active.
func (a *Auth) Profile(c *gin.Context) error {
	token, err := c.Cookie(a.Config.Session.Cookie())
	if err != nil || token == "" {
		c.Status(http.StatusForbidden)
		return nil
	}

	user, err := a.AuthService.Profile(c.Request.Context(), token)
	if err != nil {
		c.Status(http.StatusForbidden)
		return nil
	}
	response.Success(c, user)
	return nil
}

func (a *Auth) Logout(c *gin.Context) error {
	token, err := c.Cookie(a.Config.Session.Cookie())
	if err == nil && token != "" {
		if err := a.AuthService.Logout(c.Request.Context(), token); err != nil {
			return err
		}
	}
	a.clearSessionCookie(c)
	response.Success(c, nil)
	return nil
}
