package handler

import (
	"net/http"

	"tuiter/pkg/context"
	"tuiter/pkg/response"
	"tuiter/service"

	"github.com/gin-gonic/gin"
)

type Message struct {
	MessageService service.IMessageService
}

type sendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

type updateMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

func (m *Message) RegisterRouter(r gin.IRouter) {
	r.POST("/users/:uid/messages/:ouid", context.Wrap(m.Send))
	r.GET("/users/:uid/messages", context.Wrap(m.Sent))
	r.GET("/users/:uid/inbox", context.Wrap(m.Received))
	r.GET("/users/:uid/messages/:ouid", context.Wrap(m.Between))
	r.DELETE("/messages/:mid", context.Wrap(m.Delete))
	r.PUT("/messages/:mid", context.Wrap(m.Update))
}

func (m *Message) Send(c *gin.Context) error {
	fromID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	toID, err := parseID(c.Param("ouid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad ouid")
	}
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	msg, err := m.MessageService.Send(c.Request.Context(), fromID, toID, req.Message)
	if err != nil {
		return err
	}
	response.Success(c, msg)
	return nil
}

func (m *Message) Sent(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	messages, err := m.MessageService.Sent(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, messages)
	return nil
}

func (m *Message) Received(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	messages, err := m.MessageService.Received(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, messages)
	return nil
}

// Between 两个用户之间的私信记录
func (m *Message) Between(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	otherID, err := parseID(c.Param("ouid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad ouid")
	}
	messages, err := m.MessageService.Between(c.Request.Context(), userID, otherID)
	if err != nil {
		return err
	}
	response.Success(c, messages)
	return nil
}

func (m *Message) Delete(c *gin.Context) error {
	messageID, err := parseID(c.Param("mid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad mid")
	}
	deleted, err := m.MessageService.Delete(c.Request.Context(), messageID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": deleted})
	return nil
}

func (m *Message) Update(c *gin.Context) error {
	messageID, err := parseID(c.Param("mid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad mid")
	}
	var req updateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	updated, err := m.MessageService.Update(c.Request.Context(), messageID, req.Message)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"updated": updated})
	return nil
}
