package handler

import (
	"net/http"

	"tuiter/pkg/context"
	"tuiter/pkg/response"
	"tuiter/service"

	"github.com/gin-gonic/gin"
)

type Bookmark struct {
	BookmarkService service.IBookmarkService
}

func (b *Bookmark) RegisterRouter(r gin.IRouter) {
	r.POST("/users/:uid/bookmarks/:tid", context.Wrap(b.BookmarkTuit))
	r.DELETE("/users/:uid/bookmarks/:tid", context.Wrap(b.UnbookmarkTuit))
	r.GET("/users/:uid/bookmarks", context.Wrap(b.ListByUser))
	r.GET("/tuits/:tid/bookmarks", context.Wrap(b.ListByTuit))
	r.GET("/users/:uid/bookmarks/:tid", context.Wrap(b.Get))
}

func (b *Bookmark) BookmarkTuit(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	bookmark, err := b.BookmarkService.Bookmark(c.Request.Context(), userID, tuitID)
	if err != nil {
		return err
	}
	response.Success(c, bookmark)
	return nil
}

func (b *Bookmark) UnbookmarkTuit(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	deleted, err := b.BookmarkService.Unbookmark(c.Request.Context(), userID, tuitID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"deleted": deleted})
	return nil
}

func (b *Bookmark) ListByUser(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	bookmarks, err := b.BookmarkService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, bookmarks)
	return nil
}

func (b *Bookmark) ListByTuit(c *gin.Context) error {
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	bookmarks, err := b.BookmarkService.ListByTuit(c.Request.Context(), tuitID)
	if err != nil {
		return err
	}
	response.Success(c, bookmarks)
	return nil
}

func (b *Bookmark) Get(c *gin.Context) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad uid")
	}
	tuitID, err := parseID(c.Param("tid"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "bad tid")
	}
	bookmark, err := b.BookmarkService.Get(c.Request.Context(), userID, tuitID)
	if err != nil {
		return err
	}
	response.Success(c, bookmark)
	return nil
}
