package server

import (
	"tuiter/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	User     *handler.User
	Tuit     *handler.Tuit
	Like     *handler.Like
	Dislike  *handler.Dislike
	Follow   *handler.Follow
	Bookmark *handler.Bookmark
	Message  *handler.Message
}
