//go:build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(TuitService), "*"),
	wire.Bind(new(ITuitService), new(*TuitService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(DislikeService), "*"),
	wire.Bind(new(IDislikeService), new(*DislikeService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(BookmarkService), "*"),
	wire.Bind(new(IBookmarkService), new(*BookmarkService)),

	wire.Struct(new(MessageService), "*"),
	wire.Bind(new(IMessageService), new(*MessageService)),

	NewReactionService,
	wire.Bind(new(IReactionService), new(*ReactionService)),
)
