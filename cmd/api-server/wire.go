//go:build wireinject
// +build wireinject

package main

import (
	"tuiter/config"
	"tuiter/dao"
	"tuiter/dao/cache"
	"tuiter/handler"
	"tuiter/pkg/client"
	"tuiter/pkg/database"
	"tuiter/pkg/server"
	"tuiter/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Tuit), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Dislike), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Bookmark), "*"),
		wire.Struct(new(handler.Message), "*"),

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
