//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewTuitDAO,
	NewTuitLikeDAO,
	NewTuitDislikeDAO,
	NewFollowDAO,
	NewBookmarkDAO,
	NewMessageDAO,
)
