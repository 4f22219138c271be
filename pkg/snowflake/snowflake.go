package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID generates an id for users, tuits and messages.
func GenID() int64 {
	return node.Generate().Int64()
}
