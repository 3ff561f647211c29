package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenOrderSn 生成订单号
func GenOrderSn() string {
	return node.Generate().String()
}

func GenID() int64 {
	return node.Generate().Int64()
}
