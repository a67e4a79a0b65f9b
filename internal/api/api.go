// Package api 按资源组织客户端对后端 REST 接口的绑定
// 路径分组与服务端路由一致：/users/* /friends/* /groups/* /messages/* /conversations/*
// 本层只做"调用 + 反序列化"，不碰 store；数据写入由 sync 层负责
package api

import (
	"kama_chat_client/internal/transport"
)

// API 聚合全部资源绑定
type API struct {
	tc *transport.Client
}

// New 创建 API 绑定
func New(tc *transport.Client) *API {
	return &API{tc: tc}
}
