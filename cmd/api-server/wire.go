//go:build wireinject
// +build wireinject

package main

import (
	"Tuanke/config"
	"Tuanke/dao"
	"Tuanke/handler"
	"Tuanke/pkg/client"
	"Tuanke/pkg/database"
	"Tuanke/pkg/server"
	"Tuanke/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideUploadConfig,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Stats), "*"),
		wire.Struct(new(handler.GroupBuy), "*"),
		wire.Struct(new(handler.Supplier), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Customer), "*"),
		wire.Struct(new(handler.Setting), "*"),
		wire.Struct(new(handler.Upload), "*"),
		wire.Struct(new(handler.Maintenance), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
