package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),

	wire.Struct(new(DedupService), "*"),
	wire.Bind(new(IDedupService), new(*DedupService)),

	wire.Struct(new(UploadService), "*"),
	wire.Bind(new(IUploadService), new(*UploadService)),

	wire.Struct(new(GroupBuyService), "*"),
	wire.Bind(new(IGroupBuyService), new(*GroupBuyService)),

	wire.Struct(new(SupplierService), "*"),
	wire.Bind(new(ISupplierService), new(*SupplierService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(CustomerService), "*"),
	wire.Bind(new(ICustomerService), new(*CustomerService)),

	wire.Struct(new(SettingService), "*"),
	wire.Bind(new(ISettingService), new(*SettingService)),
)
