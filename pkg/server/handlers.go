package server

import (
	"Tuanke/handler"
)

type Handlers struct {
	Auth        *handler.Auth
	Order       *handler.Order
	Stats       *handler.Stats
	GroupBuy    *handler.GroupBuy
	Supplier    *handler.Supplier
	Product     *handler.Product
	Customer    *handler.Customer
	Setting     *handler.Setting
	Upload      *handler.Upload
	Maintenance *handler.Maintenance
}
