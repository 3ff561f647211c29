package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewAdmin,
	NewOrder,
	NewGroupBuy,
	NewSupplier,
	NewProduct,
	NewProductType,
	NewCustomer,
	NewCustomerAddress,
	NewSetting,
	NewImage,
)
