package types

type ProductPayload struct {
	Name          string `json:"name" binding:"required"`
	ProductTypeID int64  `json:"product_type_id" binding:"required"`
	Description   string `json:"description"`
}

type ProductItem struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ProductTypeID   int64  `json:"product_type_id"`
	ProductTypeName string `json:"product_type_name"`
	Description     string `json:"description"`
}

type ProductTypePayload struct {
	Name string `json:"name" binding:"required"`
}
