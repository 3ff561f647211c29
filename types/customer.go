package types

type CustomerPayload struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	AddressID int64  `json:"address_id"`
	Remark    string `json:"remark"`
}

type CustomerItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	AddressID   int64  `json:"address_id"`
	AddressName string `json:"address_name"`
	Remark      string `json:"remark"`
}

type CustomerAddressPayload struct {
	Name string `json:"name" binding:"required"`
}
