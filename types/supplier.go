package types

type SupplierPayload struct {
	Name    string   `json:"name" binding:"required"`
	Phone   string   `json:"phone"`
	Wechat  string   `json:"wechat"`
	Address string   `json:"address"`
	Remark  string   `json:"remark"`
	Images  []string `json:"images"`
}

type SupplierItem struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Wechat    string   `json:"wechat"`
	Address   string   `json:"address"`
	Remark    string   `json:"remark"`
	Images    []string `json:"images"`
	ImageURLs []string `json:"image_urls"`
}

type SupplierListRequest struct {
	Keyword  string `form:"keyword"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type SupplierListResponse struct {
	Suppliers []*SupplierItem `json:"suppliers"`
	Total     int64           `json:"total"`
	Page      int             `json:"page"`
	PageSize  int             `json:"page_size"`
}
