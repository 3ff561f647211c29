package types

type SettingPayload struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type SettingItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
