package types

type UploadImageResp struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
