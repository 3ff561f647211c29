package config

import "strings"

// UploadConfig 本地图片上传目录与访问地址
type UploadConfig struct {
	Dir        string `json:"dir" yaml:"dir"`                 // 磁盘目录
	BaseURL    string `json:"base_url" yaml:"base_url"`       // 形如 http://host:port
	ImagesPath string `json:"images_path" yaml:"images_path"` // URL 前缀，如 /uploads
}

func ProvideUploadConfig(cfg *Config) *UploadConfig {
	return cfg.Upload
}

// URL 拼出某个文件的完整访问地址
func (u *UploadConfig) URL(filename string) string {
	base := strings.TrimRight(u.BaseURL, "/")
	path := "/" + strings.Trim(u.ImagesPath, "/")
	return base + path + "/" + filename
}
