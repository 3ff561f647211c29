package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	Expire int    `json:"expire" yaml:"expire"` // access token 有效期（秒）
}
