package service

import (
	"Tuanke/config"
	"Tuanke/dao"
	"Tuanke/pkg/jwt"
	"Tuanke/pkg/response"
	"Tuanke/types"
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const defaultTokenExpire = 7200 // 秒

type AuthService struct {
	Config   *config.Config
	AdminDAO *dao.Admin
}

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
}

func (a *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	admin, err := a.AdminDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		// 不区分账号不存在和密码错误
		return nil, response.NewError(response.CodeUnauthorized, "账号或密码错误")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return nil, response.NewError(response.CodeUnauthorized, "账号或密码错误")
	}

	expire := a.Config.Jwt.Expire
	if expire <= 0 {
		expire = defaultTokenExpire
	}

	token, err := jwt.GenerateToken(
		[]byte(a.Config.Jwt.Secret),
		admin.ID,
		admin.Username,
		"access",
		time.Duration(expire)*time.Second,
	)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{Token: token, ExpireIn: expire}, nil
}
