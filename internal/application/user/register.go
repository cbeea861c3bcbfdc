// Package user 用户用例（注册、登录、登出、刷新Token）
package user

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/user"
)

// RegisterUseCase 用户注册用例
// 注册只调用一个领域服务，返回不含密码的DTO
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserInfo, error) {
	u, err := uc.userService.Register(ctx, req.Firstname, req.Lastname, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return toUserInfo(u), nil
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
}

// UserInfo 用户信息（不返回密码）
type UserInfo struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

func toUserInfo(u *user.User) *UserInfo {
	return &UserInfo{
		ID:        u.ID,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
	}
}
