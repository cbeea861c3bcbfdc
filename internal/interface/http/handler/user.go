package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/bookcatalog/internal/application/user"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// UserHandler 用户HTTP处理器
type UserHandler struct {
	registerUseCase *appuser.RegisterUseCase
	loginUseCase    *appuser.LoginUseCase
	logoutUseCase   *appuser.LogoutUseCase
	refreshUseCase  *appuser.RefreshUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	loginUseCase *appuser.LoginUseCase,
	logoutUseCase *appuser.LogoutUseCase,
	refreshUseCase *appuser.RefreshUseCase,
) *UserHandler {
	return &UserHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
		refreshUseCase:  refreshUseCase,
	}
}

// Register 用户注册
// @Summary      用户注册
// @Description  创建新用户账号
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      200 {object} appuser.UserInfo "注册成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /api/user/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Login 用户登录
// @Summary      用户登录
// @Description  验证邮箱密码，返回JWT Token
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} appuser.LoginResponse "登录成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      403 {object} response.Response "邮箱或密码错误"
// @Router       /api/user/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Logout 用户登出
// @Summary      用户登出
// @Description  删除会话，Access Token在过期前失效
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string
// @Failure      403 {object} response.Response "未登录或Token无效"
// @Router       /api/user/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.logoutUseCase.Execute(c.Request.Context(), middleware.GetIdentity(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "已登出"})
}

// Refresh 刷新Access Token
// @Summary      刷新Token
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshRequest true "Refresh Token"
// @Success      200 {object} appuser.RefreshResponse
// @Failure      403 {object} response.Response "Refresh Token无效或已过期"
// @Router       /api/user/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.refreshUseCase.Execute(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
