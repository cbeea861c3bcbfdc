package dto

// RegisterRequest HTTP层注册请求
// 格式由binding tag校验，密码强度和邮箱唯一性由领域服务校验
type RegisterRequest struct {
	Firstname string `json:"firstname" binding:"required,max=50" example:"John"`
	Lastname  string `json:"lastname" binding:"required,max=50" example:"Doe"`
	Email     string `json:"email" binding:"required,email" example:"john.doe@example.com"`
	Password  string `json:"password" binding:"required,min=8,max=20" example:"password123"`
}

// LoginRequest HTTP层登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john.doe@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// RefreshRequest 刷新Token请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
