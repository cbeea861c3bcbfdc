package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// Response 错误响应结构
// 设计说明：
// 1. 成功响应直接返回业务数据（记录、数组或null），不包信封
// 2. 失败响应统一为 {code, message}，Code是业务错误码
// 3. HTTP状态码由错误码映射（见 apperrors.HTTPStatus）
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Success 成功响应
// data为nil时输出JSON null（单条查询未命中时的约定）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	result, err := uc.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := apperrors.HTTPStatus(appErr.Code)

	// 内部错误只进日志，不返回给客户端
	if appErr.Err != nil || status >= http.StatusInternalServerError {
		logger.L().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("code", appErr.Code),
			zap.Error(err),
		)
	}

	c.JSON(status, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(apperrors.HTTPStatus(code), Response{
		Code:    code,
		Message: message,
	})
}

// AbortWithError 写入错误响应并终止后续Handler（中间件使用）
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
