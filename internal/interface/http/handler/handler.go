// Package handler HTTP处理器
// Handler只负责解析请求、调用应用层用例、输出响应，不包含业务逻辑
package handler

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// bindError 请求体绑定失败（JSON格式错误、字段类型不匹配、binding tag校验失败）
func bindError(err error) error {
	return apperrors.WithCode(apperrors.ErrCodeBindError, err, "参数格式错误: "+err.Error())
}
