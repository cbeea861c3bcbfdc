package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// isDuplicateError 判断是否为唯一索引冲突错误
// - MySQL 1062: Duplicate entry 'xxx' for key 'yyy'
// - SQLite: UNIQUE constraint failed: table.column
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// storeError 把驱动层错误转换为存储不可用错误
// 已经是AppError的（领域错误、校验错误）原样返回
func storeError(err error, message string) error {
	if err == nil {
		return nil
	}
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.WithCode(apperrors.ErrCodeStoreUnavailable, err, message)
}
