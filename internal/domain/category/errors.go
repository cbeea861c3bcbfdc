package category

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrTitleRequired 标题必填
	ErrTitleRequired = apperrors.New(apperrors.ErrCodeValidation, "分类标题不能为空")

	// ErrTitleDuplicate 标题已存在
	ErrTitleDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "分类标题已存在")
)
