package book

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrTitleRequired 书名必填
	ErrTitleRequired = apperrors.New(apperrors.ErrCodeValidation, "书名不能为空")

	// ErrAuthorRequired 作者必填
	ErrAuthorRequired = apperrors.New(apperrors.ErrCodeValidation, "作者不能为空")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeValidation, "价格不能为负数")

	// ErrInvalidPages 无效的页数
	ErrInvalidPages = apperrors.New(apperrors.ErrCodeValidation, "页数不能为负数")

	// ErrInvalidStar 评分星级超出范围
	ErrInvalidStar = apperrors.New(apperrors.ErrCodeValidation, "评分必须在1-5星之间")

	// ErrInvalidRatingUser 评分用户ID格式错误
	ErrInvalidRatingUser = apperrors.New(apperrors.ErrCodeValidation, "评分用户ID格式不正确")

	// ErrInvalidCategory 分类ID格式错误
	ErrInvalidCategory = apperrors.New(apperrors.ErrCodeValidation, "分类ID格式不正确")
)
