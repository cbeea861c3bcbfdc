package dto

import (
	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// BookRequest HTTP创建/更新图书请求
// 所有字段可选：创建时由领域规则校验必填项（title、author），
// 更新时未提交的字段保持不变
type BookRequest struct {
	Title       *string         `json:"title" binding:"omitempty,max=200" example:"The Great Gatsby"`
	Author      *string         `json:"author" binding:"omitempty,max=100" example:"F. Scott Fitzgerald"`
	Description *string         `json:"description" binding:"omitempty,max=5000" example:"A story of the fabulously wealthy Jay Gatsby."`
	Price       *float64        `json:"price" example:"10.99"`
	Pages       *int            `json:"pages" example:"180"`
	Category    *string         `json:"category" example:"6f1c1b7e-3c52-4d8e-9a54-0c1d2e3f4a5b"` // 分类ID，空字符串表示清除
	Tags        *string         `json:"tags" example:"Classic"`
	Ratings     []RatingRequest `json:"ratings" binding:"omitempty,dive"`
	TotalRating *string         `json:"totalrating" example:"4.5"`
}

// RatingRequest 评分
type RatingRequest struct {
	Star     int    `json:"star" example:"5"`
	Comment  string `json:"comment" binding:"max=1000" example:"Excellent book!"`
	PostedBy string `json:"postedby" example:"0e1f2a3b-4c5d-4e6f-8a9b-0c1d2e3f4a5b"` // 用户ID
}

// ToFields HTTP请求 → 领域字段
// ratings未提交时为nil（不修改），提交空数组表示清空
func (r *BookRequest) ToFields() book.Fields {
	f := book.Fields{
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
		Price:       r.Price,
		Pages:       r.Pages,
		Category:    r.Category,
		Tags:        r.Tags,
		TotalRating: r.TotalRating,
	}
	if r.Ratings != nil {
		f.Ratings = make([]book.Rating, 0, len(r.Ratings))
		for _, rating := range r.Ratings {
			f.Ratings = append(f.Ratings, book.Rating{
				Star:     rating.Star,
				Comment:  rating.Comment,
				PostedBy: rating.PostedBy,
			})
		}
	}
	return f
}
