package book

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Category只保存分类ID引用，读取时由Resolver展开为分类记录
// 2. 写入时不检查分类是否存在，悬空引用在读取时解析为null
// 3. Slug由Title派生，任何带Title的写操作都会重新计算
// 4. Ratings是聚合内的值对象，不能单独寻址
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Pages       int       `json:"pages"`
	CategoryID  *string   `json:"-"`
	Tags        string    `json:"tags"`
	Ratings     []Rating  `json:"ratings"`
	TotalRating string    `json:"totalrating"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Rating 评分(值对象)
type Rating struct {
	Star     int    `json:"star"`
	Comment  string `json:"comment"`
	PostedBy string `json:"postedby"` // 用户ID
}

// Fields 创建/更新时客户端提交的字段
// 指针为nil表示未提交；Ratings为nil表示不修改
type Fields struct {
	Title       *string
	Author      *string
	Description *string
	Price       *float64
	Pages       *int
	Category    *string // 空字符串表示清除分类
	Tags        *string
	Ratings     []Rating
	TotalRating *string
}

// Slugify 由标题生成slug（小写，单词以-连接）
func Slugify(title string) string {
	return slug.Make(title)
}

// NewBook 创建新图书(工厂方法)
func NewBook(f Fields) (*Book, error) {
	b := &Book{Ratings: []Rating{}}
	if err := b.merge(f); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Apply 合并部分更新并校验合并后的完整记录
func (b *Book) Apply(f Fields) error {
	if err := b.merge(f); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	b.Version++
	b.UpdatedAt = time.Now()
	return nil
}

func (b *Book) merge(f Fields) error {
	if f.Title != nil {
		b.Title = strings.TrimSpace(*f.Title)
		b.Slug = Slugify(b.Title)
	}
	if f.Author != nil {
		b.Author = strings.TrimSpace(*f.Author)
	}
	if f.Description != nil {
		b.Description = *f.Description
	}
	if f.Price != nil {
		b.Price = *f.Price
	}
	if f.Pages != nil {
		b.Pages = *f.Pages
	}
	if f.Category != nil {
		id := strings.TrimSpace(*f.Category)
		if id == "" {
			b.CategoryID = nil
		} else {
			if _, err := uuid.Parse(id); err != nil {
				return ErrInvalidCategory
			}
			b.CategoryID = &id
		}
	}
	if f.Tags != nil {
		b.Tags = *f.Tags
	}
	if f.Ratings != nil {
		b.Ratings = append([]Rating(nil), f.Ratings...)
	}
	if f.TotalRating != nil {
		b.TotalRating = *f.TotalRating
	}
	return nil
}

// Validate 业务规则校验
func (b *Book) Validate() error {
	if b.Title == "" {
		return ErrTitleRequired
	}
	if b.Author == "" {
		return ErrAuthorRequired
	}
	if b.Price < 0 {
		return ErrInvalidPrice
	}
	if b.Pages < 0 {
		return ErrInvalidPages
	}
	for _, r := range b.Ratings {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate 星级1-5，postedby可选但必须是合法的用户ID
func (r Rating) Validate() error {
	if r.Star < 1 || r.Star > 5 {
		return ErrInvalidStar
	}
	if r.PostedBy != "" {
		if _, err := uuid.Parse(r.PostedBy); err != nil {
			return ErrInvalidRatingUser
		}
	}
	return nil
}

// CategoryRef 分类引用，未设置时返回空字符串
func (b *Book) CategoryRef() string {
	if b.CategoryID == nil {
		return ""
	}
	return *b.CategoryID
}
