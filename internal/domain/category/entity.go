package category

import (
	"strings"
	"time"
)

// Category 图书分类
// 被零或多本Book引用；删除分类不会级联删除图书，图书读取时悬空引用解析为null
type Category struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCategory 创建分类(工厂方法)
func NewCategory(title string) (*Category, error) {
	c := &Category{Title: strings.TrimSpace(title)}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate 校验完整记录
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}

// Patch 部分更新，nil字段表示不修改
type Patch struct {
	Title *string
}

// Apply 合并补丁并校验合并后的记录
func (c *Category) Apply(p Patch) error {
	if p.Title != nil {
		c.Title = strings.TrimSpace(*p.Title)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	c.Version++
	c.UpdatedAt = time.Now()
	return nil
}
