// Package fixture 启动时写入初始数据（分类、用户、图书）
//
// Seed返回邮箱→用户ID、分类名称→分类ID的映射，由调用方显式传给需要的组件
// （如API文档示例），不保存为全局状态。
// 已存在的记录按邮箱/名称/书名复用，重复启动不会产生重复数据。
package fixture

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/internal/domain/query"
	"github.com/xiebiao/bookcatalog/internal/domain/user"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// seedBcryptCost 种子用户的bcrypt cost
const seedBcryptCost = 10

// Lookup 种子数据的ID映射
type Lookup struct {
	UsersByEmail      map[string]string
	CategoriesByTitle map[string]string
}

// Loader 初始数据加载器
type Loader struct {
	users       user.Repository
	userService user.Service
	categories  category.Repository
	books       book.Repository
	password    string
}

// NewLoader 创建加载器
func NewLoader(users user.Repository, categories category.Repository, books book.Repository, cfg *config.Config) *Loader {
	return &Loader{
		users:       users,
		userService: user.NewService(users, user.WithBcryptCost(seedBcryptCost)),
		categories:  categories,
		books:       books,
		password:    cfg.Fixture.Password,
	}
}

// Seed 写入用户、分类、图书，返回ID映射
func (l *Loader) Seed(ctx context.Context) (*Lookup, error) {
	lookup := &Lookup{
		UsersByEmail:      make(map[string]string, len(seedUsers)),
		CategoriesByTitle: make(map[string]string, len(categoryTitles)),
	}

	for _, su := range seedUsers {
		id, err := l.ensureUser(ctx, su)
		if err != nil {
			return nil, err
		}
		lookup.UsersByEmail[su.email] = id
	}

	for _, title := range categoryTitles {
		id, err := l.ensureCategory(ctx, title)
		if err != nil {
			return nil, err
		}
		lookup.CategoriesByTitle[title] = id
	}

	created := 0
	for _, sb := range seedBooks {
		ok, err := l.ensureBook(ctx, sb, lookup)
		if err != nil {
			return nil, err
		}
		if ok {
			created++
		}
	}

	logger.L().Info("fixture seeded",
		zap.Int("users", len(lookup.UsersByEmail)),
		zap.Int("categories", len(lookup.CategoriesByTitle)),
		zap.Int("books_created", created),
	)
	return lookup, nil
}

func (l *Loader) ensureUser(ctx context.Context, su seedUser) (string, error) {
	existing, err := l.users.FindByEmail(ctx, su.email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return "", err
	}

	u, err := l.userService.Register(ctx, su.firstname, su.lastname, su.email, l.password)
	if err != nil {
		return "", fmt.Errorf("写入种子用户%s失败: %w", su.email, err)
	}
	return u.ID, nil
}

func (l *Loader) ensureCategory(ctx context.Context, title string) (string, error) {
	found, err := l.categories.Find(ctx, titleEquals(title))
	if err != nil {
		return "", err
	}
	if len(found) > 0 {
		return found[0].ID, nil
	}

	c, err := category.NewCategory(title)
	if err != nil {
		return "", err
	}
	if err := l.categories.Create(ctx, c); err != nil {
		return "", fmt.Errorf("写入种子分类%s失败: %w", title, err)
	}
	return c.ID, nil
}

// ensureBook 书名已存在时跳过，返回是否新建
func (l *Loader) ensureBook(ctx context.Context, sb seedBook, lookup *Lookup) (bool, error) {
	existing, err := l.books.Count(ctx, titleEquals(sb.title).Filters)
	if err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	ratings := make([]book.Rating, 0, len(sb.ratings))
	for _, r := range sb.ratings {
		ratings = append(ratings, book.Rating{
			Star:     r.star,
			Comment:  r.comment,
			PostedBy: lookup.UsersByEmail[r.postedBy],
		})
	}

	categoryID := lookup.CategoriesByTitle[sb.category]
	b, err := book.NewBook(book.Fields{
		Title:       &sb.title,
		Author:      &sb.author,
		Description: &sb.description,
		Price:       &sb.price,
		Pages:       &sb.pages,
		Category:    &categoryID,
		Tags:        &sb.tags,
		Ratings:     ratings,
		TotalRating: &sb.totalRating,
	})
	if err != nil {
		return false, err
	}
	if err := l.books.Create(ctx, b); err != nil {
		return false, fmt.Errorf("写入种子图书%s失败: %w", sb.title, err)
	}
	return true, nil
}

func titleEquals(title string) *query.Plan {
	return &query.Plan{
		Filters: []query.Filter{{Field: "title", Operator: query.Eq, Value: title}},
	}
}
