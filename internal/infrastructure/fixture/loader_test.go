package fixture

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/internal/domain/query"
	"github.com/xiebiao/bookcatalog/internal/domain/user"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
)

type repos struct {
	users      user.Repository
	categories category.Repository
	books      book.Repository
}

func newLoader(t *testing.T) (*Loader, repos) {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:"},
		Fixture:  config.FixtureConfig{Enabled: true, Password: "password123"},
	}
	db, err := mysql.NewDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	tx := mysql.NewTxManager(db)
	r := repos{
		users:      mysql.NewUserRepository(db),
		categories: mysql.NewCategoryRepository(db, tx),
		books:      mysql.NewBookRepository(db, tx),
	}
	return NewLoader(r.users, r.categories, r.books, cfg), r
}

func TestSeed(t *testing.T) {
	loader, r := newLoader(t)
	ctx := context.Background()

	lookup, err := loader.Seed(ctx)
	require.NoError(t, err)
	assert.Len(t, lookup.UsersByEmail, 3)
	assert.Len(t, lookup.CategoriesByTitle, 11)
	assert.NotEmpty(t, lookup.UsersByEmail["john.doe@example.com"])
	assert.NotEmpty(t, lookup.CategoriesByTitle["Classic Literature"])

	total, err := r.books.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	// 种子用户可以用配置的密码登录
	service := user.NewService(r.users)
	u, err := service.Login(ctx, "jane.smith@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, lookup.UsersByEmail["jane.smith@example.com"], u.ID)
}

func TestSeed_BooksReferenceSeededIDs(t *testing.T) {
	loader, r := newLoader(t)
	ctx := context.Background()
	lookup, err := loader.Seed(ctx)
	require.NoError(t, err)

	found, err := r.books.Find(ctx, titleEquals("1984"))
	require.NoError(t, err)
	require.Len(t, found, 1)

	b := found[0]
	assert.Equal(t, lookup.CategoriesByTitle["Dystopian"], b.CategoryRef())
	assert.Equal(t, "1984", b.Slug)
	require.Len(t, b.Ratings, 2)
	assert.Equal(t, lookup.UsersByEmail["jane.smith@example.com"], b.Ratings[0].PostedBy)
	assert.Equal(t, "4.5", b.TotalRating)
}

// TestSeed_PriceFilter price[gte]=9 只匹配价格不低于9的两本
func TestSeed_PriceFilter(t *testing.T) {
	loader, r := newLoader(t)
	ctx := context.Background()
	_, err := loader.Seed(ctx)
	require.NoError(t, err)

	plan, err := query.Translate(url.Values{"price[gte]": {"9"}, "sort": {"price"}}, 20)
	require.NoError(t, err)
	found, err := r.books.Find(ctx, plan)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "1984", found[0].Title)
	assert.Equal(t, "The Great Gatsby", found[1].Title)
}

func TestSeed_Idempotent(t *testing.T) {
	loader, r := newLoader(t)
	ctx := context.Background()

	first, err := loader.Seed(ctx)
	require.NoError(t, err)
	second, err := loader.Seed(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	total, err := r.books.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	categories, err := r.categories.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(11), categories)
}
