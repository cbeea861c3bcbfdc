package book

import (
	"context"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/application/auth"
	appcategory "github.com/xiebiao/bookcatalog/internal/application/category"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

var admin = &auth.Identity{UserID: "5d6c2a7e-8f0b-4f63-9a1e-2b3c4d5e6f70"}

type fixture struct {
	categories category.Repository
	create     *CreateBookUseCase
	get        *GetBookUseCase
	list       *ListBooksUseCase
	update     *UpdateBookUseCase
	delete     *DeleteBookUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:"},
		Catalog:  config.CatalogConfig{DefaultPageSize: 20},
	}
	db, err := mysql.NewDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	tx := mysql.NewTxManager(db)
	categories := mysql.NewCategoryRepository(db, tx)
	books := mysql.NewBookRepository(db, tx)
	resolver := book.NewResolver(appcategory.NewLookup(categories, nil))

	return &fixture{
		categories: categories,
		create:     NewCreateBookUseCase(books, resolver, nil),
		get:        NewGetBookUseCase(books, resolver),
		list:       NewListBooksUseCase(books, resolver, cfg),
		update:     NewUpdateBookUseCase(books, resolver, nil),
		delete:     NewDeleteBookUseCase(books, resolver, nil),
	}
}

func ptr[T any](v T) *T { return &v }

func (f *fixture) mustCreate(t *testing.T, title string, price float64, categoryID string) *book.View {
	t.Helper()
	fields := book.Fields{Title: ptr(title), Author: ptr("Anon"), Price: ptr(price)}
	if categoryID != "" {
		fields.Category = ptr(categoryID)
	}
	v, err := f.create.Execute(context.Background(), CreateBookRequest{Identity: admin, Fields: fields})
	require.NoError(t, err)
	return v
}

func (f *fixture) mustCategory(t *testing.T, title string) *category.Category {
	t.Helper()
	c, err := category.NewCategory(title)
	require.NoError(t, err)
	require.NoError(t, f.categories.Create(context.Background(), c))
	return c
}

func TestCreateBook_ExpandsCategory(t *testing.T) {
	f := newFixture(t)
	fiction := f.mustCategory(t, "Fiction")

	v := f.mustCreate(t, "The Great Gatsby", 10.99, fiction.ID)
	assert.Equal(t, "the-great-gatsby", v.Slug)
	require.NotNil(t, v.Category)
	assert.Equal(t, "Fiction", v.Category.Title)

	// 写入时不检查分类是否存在
	dangling := f.mustCreate(t, "Orphan", 1, uuid.NewString())
	assert.Nil(t, dangling.Category)
}

func TestUpdateBook_RecomputesSlug(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.mustCreate(t, "Pride and Prejudice", 7.99, "")

	updated, err := f.update.Execute(ctx, UpdateBookRequest{Identity: admin, ID: v.ID, Fields: book.Fields{Title: ptr("Sense and Sensibility")}})
	require.NoError(t, err)
	assert.Equal(t, "sense-and-sensibility", updated.Slug)
	assert.Equal(t, 7.99, updated.Price, "未提交的字段保持不变")

	_, err = f.update.Execute(ctx, UpdateBookRequest{Identity: admin, ID: v.ID, Fields: book.Fields{Title: ptr("")}})
	assert.ErrorIs(t, err, book.ErrTitleRequired, "合并后的完整记录需要校验")
}

func TestDanglingCategoryResolvesToNull(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	poetry := f.mustCategory(t, "Poetry")
	v := f.mustCreate(t, "Leaves of Grass", 12, poetry.ID)
	require.NotNil(t, v.Category)

	_, err := f.categories.DeleteByID(ctx, poetry.ID)
	require.NoError(t, err)

	got, err := f.get.Execute(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Category)

	records, err := f.list.Execute(ctx, url.Values{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Contains(t, records[0], "category")
	assert.Nil(t, records[0]["category"])
}

func TestGetVersusDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	missing := uuid.NewString()

	got, err := f.get.Execute(ctx, missing)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = f.delete.Execute(ctx, DeleteBookRequest{Identity: admin, ID: missing})
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	v := f.mustCreate(t, "1984", 9.99, "")
	deleted, err := f.delete.Execute(ctx, DeleteBookRequest{Identity: admin, ID: v.ID})
	require.NoError(t, err)
	assert.Equal(t, "1984", deleted.Title)

	got, err = f.get.Execute(ctx, v.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBookMutationsRequireIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.mustCreate(t, "Emma", 5, "")

	_, err := f.create.Execute(ctx, CreateBookRequest{Fields: book.Fields{Title: ptr("x"), Author: ptr("y")}})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	_, err = f.update.Execute(ctx, UpdateBookRequest{ID: v.ID, Fields: book.Fields{Title: ptr("z")}})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	_, err = f.delete.Execute(ctx, DeleteBookRequest{ID: v.ID})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// 鉴权先于ID校验
	_, err = f.delete.Execute(ctx, DeleteBookRequest{ID: "bad"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	records, err := f.list.Execute(ctx, url.Values{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Emma", records[0]["title"])
}

func TestListBooks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for title, price := range map[string]float64{"A": 10.99, "B": 8.99, "C": 9.99, "D": 7.99, "E": 6.99} {
		f.mustCreate(t, title, price, "")
	}

	t.Run("价格过滤", func(t *testing.T) {
		records, err := f.list.Execute(ctx, url.Values{"price[gte]": {"9"}, "sort": {"price"}})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 9.99, records[0]["price"])
		assert.Equal(t, 10.99, records[1]["price"])
	})

	t.Run("分页边界", func(t *testing.T) {
		records, err := f.list.Execute(ctx, url.Values{"limit": {"2"}, "page": {"3"}})
		require.NoError(t, err)
		assert.Len(t, records, 1)

		_, err = f.list.Execute(ctx, url.Values{"limit": {"2"}, "page": {"4"}})
		assert.ErrorIs(t, err, apperrors.ErrOutOfRange)

		// 偏移量溢出int不能回绕到第一页
		records, err = f.list.Execute(ctx, url.Values{"limit": {"4611686018427387904"}, "page": {"3"}})
		assert.ErrorIs(t, err, apperrors.ErrOutOfRange)
		assert.Nil(t, records)
	})

	t.Run("过滤后的集合决定越界", func(t *testing.T) {
		_, err := f.list.Execute(ctx, url.Values{"price[lt]": {"7"}, "page": {"2"}, "limit": {"1"}})
		assert.ErrorIs(t, err, apperrors.ErrOutOfRange)
	})

	t.Run("投影", func(t *testing.T) {
		records, err := f.list.Execute(ctx, url.Values{"fields": {"title,price"}, "limit": {"1"}})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Len(t, records[0], 3)
		assert.Contains(t, records[0], "id")

		records, err = f.list.Execute(ctx, url.Values{"fields": {"-price"}, "limit": {"1"}})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.NotContains(t, records[0], "price")
		assert.NotContains(t, records[0], "version")
		assert.Contains(t, records[0], "title")
	})

	t.Run("非法参数", func(t *testing.T) {
		_, err := f.list.Execute(ctx, url.Values{"page": {"0"}})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		_, err = f.list.Execute(ctx, url.Values{"price[gte]": {"cheap"}})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		_, err = f.list.Execute(ctx, url.Values{"fields": {"title,-price"}})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
