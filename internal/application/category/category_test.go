package category

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/application/auth"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

var admin = &auth.Identity{UserID: "5d6c2a7e-8f0b-4f63-9a1e-2b3c4d5e6f70", Email: "admin@example.com"}

type fixture struct {
	repo   category.Repository
	cache  *redis.CategoryCache
	lookup *Lookup
	create *CreateCategoryUseCase
	get    *GetCategoryUseCase
	list   *ListCategoriesUseCase
	update *UpdateCategoryUseCase
	delete *DeleteCategoryUseCase
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

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := mysql.NewCategoryRepository(db, mysql.NewTxManager(db))
	cache := redis.NewCategoryCache(client, time.Minute, circuitbreaker.NewCircuitBreaker("category-cache", circuitbreaker.DefaultConfig()))
	lookup := NewLookup(repo, cache)

	return &fixture{
		repo:   repo,
		cache:  cache,
		lookup: lookup,
		create: NewCreateCategoryUseCase(repo, nil),
		get:    NewGetCategoryUseCase(repo),
		list:   NewListCategoriesUseCase(repo, cfg),
		update: NewUpdateCategoryUseCase(repo, lookup, nil),
		delete: NewDeleteCategoryUseCase(repo, lookup, nil),
	}
}

func (f *fixture) mustCreate(t *testing.T, title string) *category.Category {
	t.Helper()
	c, err := f.create.Execute(context.Background(), CreateRequest{Identity: admin, Title: title})
	require.NoError(t, err)
	return c
}

func strPtr(s string) *string { return &s }

// TestCategoryLifecycle 创建 → 列表 → 更新 → 查询 → 删除 → 查询为null
func TestCategoryLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.mustCreate(t, "Fictional Literature")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Fictional Literature", created.Title)

	records, err := f.list.Execute(ctx, url.Values{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, created.ID, records[0]["id"])

	updated, err := f.update.Execute(ctx, UpdateRequest{Identity: admin, ID: created.ID, Title: strPtr("Updated Fictional Literature")})
	require.NoError(t, err)
	assert.Equal(t, "Updated Fictional Literature", updated.Title)

	got, err := f.get.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Fictional Literature", got.Title)

	deleted, err := f.delete.Execute(ctx, DeleteRequest{Identity: admin, ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	got, err = f.get.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetVersusDeleteOnMissingID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	missing := uuid.NewString()

	got, err := f.get.Execute(ctx, missing)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = f.delete.Execute(ctx, DeleteRequest{Identity: admin, ID: missing})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)

	_, err = f.update.Execute(ctx, UpdateRequest{Identity: admin, ID: missing, Title: strPtr("x")})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestMutationsRequireIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	existing := f.mustCreate(t, "Poetry")

	_, err := f.create.Execute(ctx, CreateRequest{Title: "Drama"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = f.update.Execute(ctx, UpdateRequest{ID: existing.ID, Title: strPtr("Verse")})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = f.delete.Execute(ctx, DeleteRequest{ID: existing.ID})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// 存储未被修改
	total, err := f.repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	got, err := f.get.Execute(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Poetry", got.Title)
}

func TestInvalidID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.get.Execute(ctx, "not-an-id")
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	_, err = f.update.Execute(ctx, UpdateRequest{Identity: admin, ID: "123", Title: strPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	_, err = f.delete.Execute(ctx, DeleteRequest{Identity: admin, ID: "123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.create.Execute(context.Background(), CreateRequest{Identity: admin, Title: "  "})
	assert.ErrorIs(t, err, category.ErrTitleRequired)
	assert.Equal(t, 400, apperrors.HTTPStatus(apperrors.GetAppError(err).Code))
}

func TestListPaginationAndProjection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, title := range []string{"Art", "Biography", "Children"} {
		f.mustCreate(t, title)
	}

	records, err := f.list.Execute(ctx, url.Values{"sort": {"title"}, "limit": {"2"}, "page": {"2"}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Children", records[0]["title"])

	_, err = f.list.Execute(ctx, url.Values{"limit": {"2"}, "page": {"3"}})
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)

	records, err = f.list.Execute(ctx, url.Values{"fields": {"title"}, "title": {"Art"}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.ElementsMatch(t, []string{"id", "title"}, keys(records[0]))

	records, err = f.list.Execute(ctx, url.Values{})
	require.NoError(t, err)
	assert.NotContains(t, records[0], "version", "默认投影去掉version")

	_, err = f.list.Execute(ctx, url.Values{"color": {"red"}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLookupCacheAside(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.mustCreate(t, "History")

	found, err := f.lookup.Lookup(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "History", found.Title)

	cached, err := f.cache.Get(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, cached, "查库后应回填缓存")

	_, err = f.update.Execute(ctx, UpdateRequest{Identity: admin, ID: c.ID, Title: strPtr("World History")})
	require.NoError(t, err)
	cached, err = f.cache.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, cached, "更新后缓存应失效")

	_, err = f.delete.Execute(ctx, DeleteRequest{Identity: admin, ID: c.ID})
	require.NoError(t, err)
	found, err = f.lookup.Lookup(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, found, "已删除的分类解析为nil")
}

// racingRepo 在写入期间模拟并发读，把旧值回填进缓存
type racingRepo struct {
	category.Repository
	t      *testing.T
	cache  *redis.CategoryCache
	lookup *Lookup
}

func (r *racingRepo) refillDuringWrite(ctx context.Context, id string) {
	cached, err := r.cache.Get(ctx, id)
	require.NoError(r.t, err)
	assert.Nil(r.t, cached, "写入前应已删除缓存")

	old, err := r.lookup.Lookup(ctx, id)
	require.NoError(r.t, err)
	require.NotNil(r.t, old)
}

func (r *racingRepo) UpdateByID(ctx context.Context, id string, patch category.Patch) (*category.Category, error) {
	r.refillDuringWrite(ctx, id)
	return r.Repository.UpdateByID(ctx, id, patch)
}

func (r *racingRepo) DeleteByID(ctx context.Context, id string) (*category.Category, error) {
	r.refillDuringWrite(ctx, id)
	return r.Repository.DeleteByID(ctx, id)
}

func TestInvalidateAroundWrite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.mustCreate(t, "Poetry")

	_, err := f.lookup.Lookup(ctx, c.ID)
	require.NoError(t, err)

	repo := &racingRepo{Repository: f.repo, t: t, cache: f.cache, lookup: f.lookup}
	update := NewUpdateCategoryUseCase(repo, f.lookup, nil)
	_, err = update.Execute(ctx, UpdateRequest{Identity: admin, ID: c.ID, Title: strPtr("Modern Poetry")})
	require.NoError(t, err)

	cached, err := f.cache.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, cached, "写入期间回填的旧值应被清掉")
	found, err := f.lookup.Lookup(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Modern Poetry", found.Title)

	del := NewDeleteCategoryUseCase(repo, f.lookup, nil)
	_, err = del.Execute(ctx, DeleteRequest{Identity: admin, ID: c.ID})
	require.NoError(t, err)
	found, err = f.lookup.Lookup(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, found, "删除后不应再从缓存读到旧分类")
}

func TestLookupMany(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.mustCreate(t, "Drama")
	b := f.mustCreate(t, "Travel")
	missing := uuid.NewString()

	// a先进缓存，b只能查库
	_, err := f.lookup.Lookup(ctx, a.ID)
	require.NoError(t, err)

	found, err := f.lookup.LookupMany(ctx, []string{a.ID, b.ID, missing, a.ID})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Drama", found[a.ID].Title)
	assert.Equal(t, "Travel", found[b.ID].Title)
	assert.NotContains(t, found, missing)

	cached, err := f.cache.Get(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, cached, "批量查库后应回填缓存")

	found, err = NewLookup(f.repo, nil).LookupMany(ctx, []string{b.ID})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestLookupWithoutCache(t *testing.T) {
	f := newFixture(t)
	c := f.mustCreate(t, "Science")

	lookup := NewLookup(f.repo, nil)
	found, err := lookup.Lookup(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)
	assert.NotPanics(t, func() { lookup.Invalidate(context.Background(), c.ID) })
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
