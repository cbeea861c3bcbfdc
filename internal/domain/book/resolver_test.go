package book

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/domain/category"
)

type fakeLookup struct {
	categories map[string]*category.Category
	err        error
	calls      int
	batches    [][]string
}

func (f *fakeLookup) Lookup(_ context.Context, id string) (*category.Category, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.categories[id], nil
}

func (f *fakeLookup) LookupMany(_ context.Context, ids []string) (map[string]*category.Category, error) {
	f.batches = append(f.batches, ids)
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]*category.Category, len(ids))
	for _, id := range ids {
		if c, ok := f.categories[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func newBookIn(t *testing.T, categoryID string) *Book {
	t.Helper()
	f := validFields()
	if categoryID != "" {
		f.Category = &categoryID
	}
	b, err := NewBook(f)
	require.NoError(t, err)
	return b
}

func TestResolver_Expand(t *testing.T) {
	id := uuid.NewString()
	lookup := &fakeLookup{categories: map[string]*category.Category{
		id: {ID: id, Title: "Classic Literature"},
	}}
	r := NewResolver(lookup)

	v := r.Expand(context.Background(), newBookIn(t, id))
	require.NotNil(t, v.Category)
	assert.Equal(t, "Classic Literature", v.Category.Title)

	assert.Nil(t, r.Expand(context.Background(), nil))
}

func TestResolver_DanglingResolvesToNull(t *testing.T) {
	r := NewResolver(&fakeLookup{categories: map[string]*category.Category{}})

	v := r.Expand(context.Background(), newBookIn(t, uuid.NewString()))
	assert.Nil(t, v.Category)

	// 未设置分类
	v = r.Expand(context.Background(), newBookIn(t, ""))
	assert.Nil(t, v.Category)
}

func TestResolver_LookupErrorResolvesToNull(t *testing.T) {
	r := NewResolver(&fakeLookup{err: errors.New("connection refused")})

	v := r.Expand(context.Background(), newBookIn(t, uuid.NewString()))
	assert.Nil(t, v.Category)
}

func TestResolver_ExpandAllBatches(t *testing.T) {
	a, b := uuid.NewString(), uuid.NewString()
	dangling := uuid.NewString()
	lookup := &fakeLookup{categories: map[string]*category.Category{
		a: {ID: a, Title: "Dystopian"},
		b: {ID: b, Title: "Classic Literature"},
	}}
	r := NewResolver(lookup)

	books := []*Book{newBookIn(t, a), newBookIn(t, a), newBookIn(t, ""), newBookIn(t, b), newBookIn(t, dangling)}
	views := r.ExpandAll(context.Background(), books)
	require.Len(t, views, 5)
	assert.Equal(t, "Dystopian", views[0].Category.Title)
	assert.Equal(t, "Dystopian", views[1].Category.Title)
	assert.Nil(t, views[2].Category)
	assert.Equal(t, "Classic Literature", views[3].Category.Title)
	assert.Nil(t, views[4].Category)

	// 去重后一次批量查找，不逐条查找
	require.Len(t, lookup.batches, 1)
	assert.Equal(t, []string{a, b, dangling}, lookup.batches[0])
	assert.Zero(t, lookup.calls)
}

func TestResolver_ExpandAllLookupError(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("connection refused")}
	r := NewResolver(lookup)

	views := r.ExpandAll(context.Background(), []*Book{newBookIn(t, uuid.NewString()), newBookIn(t, "")})
	require.Len(t, views, 2)
	assert.Nil(t, views[0].Category)
	assert.Nil(t, views[1].Category)
}

func TestResolver_ExpandAllWithoutCategories(t *testing.T) {
	lookup := &fakeLookup{}
	views := NewResolver(lookup).ExpandAll(context.Background(), []*Book{newBookIn(t, "")})
	require.Len(t, views, 1)
	assert.Empty(t, lookup.batches)
}

func TestView_JSON(t *testing.T) {
	r := NewResolver(&fakeLookup{})
	data, err := json.Marshal(r.Expand(context.Background(), newBookIn(t, uuid.NewString())))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "category")
	assert.Nil(t, m["category"])
	assert.Equal(t, "the-great-gatsby", m["slug"])
	assert.NotContains(t, m, "CategoryID")
}
