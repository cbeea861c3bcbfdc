package book

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func strPtr(s string) *string { return &s }

func validFields() Fields {
	price := 10.99
	pages := 180
	return Fields{
		Title:  strPtr("The Great Gatsby"),
		Author: strPtr("F. Scott Fitzgerald"),
		Price:  &price,
		Pages:  &pages,
	}
}

func TestNewBook(t *testing.T) {
	b, err := NewBook(validFields())
	require.NoError(t, err)

	assert.Equal(t, "the-great-gatsby", b.Slug)
	assert.Equal(t, 10.99, b.Price)
	assert.NotNil(t, b.Ratings, "评分默认为空数组")
	assert.Nil(t, b.CategoryID)
}

func TestNewBook_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *Fields)
		want   error
	}{
		{"空书名", func(f *Fields) { f.Title = strPtr("  ") }, ErrTitleRequired},
		{"缺作者", func(f *Fields) { f.Author = nil }, ErrAuthorRequired},
		{"负价格", func(f *Fields) { p := -1.0; f.Price = &p }, ErrInvalidPrice},
		{"负页数", func(f *Fields) { p := -3; f.Pages = &p }, ErrInvalidPages},
		{"星级越界", func(f *Fields) { f.Ratings = []Rating{{Star: 6}} }, ErrInvalidStar},
		{"评分用户ID非法", func(f *Fields) { f.Ratings = []Rating{{Star: 3, PostedBy: "bob"}} }, ErrInvalidRatingUser},
		{"分类ID非法", func(f *Fields) { f.Category = strPtr("not-an-id") }, ErrInvalidCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)
			_, err := NewBook(f)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

// slug总是由当前标题重新计算，与旧值无关
func TestApply_SlugRecomputed(t *testing.T) {
	b, err := NewBook(validFields())
	require.NoError(t, err)

	b.Slug = "stale"
	require.NoError(t, b.Apply(Fields{Title: strPtr("Tender Is the Night")}))
	assert.Equal(t, "tender-is-the-night", b.Slug)
	assert.Equal(t, Slugify("Tender Is the Night"), b.Slug)
	assert.Equal(t, 1, b.Version)

	// 不带标题的更新不动slug
	require.NoError(t, b.Apply(Fields{Tags: strPtr("classic")}))
	assert.Equal(t, "tender-is-the-night", b.Slug)
}

func TestApply_Category(t *testing.T) {
	b, err := NewBook(validFields())
	require.NoError(t, err)

	id := uuid.NewString()
	require.NoError(t, b.Apply(Fields{Category: &id}))
	assert.Equal(t, id, b.CategoryRef())

	require.NoError(t, b.Apply(Fields{Category: strPtr("")}))
	assert.Equal(t, "", b.CategoryRef())
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "1984", Slugify("1984"))
	assert.Equal(t, "to-kill-a-mockingbird", Slugify("To Kill a Mockingbird"))
	assert.Equal(t, Slugify("Pride and Prejudice"), Slugify("Pride and Prejudice"))
}
