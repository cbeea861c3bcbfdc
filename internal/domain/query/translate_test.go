package query

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func mustParse(t *testing.T, raw string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return v
}

func TestTranslate_Defaults(t *testing.T) {
	plan, err := Translate(url.Values{}, 20)
	require.NoError(t, err)

	assert.Empty(t, plan.Filters)
	assert.Equal(t, []SortField{{Field: "createdAt", Descending: true}}, plan.Sort)
	assert.True(t, plan.Projection.IsDefault())
	assert.False(t, plan.Pagination.Enabled(), "未传page/limit时不分页")
	assert.NoError(t, plan.Pagination.CheckRange(0))
}

func TestTranslate_Filters(t *testing.T) {
	plan, err := Translate(mustParse(t, "price[gte]=9&price[lt]=20&author=Harper+Lee&page=1"), 20)
	require.NoError(t, err)

	// 按参数名排序：author, price[gte], price[lt]
	assert.Equal(t, []Filter{
		{Field: "author", Operator: Eq, Value: "Harper Lee"},
		{Field: "price", Operator: Gte, Value: "9"},
		{Field: "price", Operator: Lt, Value: "20"},
	}, plan.Filters)
}

func TestTranslate_UnknownFieldsPassThrough(t *testing.T) {
	plan, err := Translate(mustParse(t, "nosuchfield=x&price[between]=1"), 20)
	require.NoError(t, err)

	// 未识别的字段和后缀原样透传，交给存储层校验
	assert.Equal(t, []Filter{
		{Field: "nosuchfield", Operator: Eq, Value: "x"},
		{Field: "price[between]", Operator: Eq, Value: "1"},
	}, plan.Filters)
}

func TestTranslate_RepeatedKeyTakesFirst(t *testing.T) {
	plan, err := Translate(mustParse(t, "title=a&title=b"), 20)
	require.NoError(t, err)
	require.Len(t, plan.Filters, 1)
	assert.Equal(t, "a", plan.Filters[0].Value)
}

func TestTranslate_Sort(t *testing.T) {
	plan, err := Translate(mustParse(t, "sort=-price,title,,-"), 20)
	require.NoError(t, err)
	assert.Equal(t, []SortField{
		{Field: "price", Descending: true},
		{Field: "title"},
	}, plan.Sort)
}

func TestTranslate_Fields(t *testing.T) {
	plan, err := Translate(mustParse(t, "fields=title, price"), 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "price"}, plan.Projection.Fields)
	assert.Empty(t, plan.Projection.Exclude)
}

func TestTranslate_ExcludeFields(t *testing.T) {
	plan, err := Translate(mustParse(t, "fields=-price,-author"), 20)
	require.NoError(t, err)
	assert.Empty(t, plan.Projection.Fields)
	assert.Equal(t, []string{"price", "author"}, plan.Projection.Exclude)
}

func TestTranslate_InvalidFields(t *testing.T) {
	for _, raw := range []string{"fields=title,-price", "fields=-", "fields=-id"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Translate(mustParse(t, raw), 20)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestTranslate_Pagination(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		page      int
		limit     int
		skip      int
		requested bool
	}{
		{"page和limit", "page=3&limit=2", 3, 2, 4, true},
		{"只传limit", "limit=5", 1, 5, 0, false},
		{"只传page", "page=2", 2, 20, 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Translate(mustParse(t, tt.raw), 20)
			require.NoError(t, err)
			assert.Equal(t, tt.page, plan.Pagination.Page)
			assert.Equal(t, tt.limit, plan.Pagination.Limit)
			assert.Equal(t, tt.skip, plan.Pagination.Skip())
			assert.Equal(t, tt.requested, plan.Pagination.PageRequested)
		})
	}
}

func TestTranslate_InvalidPagination(t *testing.T) {
	for _, raw := range []string{"page=0", "page=-1", "page=abc", "limit=0", "limit=1.5"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Translate(mustParse(t, raw), 20)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

// 总数N、每页L时，第ceil(N/L)+1页越界；skip<N的页都合法
func TestPagination_CheckRange(t *testing.T) {
	const total = 5
	const limit = 2

	for page := 1; page <= 3; page++ {
		p := Pagination{Page: page, Limit: limit, PageRequested: true}
		assert.NoError(t, p.CheckRange(total), "page %d", page)
	}

	p := Pagination{Page: 4, Limit: limit, PageRequested: true}
	assert.ErrorIs(t, p.CheckRange(total), apperrors.ErrOutOfRange)

	// 显式page=1但没有任何数据，同样视为越界
	p = Pagination{Page: 1, Limit: limit, PageRequested: true}
	assert.ErrorIs(t, p.CheckRange(0), apperrors.ErrOutOfRange)

	// 只传limit不检查越界
	p = Pagination{Page: 1, Limit: limit}
	assert.NoError(t, p.CheckRange(0))

	// (page-1)*limit 溢出时同样越界，不能回绕成合法偏移
	p = Pagination{Page: 3, Limit: 1 << 62, PageRequested: true}
	assert.Equal(t, math.MaxInt, p.Skip())
	assert.ErrorIs(t, p.CheckRange(total), apperrors.ErrOutOfRange)
}

func TestTranslate_HugeLimitOutOfRange(t *testing.T) {
	plan, err := Translate(mustParse(t, "page=3&limit=4611686018427387904"), 20)
	require.NoError(t, err)
	assert.ErrorIs(t, plan.Pagination.CheckRange(3), apperrors.ErrOutOfRange)
}

func TestOperator(t *testing.T) {
	op, ok := ParseOperator("gte")
	assert.True(t, ok)
	assert.Equal(t, Gte, op)
	assert.Equal(t, ">=", op.SQL())
	assert.Equal(t, "gte", op.String())

	_, ok = ParseOperator("between")
	assert.False(t, ok)
	assert.Equal(t, "=", Eq.SQL())
}
