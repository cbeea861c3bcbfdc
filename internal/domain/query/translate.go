package query

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 保留参数，不作为过滤字段
const (
	ParamPage   = "page"
	ParamLimit  = "limit"
	ParamSort   = "sort"
	ParamFields = "fields"
)

// DefaultSortField 未指定sort时按创建时间倒序
const DefaultSortField = "createdAt"

var reserved = map[string]struct{}{
	ParamPage:   {},
	ParamLimit:  {},
	ParamSort:   {},
	ParamFields: {},
}

// operatorKey 匹配 price[gte] 形式的参数名
var operatorKey = regexp.MustCompile(`^([^\[\]]+)\[(gte|gt|lte|lt)\]$`)

// Translate 把列表请求的查询参数翻译为查询计划
//
// 规则：
//   - 保留参数 page/limit/sort/fields 之外的参数都是过滤条件
//   - field=value 为等值比较，field[gte|gt|lte|lt]=value 为范围比较
//   - 同名参数出现多次时取第一个值
//   - 未识别的字段原样透传，由存储层校验
//   - fields=a,b 只保留列出的字段，fields=-a,-b 去掉列出的字段，两种写法不能混用
//   - page只传page时limit取defaultLimit；只传limit时page为1
func Translate(params url.Values, defaultLimit int) (*Plan, error) {
	plan := &Plan{}

	filters, err := translateFilters(params)
	if err != nil {
		return nil, err
	}
	plan.Filters = filters
	plan.Sort = translateSort(params.Get(ParamSort))
	projection, err := translateProjection(params.Get(ParamFields))
	if err != nil {
		return nil, err
	}
	plan.Projection = projection

	pagination, err := translatePagination(params, defaultLimit)
	if err != nil {
		return nil, err
	}
	plan.Pagination = pagination

	return plan, nil
}

func translateFilters(params url.Values) ([]Filter, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		if _, ok := reserved[k]; ok {
			continue
		}
		keys = append(keys, k)
	}
	// map遍历无序，排序后计划可复现
	sort.Strings(keys)

	filters := make([]Filter, 0, len(keys))
	for _, key := range keys {
		values := params[key]
		if len(values) == 0 {
			continue
		}

		if m := operatorKey.FindStringSubmatch(key); m != nil {
			op, _ := ParseOperator(m[2])
			filters = append(filters, Filter{Field: m[1], Operator: op, Value: values[0]})
			continue
		}

		if strings.TrimSpace(key) == "" {
			return nil, apperrors.Validationf("过滤字段名不能为空")
		}
		filters = append(filters, Filter{Field: key, Operator: Eq, Value: values[0]})
	}
	return filters, nil
}

func translateProjection(raw string) (Projection, error) {
	var p Projection
	for _, f := range splitList(raw) {
		name, exclude := strings.CutPrefix(f, "-")
		if name == "" {
			return Projection{}, apperrors.Validationf("投影字段名不能为空: %q", f)
		}
		if exclude {
			if name == IDField {
				return Projection{}, apperrors.Validationf("不能去掉%s字段", IDField)
			}
			p.Exclude = append(p.Exclude, name)
			continue
		}
		p.Fields = append(p.Fields, name)
	}
	if len(p.Fields) > 0 && len(p.Exclude) > 0 {
		return Projection{}, apperrors.Validationf("fields不能同时包含保留字段和排除字段: %q", raw)
	}
	return p, nil
}

func translateSort(raw string) []SortField {
	fields := splitList(raw)
	if len(fields) == 0 {
		return []SortField{{Field: DefaultSortField, Descending: true}}
	}

	out := make([]SortField, 0, len(fields))
	for _, f := range fields {
		desc := strings.HasPrefix(f, "-")
		name := strings.TrimPrefix(f, "-")
		if name == "" {
			continue
		}
		out = append(out, SortField{Field: name, Descending: desc})
	}
	if len(out) == 0 {
		return []SortField{{Field: DefaultSortField, Descending: true}}
	}
	return out
}

func translatePagination(params url.Values, defaultLimit int) (Pagination, error) {
	var p Pagination

	rawPage, hasPage := lookup(params, ParamPage)
	rawLimit, hasLimit := lookup(params, ParamLimit)
	if !hasPage && !hasLimit {
		return p, nil
	}

	if hasPage {
		page, err := positiveInt(ParamPage, rawPage)
		if err != nil {
			return p, err
		}
		p.Page = page
		p.PageRequested = true
	} else {
		p.Page = 1
	}

	if hasLimit {
		limit, err := positiveInt(ParamLimit, rawLimit)
		if err != nil {
			return p, err
		}
		p.Limit = limit
	} else {
		p.Limit = defaultLimit
	}

	return p, nil
}

func lookup(params url.Values, key string) (string, bool) {
	values, ok := params[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func positiveInt(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, apperrors.Validationf("%s必须是正整数: %q", name, raw)
	}
	return n, nil
}
