// Package query 列表查询计划
//
// 把列表请求的查询参数翻译为结构化的查询计划（过滤、排序、字段投影、分页），
// 本包只负责构建计划，不执行查询。字段名是否合法由存储层的列白名单判断。
package query

import (
	"math"
	"strings"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// Operator 比较运算符
type Operator int

const (
	Eq Operator = iota
	Gt
	Gte
	Lt
	Lte
)

var operatorNames = map[Operator]string{
	Eq:  "eq",
	Gt:  "gt",
	Gte: "gte",
	Lt:  "lt",
	Lte: "lte",
}

func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return "unknown"
}

// SQL 返回对应的SQL比较符
func (o Operator) SQL() string {
	switch o {
	case Gt:
		return ">"
	case Gte:
		return ">="
	case Lt:
		return "<"
	case Lte:
		return "<="
	default:
		return "="
	}
}

// ParseOperator 解析查询参数中的运算符后缀（gte/gt/lte/lt）
// 等值比较没有后缀，不在此解析
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "gt":
		return Gt, true
	case "gte":
		return Gte, true
	case "lt":
		return Lt, true
	case "lte":
		return Lte, true
	}
	return Eq, false
}

// Filter 单个过滤条件 (field, operator, value)
// Field是对外的JSON字段名，Value保持原始字符串，由存储层按列类型转换
type Filter struct {
	Field    string
	Operator Operator
	Value    string
}

// SortField 排序字段
type SortField struct {
	Field      string
	Descending bool
}

// Pagination 分页计划
// Limit为0表示不分页，返回全部匹配记录
type Pagination struct {
	Page          int
	Limit         int
	PageRequested bool // 请求中显式带了page参数（决定是否做越界检查）
}

// Enabled 是否需要skip/limit
func (p Pagination) Enabled() bool {
	return p.Limit > 0
}

// Skip (page-1)*limit，溢出int时返回math.MaxInt
func (p Pagination) Skip() int {
	if !p.Enabled() || p.Page <= 1 {
		return 0
	}
	if p.overflows() {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// overflows (page-1)*limit 超出int范围
func (p Pagination) overflows() bool {
	return p.Limit > 0 && p.Page > 1 && p.Page-1 > math.MaxInt/p.Limit
}

// CheckRange 越界检查
// 只有显式请求了page时才检查：skip >= 匹配总数即视为页码不存在，
// 用来区分"页码超出数据范围"和"结果集为空"
func (p Pagination) CheckRange(total int64) error {
	if !p.PageRequested {
		return nil
	}
	if p.overflows() || int64(p.Skip()) >= total {
		return apperrors.ErrOutOfRange
	}
	return nil
}

// Plan 完整查询计划
type Plan struct {
	Filters    []Filter
	Sort       []SortField
	Projection Projection
	Pagination Pagination
}

// splitList 按逗号拆分并去掉空项
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
