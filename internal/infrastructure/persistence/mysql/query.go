package mysql

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookcatalog/internal/domain/query"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// columnKind 列类型，决定过滤值如何转换
type columnKind int

const (
	kindString columnKind = iota
	kindFloat
	kindInt
	kindTime
	kindID
)

// column 对外JSON字段名对应的数据库列
type column struct {
	name string
	kind columnKind
}

// columnSet 集合的列白名单（JSON字段名 → 列）
// 查询计划里的字段必须在白名单内，否则返回校验错误
type columnSet map[string]column

var categoryColumns = columnSet{
	"id":        {"id", kindID},
	"title":     {"title", kindString},
	"version":   {"version", kindInt},
	"createdAt": {"created_at", kindTime},
	"updatedAt": {"updated_at", kindTime},
}

var bookColumns = columnSet{
	"id":          {"id", kindID},
	"title":       {"title", kindString},
	"slug":        {"slug", kindString},
	"author":      {"author", kindString},
	"description": {"description", kindString},
	"price":       {"price", kindFloat},
	"pages":       {"pages", kindInt},
	"category":    {"category_id", kindID},
	"tags":        {"tags", kindString},
	"totalrating": {"total_rating", kindString},
	"version":     {"version", kindInt},
	"createdAt":   {"created_at", kindTime},
	"updatedAt":   {"updated_at", kindTime},
}

func (cs columnSet) lookup(field string) (column, error) {
	col, ok := cs[field]
	if !ok {
		return column{}, apperrors.Validationf("未知字段: %s", field)
	}
	return col, nil
}

// cast 按列类型转换过滤值，转换失败返回校验错误
func (c column) cast(field, raw string) (interface{}, error) {
	raw = strings.TrimSpace(raw)
	switch c.kind {
	case kindFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, apperrors.Validationf("字段%s需要数字: %q", field, raw)
		}
		return v, nil
	case kindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperrors.Validationf("字段%s需要整数: %q", field, raw)
		}
		return v, nil
	case kindTime:
		for _, layout := range []string{time.RFC3339Nano, time.DateTime, time.DateOnly} {
			if v, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
				return v, nil
			}
		}
		return nil, apperrors.Validationf("字段%s需要时间: %q", field, raw)
	case kindID:
		v, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperrors.Validationf("字段%s需要合法ID: %q", field, raw)
		}
		return v.String(), nil
	default:
		return raw, nil
	}
}

// applyFilters 过滤计划 → WHERE条件
// 列名来自白名单，值以参数绑定传入
func applyFilters(db *gorm.DB, cs columnSet, filters []query.Filter) (*gorm.DB, error) {
	for _, f := range filters {
		col, err := cs.lookup(f.Field)
		if err != nil {
			return nil, err
		}
		v, err := col.cast(f.Field, f.Value)
		if err != nil {
			return nil, err
		}
		db = db.Where(clause.Expr{
			SQL:  "? " + f.Operator.SQL() + " ?",
			Vars: []interface{}{clause.Column{Name: col.name}, v},
		})
	}
	return db, nil
}

// applySort 排序计划 → ORDER BY，按列出顺序作为先后排序键
func applySort(db *gorm.DB, cs columnSet, sort []query.SortField) (*gorm.DB, error) {
	for _, s := range sort {
		col, err := cs.lookup(s.Field)
		if err != nil {
			return nil, err
		}
		db = db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: col.name},
			Desc:   s.Descending,
		})
	}
	return db, nil
}

// applyPlan 过滤 + 排序 + 分页
func applyPlan(db *gorm.DB, cs columnSet, plan *query.Plan) (*gorm.DB, error) {
	db, err := applyFilters(db, cs, plan.Filters)
	if err != nil {
		return nil, err
	}
	db, err = applySort(db, cs, plan.Sort)
	if err != nil {
		return nil, err
	}
	if p := plan.Pagination; p.Enabled() {
		db = db.Offset(p.Skip()).Limit(p.Limit)
	}
	return db, nil
}
