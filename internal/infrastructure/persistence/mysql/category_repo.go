package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/internal/domain/query"
)

// categoryRepository 分类仓储实现
type categoryRepository struct {
	db *gorm.DB
	tx *TxManager
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB, tx *TxManager) category.Repository {
	return &categoryRepository{db: db, tx: tx}
}

// Create 创建分类，ID在此生成，之后不再修改
func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := toCategoryModel(c)
	model.ID = uuid.NewString()

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrTitleDuplicate
		}
		return storeError(err, "创建分类失败")
	}

	*c = *toCategoryEntity(model)
	return nil
}

// FindByID 根据ID查找分类
func (r *categoryRepository) FindByID(ctx context.Context, id string) (*category.Category, error) {
	var model CategoryModel
	err := dbFrom(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, storeError(err, "查询分类失败")
	}
	return toCategoryEntity(&model), nil
}

// FindByIDs 批量查找
func (r *categoryRepository) FindByIDs(ctx context.Context, ids []string) ([]*category.Category, error) {
	if len(ids) == 0 {
		return []*category.Category{}, nil
	}
	var models []CategoryModel
	if err := dbFrom(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, storeError(err, "查询分类失败")
	}
	return toCategoryEntities(models), nil
}

// Find 按查询计划查询分类列表
func (r *categoryRepository) Find(ctx context.Context, plan *query.Plan) ([]*category.Category, error) {
	db, err := applyPlan(dbFrom(ctx, r.db).Model(&CategoryModel{}), categoryColumns, plan)
	if err != nil {
		return nil, err
	}

	var models []CategoryModel
	if err := db.Find(&models).Error; err != nil {
		return nil, storeError(err, "查询分类列表失败")
	}
	return toCategoryEntities(models), nil
}

// Count 统计匹配过滤条件的分类数
func (r *categoryRepository) Count(ctx context.Context, filters []query.Filter) (int64, error) {
	db, err := applyFilters(dbFrom(ctx, r.db).Model(&CategoryModel{}), categoryColumns, filters)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, storeError(err, "统计分类数量失败")
	}
	return total, nil
}

// UpdateByID 读取→合并→校验→保存，在同一事务内完成
func (r *categoryRepository) UpdateByID(ctx context.Context, id string, patch category.Patch) (*category.Category, error) {
	var updated *category.Category
	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		c, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := c.Apply(patch); err != nil {
			return err
		}

		model := toCategoryModel(c)
		if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
			if isDuplicateError(err) {
				return category.ErrTitleDuplicate
			}
			return storeError(err, "更新分类失败")
		}
		updated = toCategoryEntity(model)
		return nil
	})
	if err != nil {
		return nil, storeError(err, "更新分类失败")
	}
	return updated, nil
}

// DeleteByID 删除分类并返回被删除的记录
// 不级联删除引用它的图书
func (r *categoryRepository) DeleteByID(ctx context.Context, id string) (*category.Category, error) {
	var deleted *category.Category
	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		c, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}

		result := dbFrom(ctx, r.db).Where("id = ?", id).Delete(&CategoryModel{})
		if result.Error != nil {
			return storeError(result.Error, "删除分类失败")
		}
		if result.RowsAffected == 0 {
			return category.ErrCategoryNotFound
		}
		deleted = c
		return nil
	})
	if err != nil {
		return nil, storeError(err, "删除分类失败")
	}
	return deleted, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toCategoryModel(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:        c.ID,
		Title:     c.Title,
		Version:   c.Version,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCategoryEntity(m *CategoryModel) *category.Category {
	return &category.Category{
		ID:        m.ID,
		Title:     m.Title,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toCategoryEntities(models []CategoryModel) []*category.Category {
	out := make([]*category.Category, len(models))
	for i := range models {
		out[i] = toCategoryEntity(&models[i])
	}
	return out
}
