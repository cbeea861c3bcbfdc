package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/query"
)

// bookRepository 图书仓储实现
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换(评分存放在子表)
// 3. 图书和评分的写入放在同一事务中
type bookRepository struct {
	db *gorm.DB
	tx *TxManager
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB, tx *TxManager) book.Repository {
	return &bookRepository{db: db, tx: tx}
}

// withRatings 预加载评分并按提交顺序排列
func withRatings(db *gorm.DB) *gorm.DB {
	return db.Preload("Ratings", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// Create 创建图书(GORM随主记录一起插入评分)
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.ID = uuid.NewString()
	for i := range model.Ratings {
		model.Ratings[i].BookID = model.ID
	}

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return storeError(err, "创建图书失败")
	}

	*b = *toBookEntity(model)
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var model BookModel
	err := withRatings(dbFrom(ctx, r.db)).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, storeError(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// Find 按查询计划查询图书列表
func (r *bookRepository) Find(ctx context.Context, plan *query.Plan) ([]*book.Book, error) {
	db, err := applyPlan(withRatings(dbFrom(ctx, r.db)).Model(&BookModel{}), bookColumns, plan)
	if err != nil {
		return nil, err
	}

	var models []BookModel
	if err := db.Find(&models).Error; err != nil {
		return nil, storeError(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// Count 统计匹配过滤条件的图书数量
func (r *bookRepository) Count(ctx context.Context, filters []query.Filter) (int64, error) {
	db, err := applyFilters(dbFrom(ctx, r.db).Model(&BookModel{}), bookColumns, filters)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, storeError(err, "查询图书总数失败")
	}
	return total, nil
}

// UpdateByID 读取→合并→校验→保存
// 提交了ratings时整体替换评分子表
func (r *bookRepository) UpdateByID(ctx context.Context, id string, fields book.Fields) (*book.Book, error) {
	var updated *book.Book
	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		b, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := b.Apply(fields); err != nil {
			return err
		}

		db := dbFrom(ctx, r.db)
		model := toBookModel(b)
		if err := db.Omit(clause.Associations).Save(model).Error; err != nil {
			return storeError(err, "更新图书失败")
		}

		if fields.Ratings != nil {
			if err := db.Where("book_id = ?", id).Delete(&RatingModel{}).Error; err != nil {
				return storeError(err, "更新评分失败")
			}
			if len(model.Ratings) > 0 {
				if err := db.Create(&model.Ratings).Error; err != nil {
					return storeError(err, "更新评分失败")
				}
			}
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, storeError(err, "更新图书失败")
	}
	return updated, nil
}

// DeleteByID 删除图书及其评分,返回被删除的记录
func (r *bookRepository) DeleteByID(ctx context.Context, id string) (*book.Book, error) {
	var deleted *book.Book
	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		b, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}

		db := dbFrom(ctx, r.db)
		if err := db.Where("book_id = ?", id).Delete(&RatingModel{}).Error; err != nil {
			return storeError(err, "删除评分失败")
		}
		result := db.Where("id = ?", id).Delete(&BookModel{})
		if result.Error != nil {
			return storeError(result.Error, "删除图书失败")
		}
		if result.RowsAffected == 0 {
			return book.ErrBookNotFound
		}

		deleted = b
		return nil
	})
	if err != nil {
		return nil, storeError(err, "删除图书失败")
	}
	return deleted, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	ratings := make([]RatingModel, len(b.Ratings))
	for i, rt := range b.Ratings {
		ratings[i] = RatingModel{
			BookID:   b.ID,
			Position: i,
			Star:     rt.Star,
			Comment:  rt.Comment,
			PostedBy: rt.PostedBy,
		}
	}
	return &BookModel{
		ID:          b.ID,
		Title:       b.Title,
		Slug:        b.Slug,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		Pages:       b.Pages,
		CategoryID:  b.CategoryID,
		Tags:        b.Tags,
		TotalRating: b.TotalRating,
		Ratings:     ratings,
		Version:     b.Version,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *book.Book {
	ratings := make([]book.Rating, len(m.Ratings))
	for i, rt := range m.Ratings {
		ratings[i] = book.Rating{Star: rt.Star, Comment: rt.Comment, PostedBy: rt.PostedBy}
	}
	return &book.Book{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Author:      m.Author,
		Description: m.Description,
		Price:       m.Price,
		Pages:       m.Pages,
		CategoryID:  m.CategoryID,
		Tags:        m.Tags,
		Ratings:     ratings,
		TotalRating: m.TotalRating,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
