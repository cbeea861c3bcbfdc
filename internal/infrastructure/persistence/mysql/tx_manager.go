package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey context中事务DB的key
type txKey struct{}

// TxManager 事务管理器
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 支持嵌套事务(GORM自动使用Savepoint)
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
//
// 使用示例(图书与评分子表一起写入):
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    db := dbFrom(ctx, r.db)
//	    if err := db.Omit(clause.Associations).Save(model).Error; err != nil {
//	        return err
//	    }
//	    return db.Where("book_id = ?", model.ID).Delete(&RatingModel{}).Error
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		// 已在事务中，直接复用
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFrom 从context获取事务DB,如果没有则使用默认DB
func dbFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
