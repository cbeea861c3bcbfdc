package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/user"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// userRepository 用户仓储实现
// 设计说明：
// 1. 实现domain/user/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误（如邮箱重复），转换为业务错误
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
// 注意：返回的是domain层的接口类型，不是具体类型（依赖倒置）
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// Create 创建用户
// 邮箱唯一性由数据库UNIQUE索引保证（而非应用层SELECT再INSERT）
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := &UserModel{
		ID:        uuid.NewString(),
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
		Password:  u.Password,
	}

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.ErrEmailDuplicate
		}
		return storeError(err, "创建用户失败")
	}

	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找用户
func (r *userRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	var model UserModel
	err := dbFrom(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, storeError(err, "查询用户失败")
	}

	return toUserEntity(&model), nil
}

// FindByEmail 根据邮箱查找用户
// 邮箱字段有UNIQUE索引，使用First而非Find
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	err := dbFrom(ctx, r.db).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, storeError(err, "查询用户失败")
	}

	return toUserEntity(&model), nil
}

// toUserEntity GORM模型 → 领域实体
func toUserEntity(model *UserModel) *user.User {
	return &user.User{
		ID:        model.ID,
		Firstname: model.Firstname,
		Lastname:  model.Lastname,
		Email:     model.Email,
		Password:  model.Password,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
