package mysql

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架，driver=mysql为生产方言，driver=sqlite用于本地开发和测试
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true, // 唯一索引冲突转换为gorm.ErrDuplicatedKey
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	if cfg.Database.Driver == "sqlite" {
		// 内存库每个连接是独立的数据库，只能用单连接
		sqlDB.SetMaxOpenConns(1)
	} else {
		// 最大打开连接数（建议：CPU核数 * 2 + 磁盘数量）
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		// 最大空闲连接数（建议：MaxOpenConns的1/4到1/2）
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		// 连接最大存活时间（防止数据库主动断开连接）
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	logger.L().Info("database connected", zap.String("driver", cfg.Database.Driver))

	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		return mysql.Open(cfg.DSN()), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %q", cfg.Driver)
	}
}

// AutoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&CategoryModel{},
		&BookModel{},
		&RatingModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Firstname string    `gorm:"size:50;not null;comment:名"`
	Lastname  string    `gorm:"size:50;not null;comment:姓"`
	Email     string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// CategoryModel GORM分类模型
// 删除为物理删除，引用它的图书保留悬空的category_id
type CategoryModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Title     string    `gorm:"uniqueIndex;size:100;not null;comment:分类标题"`
	Version   int       `gorm:"not null;default:0;comment:记录版本"`
	CreatedAt time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel GORM图书模型
// 设计说明:
// 1. CategoryID不加外键约束，分类删除后引用保留，读取时解析为null
// 2. 评分存放在子表book_ratings，与订单明细同样是一对多关系
// 3. 价格、创建时间加索引，优化范围过滤和默认排序
type BookModel struct {
	ID          string        `gorm:"primaryKey;size:36"`
	Title       string        `gorm:"index;size:200;not null;comment:书名"`
	Slug        string        `gorm:"index;size:220;not null;comment:书名slug"`
	Author      string        `gorm:"index;size:100;not null;comment:作者"`
	Description string        `gorm:"type:text;comment:图书描述"`
	Price       float64       `gorm:"index;not null;default:0;comment:价格"`
	Pages       int           `gorm:"not null;default:0;comment:页数"`
	CategoryID  *string       `gorm:"index;size:36;comment:分类ID"`
	Tags        string        `gorm:"size:255;comment:标签(逗号分隔)"`
	TotalRating string        `gorm:"size:10;comment:综合评分"`
	Ratings     []RatingModel `gorm:"foreignKey:BookID"`
	Version     int           `gorm:"not null;default:0;comment:记录版本"`
	CreatedAt   time.Time     `gorm:"index;comment:创建时间"`
	UpdatedAt   time.Time     `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// RatingModel GORM评分模型
// Position保留提交时的顺序
type RatingModel struct {
	ID       uint   `gorm:"primaryKey"`
	BookID   string `gorm:"index;size:36;not null;comment:图书ID"`
	Position int    `gorm:"not null;default:0;comment:顺序"`
	Star     int    `gorm:"not null;comment:星级(1-5)"`
	Comment  string `gorm:"size:500;comment:评论"`
	PostedBy string `gorm:"index;size:36;comment:评分用户ID"`
}

// TableName 指定表名
func (RatingModel) TableName() string {
	return "book_ratings"
}
