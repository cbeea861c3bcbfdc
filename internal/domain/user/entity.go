package user

import (
	"strings"
	"time"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. User是评分(Rating.postedby)的引用目标，也是鉴权的主体
// 2. 密码已加密存储（bcrypt），不应该有GetPassword()等方法暴露明文
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        string
	Firstname string
	Lastname  string
	Email     string
	Password  string // bcrypt哈希值
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(firstname, lastname, email, hashedPassword string) *User {
	now := time.Now()
	return &User{
		Firstname: strings.TrimSpace(firstname),
		Lastname:  strings.TrimSpace(lastname),
		Email:     NormalizeEmail(email),
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FullName 姓名
func (u *User) FullName() string {
	return strings.TrimSpace(u.Firstname + " " + u.Lastname)
}

// NormalizeEmail 邮箱统一小写去空格（唯一索引按此值比较）
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
