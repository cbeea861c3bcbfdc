package user

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// DefaultBcryptCost 注册时的bcrypt cost
const DefaultBcryptCost = 12

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasLetter    = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（如密码加密、验证）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. Service不处理HTTP请求，只处理业务逻辑
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, firstname, lastname, email, password string) (*User, error)

	// Login 用户登录
	Login(ctx context.Context, email, password string) (*User, error)

	// ValidatePassword 验证密码
	ValidatePassword(hashedPassword, plainPassword string) error
}

// Option 服务选项
type Option func(*service)

// WithBcryptCost 指定bcrypt cost（测试和种子数据使用较低的cost）
func WithBcryptCost(cost int) Option {
	return func(s *service) {
		s.cost = cost
	}
}

type service struct {
	repo Repository
	cost int
}

// NewService 创建用户服务
func NewService(repo Repository, opts ...Option) Service {
	s := &service{repo: repo, cost: DefaultBcryptCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register 用户注册
// 业务规则：
// 1. 姓名必填，邮箱格式校验
// 2. 密码强度校验（8-20位，包含字母和数字）
// 3. 密码bcrypt加密
// 4. 邮箱唯一性由数据库UNIQUE索引保证
func (s *service) Register(ctx context.Context, firstname, lastname, email, password string) (*User, error) {
	if strings.TrimSpace(firstname) == "" || strings.TrimSpace(lastname) == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "姓名不能为空")
	}

	if !isValidEmail(NormalizeEmail(email)) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}

	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	// bcrypt自动加盐，相同密码每次结果不同
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	user := NewUser(firstname, lastname, email, string(hashedPassword))

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return user, nil
}

// Login 用户登录
// 邮箱不存在和密码错误返回同一个错误，避免暴露邮箱是否注册
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, err
	}

	if err := s.ValidatePassword(user.Password, password); err != nil {
		return nil, err
	}

	return user, nil
}

// ValidatePassword 验证密码
func (s *service) ValidatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperrors.ErrInvalidPassword
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}

// isValidEmail 邮箱格式校验
// 简单的正则校验，生产环境可使用更严格的RFC 5322标准
func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validatePasswordStrength 密码强度校验
// 规则：8-20位，必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.ErrWeakPassword
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return apperrors.ErrWeakPassword
	}
	return nil
}
