package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

const issuer = "bookcatalog"

// Token类型，防止Refresh Token被当作Access Token使用
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Manager JWT管理器
// 设计说明：
// 1. 使用双Token机制：Access Token（短期）+ Refresh Token（长期）
// 2. Access Token用于写接口鉴权
// 3. Refresh Token只能用于换取新的Access Token
type Manager struct {
	secret             string        // JWT签名密钥
	accessTokenExpire  time.Duration // Access Token有效期
	refreshTokenExpire time.Duration // Refresh Token有效期
}

// NewManager 创建JWT管理器
func NewManager(secret string, accessTokenExpire, refreshTokenExpire time.Duration) *Manager {
	return &Manager{
		secret:             secret,
		accessTokenExpire:  accessTokenExpire,
		refreshTokenExpire: refreshTokenExpire,
	}
}

// Claims JWT载荷
type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenPair Token对
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // Access Token过期时间（秒）
}

// GenerateToken 签发Access Token和Refresh Token
func (m *Manager) GenerateToken(userID, email, name string) (*TokenPair, error) {
	now := time.Now()

	accessToken, err := m.sign(Claims{
		UserID:           userID,
		Email:            email,
		Name:             name,
		TokenType:        TokenTypeAccess,
		RegisteredClaims: m.registered(userID, now, m.accessTokenExpire),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "生成Access Token失败")
	}

	// Refresh Token只携带用户ID
	refreshToken, err := m.sign(Claims{
		UserID:           userID,
		TokenType:        TokenTypeRefresh,
		RegisteredClaims: m.registered(userID, now, m.refreshTokenExpire),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "生成Refresh Token失败")
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(m.accessTokenExpire.Seconds()),
	}, nil
}

// ParseToken 解析并校验Token签名与有效期
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非法的签名算法: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// ParseAccessToken 解析Access Token，拒绝Refresh Token
func (m *Manager) ParseAccessToken(tokenString string) (*Claims, error) {
	claims, err := m.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// RefreshAccessToken 用Refresh Token换取新的Access Token
func (m *Manager) RefreshAccessToken(refreshToken, email, name string) (string, error) {
	claims, err := m.ParseToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != TokenTypeRefresh {
		return "", apperrors.ErrInvalidToken
	}

	tokenString, err := m.sign(Claims{
		UserID:           claims.UserID,
		Email:            email,
		Name:             name,
		TokenType:        TokenTypeAccess,
		RegisteredClaims: m.registered(claims.UserID, time.Now(), m.accessTokenExpire),
	})
	if err != nil {
		return "", apperrors.Wrap(err, "刷新Token失败")
	}
	return tokenString, nil
}

// AccessTokenExpire Access Token有效期（黑名单TTL使用）
func (m *Manager) AccessTokenExpire() time.Duration {
	return m.accessTokenExpire
}

func (m *Manager) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

func (m *Manager) registered(userID string, now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    issuer,
		Subject:   userID,
	}
}
