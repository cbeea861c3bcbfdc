package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/jwt"
)

const testUserID = "5d6c2a7e-8f0b-4f63-9a1e-2b3c4d5e6f70"

func newGate(t *testing.T) (*Gate, *jwt.Manager, *redis.SessionStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	jwtManager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	sessions := redis.NewSessionStore(client)
	return NewGate(jwtManager, sessions), jwtManager, sessions
}

func TestAuthorize(t *testing.T) {
	gate, jwtManager, _ := newGate(t)
	pair, err := jwtManager.GenerateToken(testUserID, "john@example.com", "John Doe")
	require.NoError(t, err)

	identity, err := gate.Authorize(context.Background(), "Bearer "+pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testUserID, identity.UserID)
	assert.Equal(t, "john@example.com", identity.Email)
	assert.Equal(t, pair.AccessToken, identity.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), identity.ExpiresAt, time.Minute)
}

func TestAuthorize_Rejected(t *testing.T) {
	gate, jwtManager, sessions := newGate(t)
	ctx := context.Background()
	pair, err := jwtManager.GenerateToken(testUserID, "john@example.com", "John Doe")
	require.NoError(t, err)

	revoked, err := jwtManager.GenerateToken(testUserID, "john@example.com", "John Doe")
	require.NoError(t, err)
	require.NoError(t, sessions.AddToBlacklist(ctx, revoked.AccessToken, time.Hour))

	tests := []struct {
		name       string
		credential string
		wantCode   int
	}{
		{"缺少凭证", "", apperrors.ErrCodeUnauthorized},
		{"缺少scheme", pair.AccessToken, apperrors.ErrCodeInvalidToken},
		{"错误scheme", "Basic " + pair.AccessToken, apperrors.ErrCodeInvalidToken},
		{"只有scheme", "Bearer ", apperrors.ErrCodeInvalidToken},
		{"伪造Token", "Bearer abc.def.ghi", apperrors.ErrCodeInvalidToken},
		{"Refresh Token", "Bearer " + pair.RefreshToken, apperrors.ErrCodeInvalidToken},
		{"已登出", "Bearer " + revoked.AccessToken, apperrors.ErrCodeInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := gate.Authorize(ctx, tt.credential)
			require.Error(t, err)
			assert.Nil(t, identity)
			assert.Equal(t, tt.wantCode, apperrors.GetAppError(err).Code)
			assert.Equal(t, 403, apperrors.HTTPStatus(apperrors.GetAppError(err).Code))
		})
	}
}

func TestBearerToken_CaseInsensitiveScheme(t *testing.T) {
	token, err := BearerToken("bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, FromContext(ctx))

	identity := &Identity{UserID: testUserID}
	assert.Same(t, identity, FromContext(WithIdentity(ctx, identity)))
}
