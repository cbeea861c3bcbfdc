// Package usecase 用例层公共的埋点与前置校验
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcatalog/internal/application/auth"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const tracerName = "bookcatalog/application"

// 用例操作名（指标标签和Span名）
const (
	OpCreate = "create"
	OpGet    = "get"
	OpList   = "list"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Begin 开始一次用例执行：创建Span并开始计时
// 返回的done必须调用一次，传入用例最终的错误：
//
//	ctx, done := usecase.Begin(ctx, "book", usecase.OpCreate)
//	defer func() { done(err) }()
func Begin(ctx context.Context, resource, operation string) (context.Context, func(err error)) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, tracerName, resource+"."+operation)
	span.SetAttributes(
		attribute.String("catalog.resource", resource),
		attribute.String("catalog.operation", operation),
	)

	return ctx, func(err error) {
		tracing.RecordError(span, err)
		span.End()
		metrics.ObserveCatalogOperation(resource, operation, err, time.Since(start).Seconds())
	}
}

// ParseID 校验记录ID格式，返回规范形式（小写、带连字符）
func ParseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", apperrors.ErrInvalidID
	}
	return parsed.String(), nil
}

// RequireIdentity 写操作必须已通过鉴权门禁
func RequireIdentity(identity *auth.Identity) error {
	if identity == nil {
		return apperrors.ErrUnauthorized
	}
	return nil
}
